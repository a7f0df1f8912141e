package entity

import (
	"strings"
	"time"

	"github.com/jhoicas/Asignaciones-api/internal/domain"
	"github.com/jhoicas/Asignaciones-api/pkg/nif"
)

// MaxDailyHours tope de horas de un trabajador y de una asignación.
const MaxDailyHours = 8

// Worker trabajador de una tienda, identificado por su DNI/NIE.
// StoreCode se fija al crearlo y no cambia.
type Worker struct {
	ID             string
	Document       string
	Name           string
	AvailableHours int
	StoreCode      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ValidateDocument comprueba formato y letra de control del DNI/NIE.
func ValidateDocument(document string) error {
	if strings.TrimSpace(document) == "" {
		return domain.Validation("el documento no puede estar vacío")
	}
	if !nif.IsValid(document) {
		return domain.Validation("el documento %q debe tener formato válido (DNI: 8 dígitos + letra, NIE: X/Y/Z + 7 dígitos + letra)", document)
	}
	return nil
}

// NewWorker valida los datos de alta. Las horas disponibles admiten 0..8 al crear.
// No comprueba la existencia de la tienda ni la unicidad del documento.
func NewWorker(document, name string, availableHours int, storeCode string) (*Worker, error) {
	if err := ValidateDocument(document); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, domain.Validation("el nombre del trabajador no puede estar vacío")
	}
	if availableHours < 0 || availableHours > MaxDailyHours {
		return nil, domain.Validation("las horas disponibles deben estar entre 0 y %d", MaxDailyHours)
	}
	if strings.TrimSpace(storeCode) == "" {
		return nil, domain.Validation("el código de tienda es obligatorio")
	}
	return &Worker{
		Document:       document,
		Name:           name,
		AvailableHours: availableHours,
		StoreCode:      storeCode,
	}, nil
}

// ValidateWorkerUpdate valida nombre y horas de una modificación (horas 1..8).
func ValidateWorkerUpdate(name string, availableHours int) error {
	if strings.TrimSpace(name) == "" {
		return domain.Validation("el nombre del trabajador no puede estar vacío")
	}
	if availableHours < 1 || availableHours > MaxDailyHours {
		return domain.Validation("las horas disponibles deben estar entre 1 y %d", MaxDailyHours)
	}
	return nil
}

// Update aplica nombre y horas tras validarlos con ValidateWorkerUpdate.
func (w *Worker) Update(name string, availableHours int) error {
	if err := ValidateWorkerUpdate(name, availableHours); err != nil {
		return err
	}
	w.Name = name
	w.AvailableHours = availableHours
	return nil
}

// Equal dos trabajadores son iguales si comparten documento.
func (w *Worker) Equal(o *Worker) bool {
	if w == nil || o == nil {
		return w == o
	}
	return w.Document == o.Document
}
