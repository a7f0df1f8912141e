package entity

import (
	"strings"
	"time"

	"github.com/jhoicas/Asignaciones-api/internal/domain"
)

// Assignment asigna horas de un trabajador a una sección. Su identidad es el par
// (WorkerDocument, SectionName); las horas no forman parte de la identidad.
type Assignment struct {
	ID             string
	WorkerDocument string
	SectionName    string
	Hours          int
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Poblados solo en lecturas (join con workers); no se persisten en la asignación.
	WorkerName string
	StoreCode  string
}

// NewAssignment valida referencias y horas (1..8).
func NewAssignment(workerDocument, sectionName string, hours int) (*Assignment, error) {
	if strings.TrimSpace(workerDocument) == "" {
		return nil, domain.Validation("el documento del trabajador es obligatorio")
	}
	if strings.TrimSpace(sectionName) == "" {
		return nil, domain.Validation("el nombre de la sección es obligatorio")
	}
	if err := ValidateAssignedHours(hours); err != nil {
		return nil, err
	}
	return &Assignment{WorkerDocument: workerDocument, SectionName: sectionName, Hours: hours}, nil
}

// ValidateAssignedHours horas asignadas dentro de 1..8.
func ValidateAssignedHours(hours int) error {
	if hours < 1 || hours > MaxDailyHours {
		return domain.Validation("las horas asignadas deben estar entre 1 y %d", MaxDailyHours)
	}
	return nil
}

// SetHours revalida y sustituye las horas asignadas.
func (a *Assignment) SetHours(hours int) error {
	if err := ValidateAssignedHours(hours); err != nil {
		return err
	}
	a.Hours = hours
	return nil
}

// Equal compara solo trabajador y sección; la unicidad del par depende de ello.
func (a *Assignment) Equal(o *Assignment) bool {
	if a == nil || o == nil {
		return a == o
	}
	return a.WorkerDocument == o.WorkerDocument && a.SectionName == o.SectionName
}
