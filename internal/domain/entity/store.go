package entity

import (
	"regexp"
	"strings"
	"time"

	"github.com/jhoicas/Asignaciones-api/internal/domain"
)

// storeCodePattern una letra seguida de tres dígitos, p. ej. "T001".
var storeCodePattern = regexp.MustCompile(`^[A-Za-z][0-9]{3}$`)

// Store representa una tienda de la cadena. Code es la clave de negocio e inmutable.
type Store struct {
	ID        string
	Code      string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewStore valida código y nombre y construye la tienda (sin ID ni timestamps).
func NewStore(code, name string) (*Store, error) {
	if err := ValidateStoreCode(code); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, domain.Validation("el nombre de la tienda no puede estar vacío")
	}
	return &Store{Code: code, Name: name}, nil
}

// ValidateStoreCode comprueba que el código no esté vacío y cumpla el patrón.
func ValidateStoreCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return domain.Validation("el código de la tienda no puede estar vacío")
	}
	if !storeCodePattern.MatchString(code) {
		return domain.Validation("el código de la tienda %q debe ser una letra seguida de tres dígitos", code)
	}
	return nil
}

// Rename cambia el nombre; el código no se modifica nunca.
func (s *Store) Rename(name string) error {
	if strings.TrimSpace(name) == "" {
		return domain.Validation("el nombre de la tienda no puede estar vacío")
	}
	s.Name = name
	return nil
}

// Equal dos tiendas son iguales si comparten código.
func (s *Store) Equal(o *Store) bool {
	if s == nil || o == nil {
		return s == o
	}
	return s.Code == o.Code
}
