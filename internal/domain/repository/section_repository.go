package repository

import (
	"context"

	"github.com/jhoicas/Asignaciones-api/internal/domain/entity"
)

// SectionRepository expone el catálogo de secciones persistido.
// GetByName devuelve (nil, nil) si la sección no existe.
type SectionRepository interface {
	// Upsert alta o actualización de horas requeridas; se usa para sembrar el catálogo.
	Upsert(ctx context.Context, section entity.Section) error
	GetByName(ctx context.Context, name string) (*entity.Section, error)
	List(ctx context.Context) ([]entity.Section, error)
}
