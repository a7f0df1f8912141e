package repository

import (
	"context"

	"github.com/jhoicas/Asignaciones-api/internal/domain/entity"
)

// AssignmentRepository define el puerto de persistencia para Assignment.
// Las lecturas rellenan WorkerName y StoreCode con un join sobre workers.
// Las consultas "por tienda" se resuelven a través de la tienda del trabajador.
// Create devuelve domain.ErrDuplicate si el par (trabajador, sección) ya existe.
type AssignmentRepository interface {
	Create(ctx context.Context, assignment *entity.Assignment) error
	Get(ctx context.Context, document, sectionName string) (*entity.Assignment, error)
	ListByWorker(ctx context.Context, document string) ([]*entity.Assignment, error)
	ListBySection(ctx context.Context, sectionName string) ([]*entity.Assignment, error)
	ListByStore(ctx context.Context, storeCode string) ([]*entity.Assignment, error)
	ListWithMinHours(ctx context.Context, minHours int) ([]*entity.Assignment, error)
	SumHoursByStore(ctx context.Context, storeCode string) (int, error)
	SumHoursBySection(ctx context.Context, sectionName string) (int, error)
	CountByWorker(ctx context.Context, document string) (int, error)
	CountBySection(ctx context.Context, sectionName string) (int, error)
	Exists(ctx context.Context, document, sectionName string) (bool, error)
	UpdateHours(ctx context.Context, assignment *entity.Assignment) error
	Delete(ctx context.Context, document, sectionName string) error
	DeleteByWorker(ctx context.Context, document string) (int, error)
	DeleteByStore(ctx context.Context, storeCode string) (int, error)
}
