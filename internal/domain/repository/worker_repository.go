package repository

import (
	"context"

	"github.com/jhoicas/Asignaciones-api/internal/domain/entity"
)

// WorkerRepository define el puerto de persistencia para Worker.
// Create devuelve domain.ErrDuplicate si el documento ya existe.
type WorkerRepository interface {
	Create(ctx context.Context, worker *entity.Worker) error
	GetByDocument(ctx context.Context, document string) (*entity.Worker, error)
	// GetByDocumentForUpdate bloquea la fila del trabajador (SELECT FOR UPDATE).
	GetByDocumentForUpdate(ctx context.Context, document string) (*entity.Worker, error)
	ListByStore(ctx context.Context, storeCode string) ([]*entity.Worker, error)
	SearchByName(ctx context.Context, name string) ([]*entity.Worker, error)
	ListWithMinHours(ctx context.Context, minHours int) ([]*entity.Worker, error)
	Update(ctx context.Context, worker *entity.Worker) error
	Delete(ctx context.Context, document string) error
	// DeleteByStore elimina todos los trabajadores de la tienda y devuelve cuántos.
	DeleteByStore(ctx context.Context, storeCode string) (int, error)
	ExistsByDocument(ctx context.Context, document string) (bool, error)
	CountByStore(ctx context.Context, storeCode string) (int, error)
	SumAvailableHoursByStore(ctx context.Context, storeCode string) (int, error)
}
