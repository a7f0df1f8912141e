package ports

import (
	"context"

	"github.com/jhoicas/Asignaciones-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn devuelve error se hace Rollback y ningún cambio queda visible; si no, Commit.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		storeRepo repository.StoreRepository,
		workerRepo repository.WorkerRepository,
		assignmentRepo repository.AssignmentRepository,
		sectionRepo repository.SectionRepository,
	) error) error
}
