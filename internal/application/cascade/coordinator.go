// Package cascade ordena las bajas que arrastran entidades dependientes
// (asignación → trabajador → tienda) dentro de una única transacción.
package cascade

import (
	"context"
	"fmt"

	"github.com/jhoicas/Asignaciones-api/internal/application/ports"
	"github.com/jhoicas/Asignaciones-api/internal/domain"
	"github.com/jhoicas/Asignaciones-api/internal/domain/repository"
)

// Result cuántas filas dependientes se eliminaron junto a la entidad raíz.
type Result struct {
	Workers     int
	Assignments int
}

// Coordinator ejecuta las bajas en cascada. Todo o nada: ante cualquier fallo
// TxRunner hace Rollback y no queda ningún paso intermedio visible.
type Coordinator struct {
	txRunner ports.TxRunner
}

// NewCoordinator construye el coordinador.
func NewCoordinator(txRunner ports.TxRunner) *Coordinator {
	return &Coordinator{txRunner: txRunner}
}

// DeleteStore bloquea la tienda y elimina, en este orden, las asignaciones de sus
// trabajadores, sus trabajadores y la propia tienda.
func (c *Coordinator) DeleteStore(ctx context.Context, code string) (Result, error) {
	var res Result
	err := c.txRunner.Run(ctx, func(
		storeRepo repository.StoreRepository,
		workerRepo repository.WorkerRepository,
		assignmentRepo repository.AssignmentRepository,
		_ repository.SectionRepository,
	) error {
		store, err := storeRepo.GetByCodeForUpdate(ctx, code)
		if err != nil {
			return err
		}
		if store == nil {
			return domain.NotFound("no existe una tienda con el código: %s", code)
		}
		if res.Assignments, err = assignmentRepo.DeleteByStore(ctx, code); err != nil {
			return fmt.Errorf("cascade: eliminar asignaciones de la tienda %s: %w", code, err)
		}
		if res.Workers, err = workerRepo.DeleteByStore(ctx, code); err != nil {
			return fmt.Errorf("cascade: eliminar trabajadores de la tienda %s: %w", code, err)
		}
		if err := storeRepo.Delete(ctx, code); err != nil {
			return fmt.Errorf("cascade: eliminar tienda %s: %w", code, err)
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	return res, nil
}

// DeleteWorker bloquea al trabajador y elimina sus asignaciones y después al trabajador.
func (c *Coordinator) DeleteWorker(ctx context.Context, document string) (Result, error) {
	var res Result
	err := c.txRunner.Run(ctx, func(
		_ repository.StoreRepository,
		workerRepo repository.WorkerRepository,
		assignmentRepo repository.AssignmentRepository,
		_ repository.SectionRepository,
	) error {
		worker, err := workerRepo.GetByDocumentForUpdate(ctx, document)
		if err != nil {
			return err
		}
		if worker == nil {
			return domain.NotFound("no existe un trabajador con el DNI: %s", document)
		}
		if res.Assignments, err = assignmentRepo.DeleteByWorker(ctx, document); err != nil {
			return fmt.Errorf("cascade: eliminar asignaciones del trabajador %s: %w", document, err)
		}
		if err := workerRepo.Delete(ctx, document); err != nil {
			return fmt.Errorf("cascade: eliminar trabajador %s: %w", document, err)
		}
		res.Workers = 1
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	return res, nil
}
