package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Asignaciones-api/internal/application/cascade"
	"github.com/jhoicas/Asignaciones-api/internal/application/dto"
	"github.com/jhoicas/Asignaciones-api/internal/application/ports"
	"github.com/jhoicas/Asignaciones-api/internal/domain"
	"github.com/jhoicas/Asignaciones-api/internal/domain/entity"
	"github.com/jhoicas/Asignaciones-api/internal/domain/repository"
)

// WorkerUseCase registro de trabajadores.
type WorkerUseCase struct {
	txRunner  ports.TxRunner
	storeRepo repository.StoreRepository
	repo      repository.WorkerRepository
	cascade   *cascade.Coordinator
}

// NewWorkerUseCase construye el caso de uso.
func NewWorkerUseCase(
	txRunner ports.TxRunner,
	storeRepo repository.StoreRepository,
	repo repository.WorkerRepository,
	coordinator *cascade.Coordinator,
) *WorkerUseCase {
	return &WorkerUseCase{
		txRunner:  txRunner,
		storeRepo: storeRepo,
		repo:      repo,
		cascade:   coordinator,
	}
}

// Create da de alta un trabajador. Orden de comprobaciones: formato del documento,
// nombre y rango de horas, existencia de la tienda y unicidad del documento.
// La tienda se bloquea durante el alta para no competir con su baja en cascada.
func (uc *WorkerUseCase) Create(ctx context.Context, in dto.CreateWorkerRequest) (*dto.WorkerResponse, error) {
	worker, err := entity.NewWorker(in.Document, in.Name, in.AvailableHours, in.StoreCode)
	if err != nil {
		return nil, err
	}
	err = uc.txRunner.Run(ctx, func(
		storeRepo repository.StoreRepository,
		workerRepo repository.WorkerRepository,
		_ repository.AssignmentRepository,
		_ repository.SectionRepository,
	) error {
		store, err := storeRepo.GetByCodeForUpdate(ctx, worker.StoreCode)
		if err != nil {
			return err
		}
		if store == nil {
			return domain.NotFound("no existe una tienda con el código: %s", worker.StoreCode)
		}
		exists, err := workerRepo.ExistsByDocument(ctx, worker.Document)
		if err != nil {
			return err
		}
		if exists {
			return duplicateWorker(worker.Document)
		}
		now := time.Now()
		worker.ID = uuid.New().String()
		worker.CreatedAt = now
		worker.UpdatedAt = now
		if err := workerRepo.Create(ctx, worker); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				return duplicateWorker(worker.Document)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toWorkerResponse(worker), nil
}

// GetByDocument obtiene un trabajador por DNI/NIE.
func (uc *WorkerUseCase) GetByDocument(ctx context.Context, document string) (*dto.WorkerResponse, error) {
	worker, err := uc.find(ctx, document)
	if err != nil {
		return nil, err
	}
	return toWorkerResponse(worker), nil
}

// ListByStore trabajadores de una tienda.
func (uc *WorkerUseCase) ListByStore(ctx context.Context, storeCode string) ([]dto.WorkerResponse, error) {
	list, err := uc.repo.ListByStore(ctx, storeCode)
	if err != nil {
		return nil, err
	}
	return toWorkerResponses(list), nil
}

// SearchByName trabajadores cuyo nombre contiene el texto, sin distinguir mayúsculas.
func (uc *WorkerUseCase) SearchByName(ctx context.Context, name string) ([]dto.WorkerResponse, error) {
	list, err := uc.repo.SearchByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return toWorkerResponses(list), nil
}

// ListWithMinHours trabajadores con al menos minHours horas disponibles.
func (uc *WorkerUseCase) ListWithMinHours(ctx context.Context, minHours int) ([]dto.WorkerResponse, error) {
	list, err := uc.repo.ListWithMinHours(ctx, minHours)
	if err != nil {
		return nil, err
	}
	return toWorkerResponses(list), nil
}

// Update modifica nombre y horas disponibles (1..8). El documento y la tienda no cambian.
func (uc *WorkerUseCase) Update(ctx context.Context, document string, in dto.UpdateWorkerRequest) (*dto.WorkerResponse, error) {
	if err := entity.ValidateWorkerUpdate(in.Name, in.AvailableHours); err != nil {
		return nil, err
	}
	worker, err := uc.find(ctx, document)
	if err != nil {
		return nil, err
	}
	if err := worker.Update(in.Name, in.AvailableHours); err != nil {
		return nil, err
	}
	worker.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, worker); err != nil {
		return nil, err
	}
	return toWorkerResponse(worker), nil
}

// Delete elimina al trabajador y todas sus asignaciones.
func (uc *WorkerUseCase) Delete(ctx context.Context, document string) (cascade.Result, error) {
	return uc.cascade.DeleteWorker(ctx, document)
}

// Exists indica si el documento está registrado.
func (uc *WorkerUseCase) Exists(ctx context.Context, document string) (bool, error) {
	return uc.repo.ExistsByDocument(ctx, document)
}

// CountByStore número de trabajadores de la tienda.
func (uc *WorkerUseCase) CountByStore(ctx context.Context, storeCode string) (int, error) {
	if err := uc.requireStore(ctx, storeCode); err != nil {
		return 0, err
	}
	return uc.repo.CountByStore(ctx, storeCode)
}

// SumAvailableHoursByStore suma de horas disponibles de la plantilla de la tienda (0 si no hay).
func (uc *WorkerUseCase) SumAvailableHoursByStore(ctx context.Context, storeCode string) (int, error) {
	if err := uc.requireStore(ctx, storeCode); err != nil {
		return 0, err
	}
	return uc.repo.SumAvailableHoursByStore(ctx, storeCode)
}

func (uc *WorkerUseCase) find(ctx context.Context, document string) (*entity.Worker, error) {
	worker, err := uc.repo.GetByDocument(ctx, document)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, workerNotFound(document)
	}
	return worker, nil
}

func (uc *WorkerUseCase) requireStore(ctx context.Context, storeCode string) error {
	store, err := uc.storeRepo.GetByCode(ctx, storeCode)
	if err != nil {
		return err
	}
	if store == nil {
		return domain.NotFound("no existe una tienda con el código: %s", storeCode)
	}
	return nil
}

func duplicateWorker(document string) error {
	return domain.Conflict("ya existe un trabajador con el DNI: %s", document)
}

func toWorkerResponse(w *entity.Worker) *dto.WorkerResponse {
	if w == nil {
		return nil
	}
	return &dto.WorkerResponse{
		ID:             w.ID,
		Document:       w.Document,
		Name:           w.Name,
		AvailableHours: w.AvailableHours,
		StoreCode:      w.StoreCode,
		CreatedAt:      w.CreatedAt,
		UpdatedAt:      w.UpdatedAt,
	}
}

func toWorkerResponses(list []*entity.Worker) []dto.WorkerResponse {
	items := make([]dto.WorkerResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWorkerResponse(w))
	}
	return items
}
