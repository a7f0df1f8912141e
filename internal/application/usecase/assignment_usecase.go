package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Asignaciones-api/internal/application/dto"
	"github.com/jhoicas/Asignaciones-api/internal/application/ports"
	"github.com/jhoicas/Asignaciones-api/internal/domain"
	"github.com/jhoicas/Asignaciones-api/internal/domain/entity"
	"github.com/jhoicas/Asignaciones-api/internal/domain/repository"
)

// AssignmentUseCase libro de asignaciones trabajador ↔ sección.
type AssignmentUseCase struct {
	txRunner    ports.TxRunner
	workerRepo  repository.WorkerRepository
	sectionRepo repository.SectionRepository
	repo        repository.AssignmentRepository
}

// NewAssignmentUseCase construye el caso de uso.
func NewAssignmentUseCase(
	txRunner ports.TxRunner,
	workerRepo repository.WorkerRepository,
	sectionRepo repository.SectionRepository,
	repo repository.AssignmentRepository,
) *AssignmentUseCase {
	return &AssignmentUseCase{
		txRunner:    txRunner,
		workerRepo:  workerRepo,
		sectionRepo: sectionRepo,
		repo:        repo,
	}
}

// Create asigna horas de un trabajador a una sección.
//
// Dentro de una transacción que bloquea la fila del trabajador:
//  1. el trabajador y la sección deben existir (NotFound)
//  2. el par no puede estar ya asignado (Conflict)
//  3. las horas no pueden superar las horas disponibles del trabajador (Conflict)
//  4. las horas deben estar en 1..8 (Validation, regla de la entidad)
//
// La comparación del paso 3 es contra el total disponible, no contra lo ya
// comprometido en otras secciones.
func (uc *AssignmentUseCase) Create(ctx context.Context, in dto.CreateAssignmentRequest) (*dto.AssignmentResponse, error) {
	if err := requireKeys(in.WorkerDocument, in.SectionName); err != nil {
		return nil, err
	}
	var created *entity.Assignment
	err := uc.txRunner.Run(ctx, func(
		_ repository.StoreRepository,
		workerRepo repository.WorkerRepository,
		assignmentRepo repository.AssignmentRepository,
		sectionRepo repository.SectionRepository,
	) error {
		worker, err := workerRepo.GetByDocumentForUpdate(ctx, in.WorkerDocument)
		if err != nil {
			return err
		}
		if worker == nil {
			return workerNotFound(in.WorkerDocument)
		}
		section, err := sectionRepo.GetByName(ctx, in.SectionName)
		if err != nil {
			return err
		}
		if section == nil {
			return sectionNotFound(in.SectionName)
		}
		exists, err := assignmentRepo.Exists(ctx, worker.Document, section.Name)
		if err != nil {
			return err
		}
		if exists {
			return alreadyAssigned(worker.Document, section.Name)
		}
		if in.Hours > worker.AvailableHours {
			return domain.Conflict("las horas asignadas (%d) no pueden superar las horas disponibles del trabajador (%d)",
				in.Hours, worker.AvailableHours)
		}
		a, err := entity.NewAssignment(worker.Document, section.Name, in.Hours)
		if err != nil {
			return err
		}
		now := time.Now()
		a.ID = uuid.New().String()
		a.CreatedAt = now
		a.UpdatedAt = now
		if err := assignmentRepo.Create(ctx, a); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				return alreadyAssigned(worker.Document, section.Name)
			}
			return err
		}
		a.WorkerName = worker.Name
		a.StoreCode = worker.StoreCode
		created = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toAssignmentResponse(created), nil
}

// Get obtiene la asignación del par (trabajador, sección).
func (uc *AssignmentUseCase) Get(ctx context.Context, document, sectionName string) (*dto.AssignmentResponse, error) {
	a, err := uc.findPair(ctx, document, sectionName)
	if err != nil {
		return nil, err
	}
	return toAssignmentResponse(a), nil
}

// ListByWorker asignaciones de un trabajador existente.
func (uc *AssignmentUseCase) ListByWorker(ctx context.Context, document string) ([]dto.AssignmentResponse, error) {
	if _, err := uc.requireWorker(ctx, document); err != nil {
		return nil, err
	}
	return uc.list(uc.repo.ListByWorker(ctx, document))
}

// ListBySection asignaciones de una sección existente, en todas las tiendas.
func (uc *AssignmentUseCase) ListBySection(ctx context.Context, sectionName string) ([]dto.AssignmentResponse, error) {
	if _, err := uc.requireSection(ctx, sectionName); err != nil {
		return nil, err
	}
	return uc.list(uc.repo.ListBySection(ctx, sectionName))
}

// ListByStore asignaciones de los trabajadores de la tienda.
func (uc *AssignmentUseCase) ListByStore(ctx context.Context, storeCode string) ([]dto.AssignmentResponse, error) {
	return uc.list(uc.repo.ListByStore(ctx, storeCode))
}

// ListWithMinHours asignaciones con al menos minHours horas.
func (uc *AssignmentUseCase) ListWithMinHours(ctx context.Context, minHours int) ([]dto.AssignmentResponse, error) {
	return uc.list(uc.repo.ListWithMinHours(ctx, minHours))
}

// SumHoursByStore total de horas asignadas en la tienda; 0 si no hay asignaciones.
func (uc *AssignmentUseCase) SumHoursByStore(ctx context.Context, storeCode string) (int, error) {
	return uc.repo.SumHoursByStore(ctx, storeCode)
}

// SumHoursBySection total de horas asignadas a la sección; 0 si no hay asignaciones.
func (uc *AssignmentUseCase) SumHoursBySection(ctx context.Context, sectionName string) (int, error) {
	if _, err := uc.requireSection(ctx, sectionName); err != nil {
		return 0, err
	}
	return uc.repo.SumHoursBySection(ctx, sectionName)
}

// CountByWorker número de asignaciones del trabajador.
func (uc *AssignmentUseCase) CountByWorker(ctx context.Context, document string) (int, error) {
	if _, err := uc.requireWorker(ctx, document); err != nil {
		return 0, err
	}
	return uc.repo.CountByWorker(ctx, document)
}

// CountBySection número de asignaciones de la sección.
func (uc *AssignmentUseCase) CountBySection(ctx context.Context, sectionName string) (int, error) {
	if _, err := uc.requireSection(ctx, sectionName); err != nil {
		return 0, err
	}
	return uc.repo.CountBySection(ctx, sectionName)
}

// Exists indica si el par está asignado; trabajador y sección deben existir.
func (uc *AssignmentUseCase) Exists(ctx context.Context, document, sectionName string) (bool, error) {
	if _, err := uc.requireWorker(ctx, document); err != nil {
		return false, err
	}
	if _, err := uc.requireSection(ctx, sectionName); err != nil {
		return false, err
	}
	return uc.repo.Exists(ctx, document, sectionName)
}

// UpdateHours cambia las horas de una asignación existente (1..8).
// No vuelve a comparar con las horas disponibles del trabajador.
func (uc *AssignmentUseCase) UpdateHours(ctx context.Context, document, sectionName string, in dto.UpdateAssignmentHoursRequest) (*dto.AssignmentResponse, error) {
	if err := entity.ValidateAssignedHours(in.Hours); err != nil {
		return nil, err
	}
	a, err := uc.findPair(ctx, document, sectionName)
	if err != nil {
		return nil, err
	}
	if err := a.SetHours(in.Hours); err != nil {
		return nil, err
	}
	a.UpdatedAt = time.Now()
	if err := uc.repo.UpdateHours(ctx, a); err != nil {
		return nil, err
	}
	return toAssignmentResponse(a), nil
}

// Delete elimina la asignación del par (trabajador, sección).
func (uc *AssignmentUseCase) Delete(ctx context.Context, document, sectionName string) error {
	if _, err := uc.findPair(ctx, document, sectionName); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, document, sectionName)
}

func (uc *AssignmentUseCase) findPair(ctx context.Context, document, sectionName string) (*entity.Assignment, error) {
	if _, err := uc.requireWorker(ctx, document); err != nil {
		return nil, err
	}
	if _, err := uc.requireSection(ctx, sectionName); err != nil {
		return nil, err
	}
	a, err := uc.repo.Get(ctx, document, sectionName)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.NotFound("no existe una asignación para el trabajador %s en la sección %s", document, sectionName)
	}
	return a, nil
}

func (uc *AssignmentUseCase) requireWorker(ctx context.Context, document string) (*entity.Worker, error) {
	w, err := uc.workerRepo.GetByDocument(ctx, document)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, workerNotFound(document)
	}
	return w, nil
}

func (uc *AssignmentUseCase) requireSection(ctx context.Context, name string) (*entity.Section, error) {
	s, err := uc.sectionRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, sectionNotFound(name)
	}
	return s, nil
}

func (uc *AssignmentUseCase) list(list []*entity.Assignment, err error) ([]dto.AssignmentResponse, error) {
	if err != nil {
		return nil, err
	}
	items := make([]dto.AssignmentResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAssignmentResponse(a))
	}
	return items, nil
}

func requireKeys(document, sectionName string) error {
	if strings.TrimSpace(document) == "" {
		return domain.Validation("el documento del trabajador es obligatorio")
	}
	if strings.TrimSpace(sectionName) == "" {
		return domain.Validation("el nombre de la sección es obligatorio")
	}
	return nil
}

func workerNotFound(document string) error {
	return domain.NotFound("no existe un trabajador con el DNI: %s", document)
}

func sectionNotFound(name string) error {
	return domain.NotFound("no existe una sección con el nombre: %s", name)
}

func alreadyAssigned(document, section string) error {
	return domain.Conflict("ya existe una asignación para el trabajador %s en la sección %s", document, section)
}

func toAssignmentResponse(a *entity.Assignment) *dto.AssignmentResponse {
	if a == nil {
		return nil
	}
	return &dto.AssignmentResponse{
		WorkerDocument: a.WorkerDocument,
		WorkerName:     a.WorkerName,
		SectionName:    a.SectionName,
		Hours:          a.Hours,
		StoreCode:      a.StoreCode,
	}
}
