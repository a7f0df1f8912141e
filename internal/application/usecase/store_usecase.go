package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Asignaciones-api/internal/application/cascade"
	"github.com/jhoicas/Asignaciones-api/internal/application/dto"
	"github.com/jhoicas/Asignaciones-api/internal/domain"
	"github.com/jhoicas/Asignaciones-api/internal/domain/entity"
	"github.com/jhoicas/Asignaciones-api/internal/domain/repository"
)

// StoreUseCase casos de uso del directorio de tiendas.
type StoreUseCase struct {
	repo    repository.StoreRepository
	cascade *cascade.Coordinator
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(repo repository.StoreRepository, coordinator *cascade.Coordinator) *StoreUseCase {
	return &StoreUseCase{repo: repo, cascade: coordinator}
}

// Create da de alta una tienda. El código debe ser único y cumplir el patrón letra + tres dígitos.
func (uc *StoreUseCase) Create(ctx context.Context, in dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	store, err := entity.NewStore(in.Code, in.Name)
	if err != nil {
		return nil, err
	}
	exists, err := uc.repo.ExistsByCode(ctx, store.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, duplicateStore(store.Code)
	}
	now := time.Now()
	store.ID = uuid.New().String()
	store.CreatedAt = now
	store.UpdatedAt = now
	if err := uc.repo.Create(ctx, store); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, duplicateStore(store.Code)
		}
		return nil, err
	}
	return toStoreResponse(store), nil
}

// GetByCode obtiene una tienda por código.
func (uc *StoreUseCase) GetByCode(ctx context.Context, code string) (*dto.StoreResponse, error) {
	store, err := uc.find(ctx, code)
	if err != nil {
		return nil, err
	}
	return toStoreResponse(store), nil
}

// SearchByName busca tiendas cuyo nombre contenga el texto, sin distinguir mayúsculas.
func (uc *StoreUseCase) SearchByName(ctx context.Context, name string) ([]dto.StoreResponse, error) {
	list, err := uc.repo.SearchByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return toStoreResponses(list), nil
}

// List devuelve todas las tiendas.
func (uc *StoreUseCase) List(ctx context.Context) ([]dto.StoreResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toStoreResponses(list), nil
}

// Update cambia el nombre de la tienda; el código es inmutable.
func (uc *StoreUseCase) Update(ctx context.Context, code string, in dto.UpdateStoreRequest) (*dto.StoreResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.Validation("el nombre de la tienda no puede estar vacío")
	}
	store, err := uc.find(ctx, code)
	if err != nil {
		return nil, err
	}
	if err := store.Rename(in.Name); err != nil {
		return nil, err
	}
	store.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, store); err != nil {
		return nil, err
	}
	return toStoreResponse(store), nil
}

// Delete elimina la tienda con sus trabajadores y las asignaciones de estos.
func (uc *StoreUseCase) Delete(ctx context.Context, code string) (cascade.Result, error) {
	return uc.cascade.DeleteStore(ctx, code)
}

// Exists indica si existe una tienda con el código.
func (uc *StoreUseCase) Exists(ctx context.Context, code string) (bool, error) {
	return uc.repo.ExistsByCode(ctx, code)
}

// Count número total de tiendas.
func (uc *StoreUseCase) Count(ctx context.Context) (int, error) {
	return uc.repo.Count(ctx)
}

func (uc *StoreUseCase) find(ctx context.Context, code string) (*entity.Store, error) {
	store, err := uc.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.NotFound("no existe una tienda con el código: %s", code)
	}
	return store, nil
}

func duplicateStore(code string) error {
	return domain.Conflict("ya existe una tienda con el código: %s", code)
}

func toStoreResponse(s *entity.Store) *dto.StoreResponse {
	if s == nil {
		return nil
	}
	return &dto.StoreResponse{
		ID:        s.ID,
		Code:      s.Code,
		Name:      s.Name,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func toStoreResponses(list []*entity.Store) []dto.StoreResponse {
	items := make([]dto.StoreResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toStoreResponse(s))
	}
	return items
}
