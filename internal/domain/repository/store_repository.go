package repository

import (
	"context"

	"github.com/jhoicas/Asignaciones-api/internal/domain/entity"
)

// StoreRepository define el puerto de persistencia para Store (DIP).
// Los métodos Get devuelven (nil, nil) si la tienda no existe.
type StoreRepository interface {
	Create(ctx context.Context, store *entity.Store) error
	GetByCode(ctx context.Context, code string) (*entity.Store, error)
	// GetByCodeForUpdate bloquea la fila hasta el fin de la transacción en curso.
	GetByCodeForUpdate(ctx context.Context, code string) (*entity.Store, error)
	SearchByName(ctx context.Context, name string) ([]*entity.Store, error)
	List(ctx context.Context) ([]*entity.Store, error)
	Update(ctx context.Context, store *entity.Store) error
	Delete(ctx context.Context, code string) error
	ExistsByCode(ctx context.Context, code string) (bool, error)
	Count(ctx context.Context) (int, error)
}
