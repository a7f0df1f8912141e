package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Asignaciones-api/internal/domain"
	"github.com/jhoicas/Asignaciones-api/internal/domain/entity"
	"github.com/jhoicas/Asignaciones-api/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo implementación del puerto StoreRepository sobre PostgreSQL.
type StoreRepo struct {
	q Querier
}

// NewStoreRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStoreRepository(q Querier) *StoreRepo {
	return &StoreRepo{q: q}
}

const storeColumns = `id, code, name, created_at, updated_at`

// Create persiste una nueva tienda.
func (r *StoreRepo) Create(ctx context.Context, s *entity.Store) error {
	query := `
		INSERT INTO stores (id, code, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, s.ID, s.Code, s.Name, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert store: %w", err)
	}
	return nil
}

// GetByCode obtiene una tienda por código.
func (r *StoreRepo) GetByCode(ctx context.Context, code string) (*entity.Store, error) {
	return r.getOne(ctx, `SELECT `+storeColumns+` FROM stores WHERE code = $1`, code)
}

// GetByCodeForUpdate obtiene la tienda y bloquea la fila (SELECT FOR UPDATE).
func (r *StoreRepo) GetByCodeForUpdate(ctx context.Context, code string) (*entity.Store, error) {
	return r.getOne(ctx, `SELECT `+storeColumns+` FROM stores WHERE code = $1 FOR UPDATE`, code)
}

// SearchByName tiendas cuyo nombre contiene el texto (ILIKE).
func (r *StoreRepo) SearchByName(ctx context.Context, name string) ([]*entity.Store, error) {
	return r.list(ctx, `SELECT `+storeColumns+` FROM stores WHERE name ILIKE $1 ESCAPE '\' ORDER BY code`, containsPattern(name))
}

// List todas las tiendas por código.
func (r *StoreRepo) List(ctx context.Context) ([]*entity.Store, error) {
	return r.list(ctx, `SELECT `+storeColumns+` FROM stores ORDER BY code`)
}

// Update actualiza el nombre.
func (r *StoreRepo) Update(ctx context.Context, s *entity.Store) error {
	cmd, err := r.q.Exec(ctx, `UPDATE stores SET name = $2, updated_at = $3 WHERE code = $1`,
		s.Code, s.Name, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update store: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la tienda; falla por FK si aún tiene trabajadores.
func (r *StoreRepo) Delete(ctx context.Context, code string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM stores WHERE code = $1`, code); err != nil {
		if isForeignKeyViolation(err) {
			return domain.Conflict("la tienda %s aún tiene trabajadores", code)
		}
		return fmt.Errorf("delete store: %w", err)
	}
	return nil
}

func (r *StoreRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var ok bool
	if err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM stores WHERE code = $1)`, code).Scan(&ok); err != nil {
		return false, fmt.Errorf("exists store: %w", err)
	}
	return ok, nil
}

func (r *StoreRepo) Count(ctx context.Context) (int, error) {
	n, err := scalarInt(ctx, r.q, `SELECT COUNT(*) FROM stores`)
	if err != nil {
		return 0, fmt.Errorf("count stores: %w", err)
	}
	return n, nil
}

func (r *StoreRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Store, error) {
	var s entity.Store
	err := r.q.QueryRow(ctx, query, args...).Scan(&s.ID, &s.Code, &s.Name, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store: %w", err)
	}
	return &s, nil
}

func (r *StoreRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Store, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()

	out := make([]*entity.Store, 0)
	for rows.Next() {
		var s entity.Store
		if err := rows.Scan(&s.ID, &s.Code, &s.Name, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}
