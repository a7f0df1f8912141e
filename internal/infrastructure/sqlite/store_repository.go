package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/Asignaciones-api/internal/domain"
	"github.com/jhoicas/Asignaciones-api/internal/domain/entity"
	"github.com/jhoicas/Asignaciones-api/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo tiendas en SQLite.
type StoreRepo struct {
	q querier
}

const storeColumns = `id, code, name, created_at, updated_at`

func (r *StoreRepo) Create(ctx context.Context, s *entity.Store) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO stores (id, code, name, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		s.ID, s.Code, s.Name, toMillis(s.CreatedAt), toMillis(s.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert store: %w", err)
	}
	return nil
}

func (r *StoreRepo) GetByCode(ctx context.Context, code string) (*entity.Store, error) {
	s, err := scanStore(r.q.QueryRowContext(ctx, `SELECT `+storeColumns+` FROM stores WHERE code = ?`, code))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store: %w", err)
	}
	return s, nil
}

// GetByCodeForUpdate en SQLite el bloqueo lo da BEGIN IMMEDIATE de la transacción.
func (r *StoreRepo) GetByCodeForUpdate(ctx context.Context, code string) (*entity.Store, error) {
	return r.GetByCode(ctx, code)
}

func (r *StoreRepo) SearchByName(ctx context.Context, name string) ([]*entity.Store, error) {
	return r.list(ctx, `SELECT `+storeColumns+` FROM stores WHERE instr(fold(name), fold(?)) > 0 ORDER BY code`, name)
}

func (r *StoreRepo) List(ctx context.Context) ([]*entity.Store, error) {
	return r.list(ctx, `SELECT `+storeColumns+` FROM stores ORDER BY code`)
}

func (r *StoreRepo) Update(ctx context.Context, s *entity.Store) error {
	res, err := r.q.ExecContext(ctx, `UPDATE stores SET name = ?, updated_at = ? WHERE code = ?`,
		s.Name, toMillis(s.UpdatedAt), s.Code)
	if err != nil {
		return fmt.Errorf("update store: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *StoreRepo) Delete(ctx context.Context, code string) error {
	if _, err := r.q.ExecContext(ctx, `DELETE FROM stores WHERE code = ?`, code); err != nil {
		if isForeignKeyViolation(err) {
			return domain.Conflict("la tienda %s aún tiene trabajadores", code)
		}
		return fmt.Errorf("delete store: %w", err)
	}
	return nil
}

func (r *StoreRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	n, err := scalarInt(ctx, r.q, `SELECT COUNT(*) FROM stores WHERE code = ?`, code)
	if err != nil {
		return false, fmt.Errorf("exists store: %w", err)
	}
	return n > 0, nil
}

func (r *StoreRepo) Count(ctx context.Context) (int, error) {
	n, err := scalarInt(ctx, r.q, `SELECT COUNT(*) FROM stores`)
	if err != nil {
		return 0, fmt.Errorf("count stores: %w", err)
	}
	return n, nil
}

func (r *StoreRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Store, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()

	out := make([]*entity.Store, 0)
	for rows.Next() {
		s, err := scanStore(rows)
		if err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStore(row rowScanner) (*entity.Store, error) {
	var (
		s                    entity.Store
		createdAt, updatedAt int64
	)
	if err := row.Scan(&s.ID, &s.Code, &s.Name, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	s.CreatedAt, s.UpdatedAt = fromMillis(createdAt), fromMillis(updatedAt)
	return &s, nil
}
