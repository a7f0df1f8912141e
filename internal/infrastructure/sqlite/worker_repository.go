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

var _ repository.WorkerRepository = (*WorkerRepo)(nil)

// WorkerRepo trabajadores en SQLite.
type WorkerRepo struct {
	q querier
}

const workerColumns = `id, document, name, available_hours, store_code, created_at, updated_at`

func (r *WorkerRepo) Create(ctx context.Context, w *entity.Worker) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO workers (id, document, name, available_hours, store_code, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		w.ID, w.Document, w.Name, w.AvailableHours, w.StoreCode, toMillis(w.CreatedAt), toMillis(w.UpdatedAt),
	)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrDuplicate
		case isForeignKeyViolation(err):
			return domain.NotFound("no existe una tienda con el código: %s", w.StoreCode)
		}
		return fmt.Errorf("insert worker: %w", err)
	}
	return nil
}

func (r *WorkerRepo) GetByDocument(ctx context.Context, document string) (*entity.Worker, error) {
	w, err := scanWorker(r.q.QueryRowContext(ctx, `SELECT `+workerColumns+` FROM workers WHERE document = ?`, document))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get worker: %w", err)
	}
	return w, nil
}

func (r *WorkerRepo) GetByDocumentForUpdate(ctx context.Context, document string) (*entity.Worker, error) {
	return r.GetByDocument(ctx, document)
}

func (r *WorkerRepo) ListByStore(ctx context.Context, storeCode string) ([]*entity.Worker, error) {
	return r.list(ctx, `SELECT `+workerColumns+` FROM workers WHERE store_code = ? ORDER BY document`, storeCode)
}

func (r *WorkerRepo) SearchByName(ctx context.Context, name string) ([]*entity.Worker, error) {
	return r.list(ctx, `SELECT `+workerColumns+` FROM workers WHERE instr(fold(name), fold(?)) > 0 ORDER BY document`, name)
}

func (r *WorkerRepo) ListWithMinHours(ctx context.Context, minHours int) ([]*entity.Worker, error) {
	return r.list(ctx, `SELECT `+workerColumns+` FROM workers WHERE available_hours >= ? ORDER BY document`, minHours)
}

func (r *WorkerRepo) Update(ctx context.Context, w *entity.Worker) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE workers SET name = ?, available_hours = ?, updated_at = ? WHERE document = ?`,
		w.Name, w.AvailableHours, toMillis(w.UpdatedAt), w.Document)
	if err != nil {
		return fmt.Errorf("update worker: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *WorkerRepo) Delete(ctx context.Context, document string) error {
	if _, err := r.q.ExecContext(ctx, `DELETE FROM workers WHERE document = ?`, document); err != nil {
		return fmt.Errorf("delete worker: %w", err)
	}
	return nil
}

func (r *WorkerRepo) DeleteByStore(ctx context.Context, storeCode string) (int, error) {
	res, err := r.q.ExecContext(ctx, `DELETE FROM workers WHERE store_code = ?`, storeCode)
	if err != nil {
		return 0, fmt.Errorf("delete workers by store: %w", err)
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

func (r *WorkerRepo) ExistsByDocument(ctx context.Context, document string) (bool, error) {
	n, err := scalarInt(ctx, r.q, `SELECT COUNT(*) FROM workers WHERE document = ?`, document)
	if err != nil {
		return false, fmt.Errorf("exists worker: %w", err)
	}
	return n > 0, nil
}

func (r *WorkerRepo) CountByStore(ctx context.Context, storeCode string) (int, error) {
	n, err := scalarInt(ctx, r.q, `SELECT COUNT(*) FROM workers WHERE store_code = ?`, storeCode)
	if err != nil {
		return 0, fmt.Errorf("count workers: %w", err)
	}
	return n, nil
}

func (r *WorkerRepo) SumAvailableHoursByStore(ctx context.Context, storeCode string) (int, error) {
	n, err := scalarInt(ctx, r.q, `SELECT COALESCE(SUM(available_hours), 0) FROM workers WHERE store_code = ?`, storeCode)
	if err != nil {
		return 0, fmt.Errorf("sum available hours: %w", err)
	}
	return n, nil
}

func (r *WorkerRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Worker, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list workers: %w", err)
	}
	defer rows.Close()

	out := make([]*entity.Worker, 0)
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, fmt.Errorf("scan worker: %w", err)
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func scanWorker(row rowScanner) (*entity.Worker, error) {
	var (
		w                    entity.Worker
		createdAt, updatedAt int64
	)
	if err := row.Scan(&w.ID, &w.Document, &w.Name, &w.AvailableHours, &w.StoreCode, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	w.CreatedAt, w.UpdatedAt = fromMillis(createdAt), fromMillis(updatedAt)
	return &w, nil
}
