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

var _ repository.WorkerRepository = (*WorkerRepo)(nil)

// WorkerRepo implementación de WorkerRepository sobre PostgreSQL (usable con pool o tx).
type WorkerRepo struct {
	q Querier
}

// NewWorkerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWorkerRepository(q Querier) *WorkerRepo {
	return &WorkerRepo{q: q}
}

const workerColumns = `id, document, name, available_hours, store_code, created_at, updated_at`

// Create persiste un trabajador. Documento repetido -> domain.ErrDuplicate.
func (r *WorkerRepo) Create(ctx context.Context, w *entity.Worker) error {
	query := `
		INSERT INTO workers (id, document, name, available_hours, store_code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		w.ID, w.Document, w.Name, w.AvailableHours, w.StoreCode, w.CreatedAt, w.UpdatedAt,
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
	return r.getOne(ctx, `SELECT `+workerColumns+` FROM workers WHERE document = $1`, document)
}

// GetByDocumentForUpdate obtiene el trabajador y bloquea la fila (SELECT FOR UPDATE).
func (r *WorkerRepo) GetByDocumentForUpdate(ctx context.Context, document string) (*entity.Worker, error) {
	return r.getOne(ctx, `SELECT `+workerColumns+` FROM workers WHERE document = $1 FOR UPDATE`, document)
}

func (r *WorkerRepo) ListByStore(ctx context.Context, storeCode string) ([]*entity.Worker, error) {
	return r.list(ctx, `SELECT `+workerColumns+` FROM workers WHERE store_code = $1 ORDER BY document`, storeCode)
}

func (r *WorkerRepo) SearchByName(ctx context.Context, name string) ([]*entity.Worker, error) {
	return r.list(ctx, `SELECT `+workerColumns+` FROM workers WHERE name ILIKE $1 ESCAPE '\' ORDER BY document`, containsPattern(name))
}

func (r *WorkerRepo) ListWithMinHours(ctx context.Context, minHours int) ([]*entity.Worker, error) {
	return r.list(ctx, `SELECT `+workerColumns+` FROM workers WHERE available_hours >= $1 ORDER BY document`, minHours)
}

// Update actualiza nombre y horas disponibles.
func (r *WorkerRepo) Update(ctx context.Context, w *entity.Worker) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE workers SET name = $2, available_hours = $3, updated_at = $4 WHERE document = $1`,
		w.Document, w.Name, w.AvailableHours, w.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update worker: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *WorkerRepo) Delete(ctx context.Context, document string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM workers WHERE document = $1`, document); err != nil {
		return fmt.Errorf("delete worker: %w", err)
	}
	return nil
}

func (r *WorkerRepo) DeleteByStore(ctx context.Context, storeCode string) (int, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM workers WHERE store_code = $1`, storeCode)
	if err != nil {
		return 0, fmt.Errorf("delete workers by store: %w", err)
	}
	return int(cmd.RowsAffected()), nil
}

func (r *WorkerRepo) ExistsByDocument(ctx context.Context, document string) (bool, error) {
	var ok bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM workers WHERE document = $1)`, document).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("exists worker: %w", err)
	}
	return ok, nil
}

func (r *WorkerRepo) CountByStore(ctx context.Context, storeCode string) (int, error) {
	n, err := scalarInt(ctx, r.q, `SELECT COUNT(*) FROM workers WHERE store_code = $1`, storeCode)
	if err != nil {
		return 0, fmt.Errorf("count workers: %w", err)
	}
	return n, nil
}

func (r *WorkerRepo) SumAvailableHoursByStore(ctx context.Context, storeCode string) (int, error) {
	n, err := scalarInt(ctx, r.q,
		`SELECT COALESCE(SUM(available_hours), 0)::int FROM workers WHERE store_code = $1`, storeCode)
	if err != nil {
		return 0, fmt.Errorf("sum available hours: %w", err)
	}
	return n, nil
}

func (r *WorkerRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Worker, error) {
	w, err := scanWorker(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get worker: %w", err)
	}
	return w, nil
}

func (r *WorkerRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Worker, error) {
	rows, err := r.q.Query(ctx, query, args...)
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

func scanWorker(row pgx.Row) (*entity.Worker, error) {
	var w entity.Worker
	if err := row.Scan(&w.ID, &w.Document, &w.Name, &w.AvailableHours, &w.StoreCode, &w.CreatedAt, &w.UpdatedAt); err != nil {
		return nil, err
	}
	return &w, nil
}
