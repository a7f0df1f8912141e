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

var _ repository.AssignmentRepository = (*AssignmentRepo)(nil)

// AssignmentRepo implementación de AssignmentRepository sobre PostgreSQL.
// Las lecturas hacen join con workers para nombre y tienda.
type AssignmentRepo struct {
	q Querier
}

// NewAssignmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAssignmentRepository(q Querier) *AssignmentRepo {
	return &AssignmentRepo{q: q}
}

const assignmentSelect = `
	SELECT a.id, a.worker_document, a.section_name, a.hours, a.created_at, a.updated_at,
	       w.name, w.store_code
	FROM assignments a
	JOIN workers w ON w.document = a.worker_document`

const assignmentOrder = ` ORDER BY a.worker_document, a.section_name`

// Create persiste la asignación; el par repetido devuelve domain.ErrDuplicate.
func (r *AssignmentRepo) Create(ctx context.Context, a *entity.Assignment) error {
	query := `
		INSERT INTO assignments (id, worker_document, section_name, hours, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, a.ID, a.WorkerDocument, a.SectionName, a.Hours, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrDuplicate
		case isForeignKeyViolation(err):
			return domain.NotFound("el trabajador %s o la sección %s no existen", a.WorkerDocument, a.SectionName)
		}
		return fmt.Errorf("insert assignment: %w", err)
	}
	return nil
}

func (r *AssignmentRepo) Get(ctx context.Context, document, sectionName string) (*entity.Assignment, error) {
	a, err := scanAssignment(r.q.QueryRow(ctx,
		assignmentSelect+` WHERE a.worker_document = $1 AND a.section_name = $2`, document, sectionName))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get assignment: %w", err)
	}
	return a, nil
}

func (r *AssignmentRepo) ListByWorker(ctx context.Context, document string) ([]*entity.Assignment, error) {
	return r.list(ctx, assignmentSelect+` WHERE a.worker_document = $1`+assignmentOrder, document)
}

func (r *AssignmentRepo) ListBySection(ctx context.Context, sectionName string) ([]*entity.Assignment, error) {
	return r.list(ctx, assignmentSelect+` WHERE a.section_name = $1`+assignmentOrder, sectionName)
}

func (r *AssignmentRepo) ListByStore(ctx context.Context, storeCode string) ([]*entity.Assignment, error) {
	return r.list(ctx, assignmentSelect+` WHERE w.store_code = $1`+assignmentOrder, storeCode)
}

func (r *AssignmentRepo) ListWithMinHours(ctx context.Context, minHours int) ([]*entity.Assignment, error) {
	return r.list(ctx, assignmentSelect+` WHERE a.hours >= $1`+assignmentOrder, minHours)
}

func (r *AssignmentRepo) SumHoursByStore(ctx context.Context, storeCode string) (int, error) {
	return r.scalar(ctx, "sum hours by store", `
		SELECT COALESCE(SUM(a.hours), 0)::int
		FROM assignments a JOIN workers w ON w.document = a.worker_document
		WHERE w.store_code = $1`, storeCode)
}

func (r *AssignmentRepo) SumHoursBySection(ctx context.Context, sectionName string) (int, error) {
	return r.scalar(ctx, "sum hours by section",
		`SELECT COALESCE(SUM(hours), 0)::int FROM assignments WHERE section_name = $1`, sectionName)
}

func (r *AssignmentRepo) CountByWorker(ctx context.Context, document string) (int, error) {
	return r.scalar(ctx, "count by worker",
		`SELECT COUNT(*) FROM assignments WHERE worker_document = $1`, document)
}

func (r *AssignmentRepo) CountBySection(ctx context.Context, sectionName string) (int, error) {
	return r.scalar(ctx, "count by section",
		`SELECT COUNT(*) FROM assignments WHERE section_name = $1`, sectionName)
}

func (r *AssignmentRepo) Exists(ctx context.Context, document, sectionName string) (bool, error) {
	var ok bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM assignments WHERE worker_document = $1 AND section_name = $2)`,
		document, sectionName,
	).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("exists assignment: %w", err)
	}
	return ok, nil
}

func (r *AssignmentRepo) UpdateHours(ctx context.Context, a *entity.Assignment) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE assignments SET hours = $3, updated_at = $4 WHERE worker_document = $1 AND section_name = $2`,
		a.WorkerDocument, a.SectionName, a.Hours, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update assignment hours: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *AssignmentRepo) Delete(ctx context.Context, document, sectionName string) error {
	_, err := r.q.Exec(ctx,
		`DELETE FROM assignments WHERE worker_document = $1 AND section_name = $2`, document, sectionName)
	if err != nil {
		return fmt.Errorf("delete assignment: %w", err)
	}
	return nil
}

func (r *AssignmentRepo) DeleteByWorker(ctx context.Context, document string) (int, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM assignments WHERE worker_document = $1`, document)
	if err != nil {
		return 0, fmt.Errorf("delete assignments by worker: %w", err)
	}
	return int(cmd.RowsAffected()), nil
}

// DeleteByStore elimina las asignaciones de los trabajadores de la tienda.
func (r *AssignmentRepo) DeleteByStore(ctx context.Context, storeCode string) (int, error) {
	cmd, err := r.q.Exec(ctx, `
		DELETE FROM assignments
		WHERE worker_document IN (SELECT document FROM workers WHERE store_code = $1)`, storeCode)
	if err != nil {
		return 0, fmt.Errorf("delete assignments by store: %w", err)
	}
	return int(cmd.RowsAffected()), nil
}

func (r *AssignmentRepo) scalar(ctx context.Context, op, query string, args ...any) (int, error) {
	n, err := scalarInt(ctx, r.q, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}

func (r *AssignmentRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Assignment, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	defer rows.Close()

	out := make([]*entity.Assignment, 0)
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func scanAssignment(row pgx.Row) (*entity.Assignment, error) {
	var a entity.Assignment
	err := row.Scan(&a.ID, &a.WorkerDocument, &a.SectionName, &a.Hours, &a.CreatedAt, &a.UpdatedAt,
		&a.WorkerName, &a.StoreCode)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
