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

var _ repository.AssignmentRepository = (*AssignmentRepo)(nil)

// AssignmentRepo asignaciones en SQLite; las lecturas hacen join con workers.
type AssignmentRepo struct {
	q querier
}

const assignmentSelect = `
	SELECT a.id, a.worker_document, a.section_name, a.hours, a.created_at, a.updated_at,
	       w.name, w.store_code
	FROM assignments a
	JOIN workers w ON w.document = a.worker_document`

const assignmentOrder = ` ORDER BY a.worker_document, a.section_name`

func (r *AssignmentRepo) Create(ctx context.Context, a *entity.Assignment) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO assignments (id, worker_document, section_name, hours, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		a.ID, a.WorkerDocument, a.SectionName, a.Hours, toMillis(a.CreatedAt), toMillis(a.UpdatedAt),
	)
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
	a, err := scanAssignment(r.q.QueryRowContext(ctx,
		assignmentSelect+` WHERE a.worker_document = ? AND a.section_name = ?`, document, sectionName))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get assignment: %w", err)
	}
	return a, nil
}

func (r *AssignmentRepo) ListByWorker(ctx context.Context, document string) ([]*entity.Assignment, error) {
	return r.list(ctx, assignmentSelect+` WHERE a.worker_document = ?`+assignmentOrder, document)
}

func (r *AssignmentRepo) ListBySection(ctx context.Context, sectionName string) ([]*entity.Assignment, error) {
	return r.list(ctx, assignmentSelect+` WHERE a.section_name = ?`+assignmentOrder, sectionName)
}

func (r *AssignmentRepo) ListByStore(ctx context.Context, storeCode string) ([]*entity.Assignment, error) {
	return r.list(ctx, assignmentSelect+` WHERE w.store_code = ?`+assignmentOrder, storeCode)
}

func (r *AssignmentRepo) ListWithMinHours(ctx context.Context, minHours int) ([]*entity.Assignment, error) {
	return r.list(ctx, assignmentSelect+` WHERE a.hours >= ?`+assignmentOrder, minHours)
}

func (r *AssignmentRepo) SumHoursByStore(ctx context.Context, storeCode string) (int, error) {
	return r.scalar(ctx, "sum hours by store", `
		SELECT COALESCE(SUM(a.hours), 0)
		FROM assignments a JOIN workers w ON w.document = a.worker_document
		WHERE w.store_code = ?`, storeCode)
}

func (r *AssignmentRepo) SumHoursBySection(ctx context.Context, sectionName string) (int, error) {
	return r.scalar(ctx, "sum hours by section",
		`SELECT COALESCE(SUM(hours), 0) FROM assignments WHERE section_name = ?`, sectionName)
}

func (r *AssignmentRepo) CountByWorker(ctx context.Context, document string) (int, error) {
	return r.scalar(ctx, "count by worker", `SELECT COUNT(*) FROM assignments WHERE worker_document = ?`, document)
}

func (r *AssignmentRepo) CountBySection(ctx context.Context, sectionName string) (int, error) {
	return r.scalar(ctx, "count by section", `SELECT COUNT(*) FROM assignments WHERE section_name = ?`, sectionName)
}

func (r *AssignmentRepo) Exists(ctx context.Context, document, sectionName string) (bool, error) {
	n, err := r.scalar(ctx, "exists assignment",
		`SELECT COUNT(*) FROM assignments WHERE worker_document = ? AND section_name = ?`, document, sectionName)
	return n > 0, err
}

func (r *AssignmentRepo) UpdateHours(ctx context.Context, a *entity.Assignment) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE assignments SET hours = ?, updated_at = ? WHERE worker_document = ? AND section_name = ?`,
		a.Hours, toMillis(a.UpdatedAt), a.WorkerDocument, a.SectionName)
	if err != nil {
		return fmt.Errorf("update assignment hours: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *AssignmentRepo) Delete(ctx context.Context, document, sectionName string) error {
	_, err := r.q.ExecContext(ctx,
		`DELETE FROM assignments WHERE worker_document = ? AND section_name = ?`, document, sectionName)
	if err != nil {
		return fmt.Errorf("delete assignment: %w", err)
	}
	return nil
}

func (r *AssignmentRepo) DeleteByWorker(ctx context.Context, document string) (int, error) {
	return r.exec(ctx, "delete assignments by worker", `DELETE FROM assignments WHERE worker_document = ?`, document)
}

func (r *AssignmentRepo) DeleteByStore(ctx context.Context, storeCode string) (int, error) {
	return r.exec(ctx, "delete assignments by store", `
		DELETE FROM assignments
		WHERE worker_document IN (SELECT document FROM workers WHERE store_code = ?)`, storeCode)
}

func (r *AssignmentRepo) exec(ctx context.Context, op, query string, args ...any) (int, error) {
	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

func (r *AssignmentRepo) scalar(ctx context.Context, op, query string, args ...any) (int, error) {
	n, err := scalarInt(ctx, r.q, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}

func (r *AssignmentRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Assignment, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
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

func scanAssignment(row rowScanner) (*entity.Assignment, error) {
	var (
		a                    entity.Assignment
		createdAt, updatedAt int64
	)
	err := row.Scan(&a.ID, &a.WorkerDocument, &a.SectionName, &a.Hours, &createdAt, &updatedAt,
		&a.WorkerName, &a.StoreCode)
	if err != nil {
		return nil, err
	}
	a.CreatedAt, a.UpdatedAt = fromMillis(createdAt), fromMillis(updatedAt)
	return &a, nil
}
