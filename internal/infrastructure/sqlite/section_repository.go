package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/Asignaciones-api/internal/domain/entity"
	"github.com/jhoicas/Asignaciones-api/internal/domain/repository"
)

var _ repository.SectionRepository = (*SectionRepo)(nil)

// SectionRepo catálogo de secciones en SQLite.
type SectionRepo struct {
	q querier
}

func (r *SectionRepo) Upsert(ctx context.Context, s entity.Section) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO sections (name, required_hours) VALUES (?, ?)
		ON CONFLICT (name) DO UPDATE SET required_hours = excluded.required_hours`,
		s.Name, s.RequiredHours)
	if err != nil {
		return fmt.Errorf("upsert section: %w", err)
	}
	return nil
}

func (r *SectionRepo) GetByName(ctx context.Context, name string) (*entity.Section, error) {
	var s entity.Section
	err := r.q.QueryRowContext(ctx, `SELECT name, required_hours FROM sections WHERE name = ?`, name).
		Scan(&s.Name, &s.RequiredHours)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get section: %w", err)
	}
	return &s, nil
}

func (r *SectionRepo) List(ctx context.Context) ([]entity.Section, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT name, required_hours FROM sections ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	defer rows.Close()
	out := make([]entity.Section, 0)
	for rows.Next() {
		var s entity.Section
		if err := rows.Scan(&s.Name, &s.RequiredHours); err != nil {
			return nil, fmt.Errorf("scan section: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
