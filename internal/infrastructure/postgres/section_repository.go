package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Asignaciones-api/internal/domain/entity"
	"github.com/jhoicas/Asignaciones-api/internal/domain/repository"
)

var _ repository.SectionRepository = (*SectionRepo)(nil)

// SectionRepo catálogo de secciones en PostgreSQL.
type SectionRepo struct {
	q Querier
}

// NewSectionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSectionRepository(q Querier) *SectionRepo {
	return &SectionRepo{q: q}
}

func (r *SectionRepo) Upsert(ctx context.Context, s entity.Section) error {
	query := `
		INSERT INTO sections (name, required_hours) VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET required_hours = EXCLUDED.required_hours`
	if _, err := r.q.Exec(ctx, query, s.Name, s.RequiredHours); err != nil {
		return fmt.Errorf("upsert section: %w", err)
	}
	return nil
}

func (r *SectionRepo) GetByName(ctx context.Context, name string) (*entity.Section, error) {
	var s entity.Section
	err := r.q.QueryRow(ctx, `SELECT name, required_hours FROM sections WHERE name = $1`, name).
		Scan(&s.Name, &s.RequiredHours)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get section: %w", err)
	}
	return &s, nil
}

func (r *SectionRepo) List(ctx context.Context) ([]entity.Section, error) {
	rows, err := r.q.Query(ctx, `SELECT name, required_hours FROM sections ORDER BY name`)
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
