package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/Asignaciones-api/internal/domain/entity"
	"github.com/jhoicas/Asignaciones-api/internal/domain/repository"
)

var _ repository.SectionRepository = (*SectionRepo)(nil)

// SectionRepo catálogo de secciones en memoria.
type SectionRepo struct{ scope }

// NewSectionRepository crea el repositorio sobre db.
func NewSectionRepository(db *DB) *SectionRepo {
	return &SectionRepo{scope{db: db}}
}

func (r *SectionRepo) Upsert(_ context.Context, s entity.Section) error {
	return r.write(func(st *state) error {
		st.sections[s.Name] = s
		return nil
	})
}

func (r *SectionRepo) GetByName(_ context.Context, name string) (*entity.Section, error) {
	var out *entity.Section
	r.read(func(st *state) {
		if s, ok := st.sections[name]; ok {
			out = &s
		}
	})
	return out, nil
}

func (r *SectionRepo) List(_ context.Context) ([]entity.Section, error) {
	out := make([]entity.Section, 0)
	r.read(func(st *state) {
		for _, s := range st.sections {
			out = append(out, s)
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
