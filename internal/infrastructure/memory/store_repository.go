package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/Asignaciones-api/internal/domain"
	"github.com/jhoicas/Asignaciones-api/internal/domain/entity"
	"github.com/jhoicas/Asignaciones-api/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo implementación en memoria de repository.StoreRepository.
type StoreRepo struct{ scope }

// NewStoreRepository crea el repositorio sobre db.
func NewStoreRepository(db *DB) *StoreRepo {
	return &StoreRepo{scope{db: db}}
}

func (r *StoreRepo) Create(_ context.Context, s *entity.Store) error {
	return r.write(func(st *state) error {
		if _, ok := st.stores[s.Code]; ok {
			return domain.ErrDuplicate
		}
		st.stores[s.Code] = *s
		return nil
	})
}

func (r *StoreRepo) GetByCode(_ context.Context, code string) (*entity.Store, error) {
	var out *entity.Store
	r.read(func(st *state) {
		if s, ok := st.stores[code]; ok {
			out = &s
		}
	})
	return out, nil
}

// GetByCodeForUpdate dentro de una transacción el estado ya está bloqueado entero.
func (r *StoreRepo) GetByCodeForUpdate(ctx context.Context, code string) (*entity.Store, error) {
	return r.GetByCode(ctx, code)
}

func (r *StoreRepo) SearchByName(_ context.Context, name string) ([]*entity.Store, error) {
	return r.filter(func(s entity.Store) bool { return containsFold(s.Name, name) }), nil
}

func (r *StoreRepo) List(_ context.Context) ([]*entity.Store, error) {
	return r.filter(func(entity.Store) bool { return true }), nil
}

func (r *StoreRepo) Update(_ context.Context, s *entity.Store) error {
	return r.write(func(st *state) error {
		if _, ok := st.stores[s.Code]; !ok {
			return domain.ErrNotFound
		}
		st.stores[s.Code] = *s
		return nil
	})
}

func (r *StoreRepo) Delete(_ context.Context, code string) error {
	return r.write(func(st *state) error {
		delete(st.stores, code)
		return nil
	})
}

func (r *StoreRepo) ExistsByCode(_ context.Context, code string) (bool, error) {
	var ok bool
	r.read(func(st *state) { _, ok = st.stores[code] })
	return ok, nil
}

func (r *StoreRepo) Count(_ context.Context) (int, error) {
	var n int
	r.read(func(st *state) { n = len(st.stores) })
	return n, nil
}

func (r *StoreRepo) filter(keep func(entity.Store) bool) []*entity.Store {
	out := make([]*entity.Store, 0)
	r.read(func(st *state) {
		for _, s := range st.stores {
			if keep(s) {
				s := s
				out = append(out, &s)
			}
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
