package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/Asignaciones-api/internal/domain"
	"github.com/jhoicas/Asignaciones-api/internal/domain/entity"
	"github.com/jhoicas/Asignaciones-api/internal/domain/repository"
)

var _ repository.WorkerRepository = (*WorkerRepo)(nil)

// WorkerRepo implementación en memoria de repository.WorkerRepository.
type WorkerRepo struct{ scope }

// NewWorkerRepository crea el repositorio sobre db.
func NewWorkerRepository(db *DB) *WorkerRepo {
	return &WorkerRepo{scope{db: db}}
}

func (r *WorkerRepo) Create(_ context.Context, w *entity.Worker) error {
	return r.write(func(st *state) error {
		if _, ok := st.workers[w.Document]; ok {
			return domain.ErrDuplicate
		}
		if _, ok := st.stores[w.StoreCode]; !ok {
			return domain.ErrNotFound
		}
		st.workers[w.Document] = *w
		return nil
	})
}

func (r *WorkerRepo) GetByDocument(_ context.Context, document string) (*entity.Worker, error) {
	var out *entity.Worker
	r.read(func(st *state) {
		if w, ok := st.workers[document]; ok {
			out = &w
		}
	})
	return out, nil
}

func (r *WorkerRepo) GetByDocumentForUpdate(ctx context.Context, document string) (*entity.Worker, error) {
	return r.GetByDocument(ctx, document)
}

func (r *WorkerRepo) ListByStore(_ context.Context, storeCode string) ([]*entity.Worker, error) {
	return r.filter(func(w entity.Worker) bool { return w.StoreCode == storeCode }), nil
}

func (r *WorkerRepo) SearchByName(_ context.Context, name string) ([]*entity.Worker, error) {
	return r.filter(func(w entity.Worker) bool { return containsFold(w.Name, name) }), nil
}

func (r *WorkerRepo) ListWithMinHours(_ context.Context, minHours int) ([]*entity.Worker, error) {
	return r.filter(func(w entity.Worker) bool { return w.AvailableHours >= minHours }), nil
}

func (r *WorkerRepo) Update(_ context.Context, w *entity.Worker) error {
	return r.write(func(st *state) error {
		if _, ok := st.workers[w.Document]; !ok {
			return domain.ErrNotFound
		}
		st.workers[w.Document] = *w
		return nil
	})
}

func (r *WorkerRepo) Delete(_ context.Context, document string) error {
	return r.write(func(st *state) error {
		delete(st.workers, document)
		return nil
	})
}

func (r *WorkerRepo) DeleteByStore(_ context.Context, storeCode string) (int, error) {
	var n int
	err := r.write(func(st *state) error {
		for doc, w := range st.workers {
			if w.StoreCode == storeCode {
				delete(st.workers, doc)
				n++
			}
		}
		return nil
	})
	return n, err
}

func (r *WorkerRepo) ExistsByDocument(_ context.Context, document string) (bool, error) {
	var ok bool
	r.read(func(st *state) { _, ok = st.workers[document] })
	return ok, nil
}

func (r *WorkerRepo) CountByStore(ctx context.Context, storeCode string) (int, error) {
	list, _ := r.ListByStore(ctx, storeCode)
	return len(list), nil
}

func (r *WorkerRepo) SumAvailableHoursByStore(ctx context.Context, storeCode string) (int, error) {
	list, _ := r.ListByStore(ctx, storeCode)
	total := 0
	for _, w := range list {
		total += w.AvailableHours
	}
	return total, nil
}

func (r *WorkerRepo) filter(keep func(entity.Worker) bool) []*entity.Worker {
	out := make([]*entity.Worker, 0)
	r.read(func(st *state) {
		for _, w := range st.workers {
			if keep(w) {
				w := w
				out = append(out, &w)
			}
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Document < out[j].Document })
	return out
}
