package memory

import (
	"context"

	"github.com/jhoicas/Asignaciones-api/internal/domain"
	"github.com/jhoicas/Asignaciones-api/internal/domain/entity"
	"github.com/jhoicas/Asignaciones-api/internal/domain/repository"
)

var _ repository.AssignmentRepository = (*AssignmentRepo)(nil)

// AssignmentRepo implementación en memoria de repository.AssignmentRepository.
type AssignmentRepo struct{ scope }

// NewAssignmentRepository crea el repositorio sobre db.
func NewAssignmentRepository(db *DB) *AssignmentRepo {
	return &AssignmentRepo{scope{db: db}}
}

func (r *AssignmentRepo) Create(_ context.Context, a *entity.Assignment) error {
	return r.write(func(st *state) error {
		key := pairKey{a.WorkerDocument, a.SectionName}
		if _, ok := st.assignments[key]; ok {
			return domain.ErrDuplicate
		}
		if _, ok := st.workers[a.WorkerDocument]; !ok {
			return domain.ErrNotFound
		}
		if _, ok := st.sections[a.SectionName]; !ok {
			return domain.ErrNotFound
		}
		stored := *a
		stored.WorkerName, stored.StoreCode = "", ""
		st.assignments[key] = stored
		return nil
	})
}

func (r *AssignmentRepo) Get(_ context.Context, document, sectionName string) (*entity.Assignment, error) {
	var out *entity.Assignment
	r.read(func(st *state) {
		if a, ok := st.assignments[pairKey{document, sectionName}]; ok {
			out = withJoin(st, a)
		}
	})
	return out, nil
}

func (r *AssignmentRepo) ListByWorker(_ context.Context, document string) ([]*entity.Assignment, error) {
	return r.filter(func(a *entity.Assignment) bool { return a.WorkerDocument == document }), nil
}

func (r *AssignmentRepo) ListBySection(_ context.Context, sectionName string) ([]*entity.Assignment, error) {
	return r.filter(func(a *entity.Assignment) bool { return a.SectionName == sectionName }), nil
}

func (r *AssignmentRepo) ListByStore(_ context.Context, storeCode string) ([]*entity.Assignment, error) {
	return r.filter(func(a *entity.Assignment) bool { return a.StoreCode == storeCode }), nil
}

func (r *AssignmentRepo) ListWithMinHours(_ context.Context, minHours int) ([]*entity.Assignment, error) {
	return r.filter(func(a *entity.Assignment) bool { return a.Hours >= minHours }), nil
}

func (r *AssignmentRepo) SumHoursByStore(ctx context.Context, storeCode string) (int, error) {
	list, _ := r.ListByStore(ctx, storeCode)
	return sumHours(list), nil
}

func (r *AssignmentRepo) SumHoursBySection(ctx context.Context, sectionName string) (int, error) {
	list, _ := r.ListBySection(ctx, sectionName)
	return sumHours(list), nil
}

func (r *AssignmentRepo) CountByWorker(ctx context.Context, document string) (int, error) {
	list, _ := r.ListByWorker(ctx, document)
	return len(list), nil
}

func (r *AssignmentRepo) CountBySection(ctx context.Context, sectionName string) (int, error) {
	list, _ := r.ListBySection(ctx, sectionName)
	return len(list), nil
}

func (r *AssignmentRepo) Exists(_ context.Context, document, sectionName string) (bool, error) {
	var ok bool
	r.read(func(st *state) { _, ok = st.assignments[pairKey{document, sectionName}] })
	return ok, nil
}

func (r *AssignmentRepo) UpdateHours(_ context.Context, a *entity.Assignment) error {
	return r.write(func(st *state) error {
		key := pairKey{a.WorkerDocument, a.SectionName}
		cur, ok := st.assignments[key]
		if !ok {
			return domain.ErrNotFound
		}
		cur.Hours = a.Hours
		cur.UpdatedAt = a.UpdatedAt
		st.assignments[key] = cur
		return nil
	})
}

func (r *AssignmentRepo) Delete(_ context.Context, document, sectionName string) error {
	return r.write(func(st *state) error {
		delete(st.assignments, pairKey{document, sectionName})
		return nil
	})
}

func (r *AssignmentRepo) DeleteByWorker(_ context.Context, document string) (int, error) {
	return r.deleteWhere(func(st *state, a entity.Assignment) bool { return a.WorkerDocument == document })
}

// DeleteByStore borra las asignaciones de los trabajadores que pertenecen a la tienda.
func (r *AssignmentRepo) DeleteByStore(_ context.Context, storeCode string) (int, error) {
	return r.deleteWhere(func(st *state, a entity.Assignment) bool {
		return st.workers[a.WorkerDocument].StoreCode == storeCode
	})
}

func (r *AssignmentRepo) deleteWhere(match func(*state, entity.Assignment) bool) (int, error) {
	var n int
	err := r.write(func(st *state) error {
		for key, a := range st.assignments {
			if match(st, a) {
				delete(st.assignments, key)
				n++
			}
		}
		return nil
	})
	return n, err
}

func (r *AssignmentRepo) filter(keep func(*entity.Assignment) bool) []*entity.Assignment {
	out := make([]*entity.Assignment, 0)
	r.read(func(st *state) {
		for _, a := range st.assignments {
			if joined := withJoin(st, a); keep(joined) {
				out = append(out, joined)
			}
		}
	})
	sortAssignments(out)
	return out
}

func sumHours(list []*entity.Assignment) int {
	total := 0
	for _, a := range list {
		total += a.Hours
	}
	return total
}
