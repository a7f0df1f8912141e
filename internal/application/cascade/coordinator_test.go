package cascade_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Asignaciones-api/internal/application/cascade"
	"github.com/jhoicas/Asignaciones-api/internal/domain"
	"github.com/jhoicas/Asignaciones-api/internal/domain/entity"
	"github.com/jhoicas/Asignaciones-api/internal/domain/repository"
	"github.com/jhoicas/Asignaciones-api/internal/infrastructure/memory"
)

func seed(t *testing.T, db *memory.DB) {
	t.Helper()
	ctx := context.Background()
	for _, s := range entity.DefaultSectionCatalog() {
		require.NoError(t, memory.NewSectionRepository(db).Upsert(ctx, s))
	}
	stores := memory.NewStoreRepository(db)
	require.NoError(t, stores.Create(ctx, &entity.Store{Code: "T001", Name: "Tienda Centro"}))
	require.NoError(t, stores.Create(ctx, &entity.Store{Code: "T002", Name: "Tienda Norte"}))

	workers := memory.NewWorkerRepository(db)
	assignments := memory.NewAssignmentRepository(db)
	for _, w := range []*entity.Worker{
		{Document: "12345678Z", Name: "Juan Perez", AvailableHours: 8, StoreCode: "T001"},
		{Document: "X1234567L", Name: "Ana Ruiz", AvailableHours: 6, StoreCode: "T001"},
		{Document: "87654321X", Name: "Luis Gil", AvailableHours: 8, StoreCode: "T002"},
	} {
		require.NoError(t, workers.Create(ctx, w))
		require.NoError(t, assignments.Create(ctx, &entity.Assignment{WorkerDocument: w.Document, SectionName: "Horno", Hours: 4}))
	}
	require.NoError(t, assignments.Create(ctx, &entity.Assignment{WorkerDocument: "12345678Z", SectionName: "Cajas", Hours: 2}))
}

func TestDeleteStore_ArrastraTrabajadoresYAsignaciones(t *testing.T) {
	db := memory.NewDB()
	seed(t, db)
	ctx := context.Background()

	res, err := cascade.NewCoordinator(memory.NewTxRunner(db)).DeleteStore(ctx, "T001")
	require.NoError(t, err)
	assert.Equal(t, cascade.Result{Workers: 2, Assignments: 3}, res)

	exists, err := memory.NewStoreRepository(db).ExistsByCode(ctx, "T001")
	require.NoError(t, err)
	assert.False(t, exists)

	left, err := memory.NewAssignmentRepository(db).ListBySection(ctx, "Horno")
	require.NoError(t, err)
	require.Len(t, left, 1, "la otra tienda no se toca")
	assert.Equal(t, "87654321X", left[0].WorkerDocument)
}

func TestDeleteStore_NoExiste(t *testing.T) {
	db := memory.NewDB()
	_, err := cascade.NewCoordinator(memory.NewTxRunner(db)).DeleteStore(context.Background(), "T404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteWorker_SoloSusAsignaciones(t *testing.T) {
	db := memory.NewDB()
	seed(t, db)
	ctx := context.Background()

	res, err := cascade.NewCoordinator(memory.NewTxRunner(db)).DeleteWorker(ctx, "12345678Z")
	require.NoError(t, err)
	assert.Equal(t, cascade.Result{Workers: 1, Assignments: 2}, res)

	n, err := memory.NewAssignmentRepository(db).CountBySection(ctx, "Horno")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

// failingRunner delega en el runner en memoria pero hace fallar el borrado de trabajadores.
type failingRunner struct {
	inner *memory.TxRunner
}

type failingWorkers struct {
	repository.WorkerRepository
}

var errBoom = errors.New("fallo de almacenamiento")

func (failingWorkers) DeleteByStore(context.Context, string) (int, error) { return 0, errBoom }

func (r failingRunner) Run(ctx context.Context, fn func(
	repository.StoreRepository,
	repository.WorkerRepository,
	repository.AssignmentRepository,
	repository.SectionRepository,
) error) error {
	return r.inner.Run(ctx, func(
		s repository.StoreRepository,
		w repository.WorkerRepository,
		a repository.AssignmentRepository,
		sec repository.SectionRepository,
	) error {
		return fn(s, failingWorkers{w}, a, sec)
	})
}

func TestDeleteStore_FalloIntermedioNoDejaRastro(t *testing.T) {
	db := memory.NewDB()
	seed(t, db)
	ctx := context.Background()

	_, err := cascade.NewCoordinator(failingRunner{memory.NewTxRunner(db)}).DeleteStore(ctx, "T001")
	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, domain.KindInternal, domain.KindOf(err))

	n, err := memory.NewAssignmentRepository(db).CountByWorker(ctx, "12345678Z")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "las asignaciones borradas antes del fallo se restauran")
}
