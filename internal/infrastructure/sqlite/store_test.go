package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Asignaciones-api/internal/domain"
	"github.com/jhoicas/Asignaciones-api/internal/domain/entity"
	"github.com/jhoicas/Asignaciones-api/internal/domain/repository"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "asignaciones.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func seedStore(t *testing.T, s *Store) {
	t.Helper()
	ctx := context.Background()
	now := time.Now()
	require.NoError(t, s.Sections().Upsert(ctx, entity.Section{Name: "Horno", RequiredHours: 8}))
	require.NoError(t, s.Sections().Upsert(ctx, entity.Section{Name: "Pescadería", RequiredHours: 16}))
	require.NoError(t, s.Stores().Create(ctx, &entity.Store{ID: "s-1", Code: "T001", Name: "Tienda Centro", CreatedAt: now, UpdatedAt: now}))
	require.NoError(t, s.Workers().Create(ctx, &entity.Worker{
		ID: "w-1", Document: "12345678Z", Name: "Juan Pérez", AvailableHours: 8, StoreCode: "T001",
		CreatedAt: now, UpdatedAt: now,
	}))
}

func TestOpen_MigracionesIdempotentes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "asignaciones.db")
	s1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()
	n, err := s2.Stores().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestStoreRepo_DuplicadoYBusqueda(t *testing.T) {
	s := setupTestStore(t)
	seedStore(t, s)
	ctx := context.Background()

	err := s.Stores().Create(ctx, &entity.Store{ID: "s-2", Code: "T001", Name: "Otra"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	list, err := s.Stores().SearchByName(ctx, "centro")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "T001", list[0].Code)
}

func TestWorkerRepo_BusquedaUnicode(t *testing.T) {
	s := setupTestStore(t)
	seedStore(t, s)

	list, err := s.Workers().SearchByName(context.Background(), "PÉREZ")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "12345678Z", list[0].Document)
}

func TestWorkerRepo_TiendaInexistente(t *testing.T) {
	s := setupTestStore(t)
	err := s.Workers().Create(context.Background(), &entity.Worker{
		ID: "w-9", Document: "87654321X", Name: "Ana", AvailableHours: 4, StoreCode: "T404",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAssignmentRepo_ParUnicoYAgregados(t *testing.T) {
	s := setupTestStore(t)
	seedStore(t, s)
	ctx := context.Background()
	repo := s.Assignments()

	require.NoError(t, repo.Create(ctx, &entity.Assignment{ID: "a-1", WorkerDocument: "12345678Z", SectionName: "Horno", Hours: 6}))
	require.NoError(t, repo.Create(ctx, &entity.Assignment{ID: "a-2", WorkerDocument: "12345678Z", SectionName: "Pescadería", Hours: 2}))
	err := repo.Create(ctx, &entity.Assignment{ID: "a-3", WorkerDocument: "12345678Z", SectionName: "Horno", Hours: 1})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	sum, err := repo.SumHoursByStore(ctx, "T001")
	require.NoError(t, err)
	assert.Equal(t, 8, sum)

	got, err := repo.Get(ctx, "12345678Z", "Horno")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Juan Pérez", got.WorkerName)
	assert.Equal(t, "T001", got.StoreCode)

	min, err := repo.ListWithMinHours(ctx, 5)
	require.NoError(t, err)
	require.Len(t, min, 1)
	assert.Equal(t, "Horno", min[0].SectionName)
}

func TestRun_RollbackEnError(t *testing.T) {
	s := setupTestStore(t)
	seedStore(t, s)
	ctx := context.Background()
	require.NoError(t, s.Assignments().Create(ctx, &entity.Assignment{ID: "a-1", WorkerDocument: "12345678Z", SectionName: "Horno", Hours: 6}))
	boom := errors.New("boom")

	err := s.Run(ctx, func(
		_ repository.StoreRepository,
		workerRepo repository.WorkerRepository,
		assignmentRepo repository.AssignmentRepository,
		_ repository.SectionRepository,
	) error {
		n, err := assignmentRepo.DeleteByStore(ctx, "T001")
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		if _, err := workerRepo.DeleteByStore(ctx, "T001"); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	ok, err := s.Assignments().Exists(ctx, "12345678Z", "Horno")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = s.Workers().ExistsByDocument(ctx, "12345678Z")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestStoreRepo_DeleteConTrabajadores(t *testing.T) {
	s := setupTestStore(t)
	seedStore(t, s)
	err := s.Stores().Delete(context.Background(), "T001")
	assert.Equal(t, domain.KindConflict, domain.KindOf(err))
}
