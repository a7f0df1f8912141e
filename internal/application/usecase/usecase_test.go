package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Asignaciones-api/internal/application/cascade"
	"github.com/jhoicas/Asignaciones-api/internal/application/dto"
	"github.com/jhoicas/Asignaciones-api/internal/application/usecase"
	"github.com/jhoicas/Asignaciones-api/internal/domain"
	"github.com/jhoicas/Asignaciones-api/internal/domain/entity"
	"github.com/jhoicas/Asignaciones-api/internal/infrastructure/memory"
)

type fixture struct {
	stores      *usecase.StoreUseCase
	workers     *usecase.WorkerUseCase
	assignments *usecase.AssignmentUseCase
	sections    *usecase.SectionUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := memory.NewDB()
	storeRepo := memory.NewStoreRepository(db)
	workerRepo := memory.NewWorkerRepository(db)
	sectionRepo := memory.NewSectionRepository(db)
	txRunner := memory.NewTxRunner(db)
	coordinator := cascade.NewCoordinator(txRunner)

	f := &fixture{
		stores:      usecase.NewStoreUseCase(storeRepo, coordinator),
		workers:     usecase.NewWorkerUseCase(txRunner, storeRepo, workerRepo, coordinator),
		assignments: usecase.NewAssignmentUseCase(txRunner, workerRepo, sectionRepo, memory.NewAssignmentRepository(db)),
		sections:    usecase.NewSectionUseCase(sectionRepo, entity.DefaultSectionCatalog()),
	}
	require.NoError(t, f.sections.SeedCatalog(context.Background()))
	return f
}

// withJuan tienda T001 con el trabajador 12345678Z (8 h disponibles).
func (f *fixture) withJuan(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	_, err := f.stores.Create(ctx, dto.CreateStoreRequest{Code: "T001", Name: "Tienda Centro"})
	require.NoError(t, err)
	_, err = f.workers.Create(ctx, dto.CreateWorkerRequest{
		Document: "12345678Z", Name: "Juan Perez", AvailableHours: 8, StoreCode: "T001",
	})
	require.NoError(t, err)
}

func TestStoreUseCase_CrudBasico(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	out, err := f.stores.Create(ctx, dto.CreateStoreRequest{Code: "T001", Name: "Tienda Centro"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)

	_, err = f.stores.Create(ctx, dto.CreateStoreRequest{Code: "T001", Name: "Otra"})
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = f.stores.Create(ctx, dto.CreateStoreRequest{Code: "T01", Name: "Mal"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	renamed, err := f.stores.Update(ctx, "T001", dto.UpdateStoreRequest{Name: "Tienda Norte"})
	require.NoError(t, err)
	assert.Equal(t, "T001", renamed.Code)
	assert.Equal(t, "Tienda Norte", renamed.Name)

	_, err = f.stores.Update(ctx, "T999", dto.UpdateStoreRequest{Name: "X"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	n, err := f.stores.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	found, err := f.stores.SearchByName(ctx, "norte")
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestWorkerUseCase_AltaYModificacion(t *testing.T) {
	f := newFixture(t)
	f.withJuan(t)
	ctx := context.Background()

	zero, err := f.workers.Create(ctx, dto.CreateWorkerRequest{
		Document: "X1234567L", Name: "Ana", AvailableHours: 0, StoreCode: "T001",
	})
	require.NoError(t, err, "0 horas se aceptan en el alta")
	assert.Equal(t, 0, zero.AvailableHours)

	_, err = f.workers.Update(ctx, "X1234567L", dto.UpdateWorkerRequest{Name: "Ana", AvailableHours: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "la modificación exige 1..8")

	_, err = f.workers.Create(ctx, dto.CreateWorkerRequest{
		Document: "12345678Z", Name: "Otro", AvailableHours: 4, StoreCode: "T001",
	})
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = f.workers.Create(ctx, dto.CreateWorkerRequest{
		Document: "87654321X", Name: "Luis", AvailableHours: 4, StoreCode: "T999",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Documento ya registrado y tienda inexistente: gana la tienda.
	_, err = f.workers.Create(ctx, dto.CreateWorkerRequest{
		Document: "12345678Z", Name: "Otro", AvailableHours: 4, StoreCode: "T999",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NotErrorIs(t, err, domain.ErrConflict)

	total, err := f.workers.SumAvailableHoursByStore(ctx, "T001")
	require.NoError(t, err)
	assert.Equal(t, 8, total)

	list, err := f.workers.ListWithMinHours(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "12345678Z", list[0].Document)
}

func TestAssignmentUseCase_EscenarioJuanPerez(t *testing.T) {
	f := newFixture(t)
	f.withJuan(t)
	ctx := context.Background()

	_, err := f.assignments.Create(ctx, dto.CreateAssignmentRequest{WorkerDocument: "12345678Z", SectionName: "Horno", Hours: 10})
	require.Error(t, err)
	assert.Equal(t, domain.KindConflict, domain.KindOf(err))
	assert.Contains(t, err.Error(), "10")
	assert.Contains(t, err.Error(), "8")

	out, err := f.assignments.Create(ctx, dto.CreateAssignmentRequest{WorkerDocument: "12345678Z", SectionName: "Horno", Hours: 6})
	require.NoError(t, err)
	assert.Equal(t, "Juan Perez", out.WorkerName)
	assert.Equal(t, "T001", out.StoreCode)

	_, err = f.assignments.Create(ctx, dto.CreateAssignmentRequest{WorkerDocument: "12345678Z", SectionName: "Horno", Hours: 1})
	assert.ErrorIs(t, err, domain.ErrConflict)

	// las horas no se descuentan entre secciones
	_, err = f.assignments.Create(ctx, dto.CreateAssignmentRequest{WorkerDocument: "12345678Z", SectionName: "Cajas", Hours: 8})
	require.NoError(t, err)

	sum, err := f.assignments.SumHoursByStore(ctx, "T001")
	require.NoError(t, err)
	assert.Equal(t, 14, sum)

	n, err := f.assignments.CountByWorker(ctx, "12345678Z")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestAssignmentUseCase_ReferenciasInexistentes(t *testing.T) {
	f := newFixture(t)
	f.withJuan(t)
	ctx := context.Background()

	_, err := f.assignments.Create(ctx, dto.CreateAssignmentRequest{WorkerDocument: "87654321X", SectionName: "Horno", Hours: 2})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.assignments.Create(ctx, dto.CreateAssignmentRequest{WorkerDocument: "12345678Z", SectionName: "Panadería", Hours: 2})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.assignments.Create(ctx, dto.CreateAssignmentRequest{WorkerDocument: "", SectionName: "Horno", Hours: 2})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = f.assignments.Delete(ctx, "12345678Z", "Horno")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.assignments.ListBySection(ctx, "Panadería")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAssignmentUseCase_HorasFueraDeRango(t *testing.T) {
	f := newFixture(t)
	f.withJuan(t)
	ctx := context.Background()

	_, err := f.assignments.Create(ctx, dto.CreateAssignmentRequest{WorkerDocument: "12345678Z", SectionName: "Horno", Hours: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.assignments.Create(ctx, dto.CreateAssignmentRequest{WorkerDocument: "12345678Z", SectionName: "Horno", Hours: 3})
	require.NoError(t, err)

	_, err = f.assignments.UpdateHours(ctx, "12345678Z", "Horno", dto.UpdateAssignmentHoursRequest{Hours: 9})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err := f.assignments.UpdateHours(ctx, "12345678Z", "Horno", dto.UpdateAssignmentHoursRequest{Hours: 5})
	require.NoError(t, err)
	assert.Equal(t, 5, out.Hours)

	got, err := f.assignments.Get(ctx, "12345678Z", "Horno")
	require.NoError(t, err)
	assert.Equal(t, 5, got.Hours)
}

func TestWorkerUseCase_BajaEliminaAsignaciones(t *testing.T) {
	f := newFixture(t)
	f.withJuan(t)
	ctx := context.Background()
	_, err := f.assignments.Create(ctx, dto.CreateAssignmentRequest{WorkerDocument: "12345678Z", SectionName: "Horno", Hours: 3})
	require.NoError(t, err)

	res, err := f.workers.Delete(ctx, "12345678Z")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Assignments)

	sum, err := f.assignments.SumHoursByStore(ctx, "T001")
	require.NoError(t, err)
	assert.Zero(t, sum)

	_, err = f.workers.Delete(ctx, "12345678Z")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
