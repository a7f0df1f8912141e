package report_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Asignaciones-api/internal/application/dto"
	"github.com/jhoicas/Asignaciones-api/internal/application/ports"
	"github.com/jhoicas/Asignaciones-api/internal/application/report"
	"github.com/jhoicas/Asignaciones-api/internal/domain"
	"github.com/jhoicas/Asignaciones-api/internal/domain/entity"
	"github.com/jhoicas/Asignaciones-api/internal/infrastructure/memory"
)

type fakeLookup struct {
	address string
	found   bool
	err     error
}

func (f fakeLookup) FindAddressByStoreName(context.Context, string) (string, bool, error) {
	return f.address, f.found, f.err
}

type fakeRenderer struct {
	got *dto.StoreCoverageResponse
}

func (f *fakeRenderer) RenderCoverage(_ context.Context, cov *dto.StoreCoverageResponse) ([]byte, error) {
	f.got = cov
	return []byte("%PDF-fake"), nil
}

func newUseCase(t *testing.T, lookup ports.AddressLookup, renderer report.PDFRenderer) *report.CoverageUseCase {
	t.Helper()
	db := memory.NewDB()
	ctx := context.Background()
	catalog := entity.DefaultSectionCatalog()
	for _, s := range catalog {
		require.NoError(t, memory.NewSectionRepository(db).Upsert(ctx, s))
	}
	stores := memory.NewStoreRepository(db)
	require.NoError(t, stores.Create(ctx, &entity.Store{Code: "T001", Name: "Tienda Centro"}))
	workers := memory.NewWorkerRepository(db)
	require.NoError(t, workers.Create(ctx, &entity.Worker{Document: "12345678Z", Name: "Juan Perez", AvailableHours: 8, StoreCode: "T001"}))
	require.NoError(t, workers.Create(ctx, &entity.Worker{Document: "X1234567L", Name: "Ana Ruiz", AvailableHours: 8, StoreCode: "T001"}))

	assignments := memory.NewAssignmentRepository(db)
	require.NoError(t, assignments.Create(ctx, &entity.Assignment{WorkerDocument: "12345678Z", SectionName: "Horno", Hours: 6}))
	require.NoError(t, assignments.Create(ctx, &entity.Assignment{WorkerDocument: "12345678Z", SectionName: "Cajas", Hours: 8}))
	require.NoError(t, assignments.Create(ctx, &entity.Assignment{WorkerDocument: "X1234567L", SectionName: "Cajas", Hours: 8}))

	return report.NewCoverageUseCase(stores, assignments, catalog, lookup, renderer)
}

func TestStoreCoverage_SoloSeccionesIncompletas(t *testing.T) {
	uc := newUseCase(t, nil, nil)
	cov, err := uc.StoreCoverage(context.Background(), "T001")
	require.NoError(t, err)

	byName := make(map[string]dto.SectionCoverageEntry)
	total := 0
	for _, s := range cov.IncompleteSections {
		assert.Positive(t, s.Missing)
		assert.Equal(t, s.Required-s.Assigned, s.Missing)
		byName[s.Name] = s
		total += s.Missing
	}
	assert.NotContains(t, byName, "Cajas", "16 de 16 horas: cubierta")
	assert.Equal(t, 2, byName["Horno"].Missing)
	assert.Equal(t, 6, byName["Horno"].Assigned)
	assert.Equal(t, len(cov.IncompleteSections), cov.TotalIncomplete)
	assert.Equal(t, total, cov.TotalMissingHours)
	assert.Equal(t, 4, cov.TotalIncomplete)
}

func TestStoreStatus_AgrupaPorSeccion(t *testing.T) {
	uc := newUseCase(t, nil, nil)
	st, err := uc.StoreStatus(context.Background(), "T001")
	require.NoError(t, err)
	assert.Equal(t, "Tienda Centro", st.StoreName)
	require.Len(t, st.Sections, 2, "las secciones sin asignaciones no aparecen")
	assert.Equal(t, "Cajas", st.Sections[0].Name)
	assert.Len(t, st.Sections[0].Workers, 2)
	assert.Equal(t, "Horno", st.Sections[1].Name)
	assert.Equal(t, dto.AssignedWorker{Document: "12345678Z", Name: "Juan Perez", Hours: 6}, st.Sections[1].Workers[0])
}

func TestStoreCoverage_TiendaInexistente(t *testing.T) {
	uc := newUseCase(t, nil, nil)
	_, err := uc.StoreCoverage(context.Background(), "T404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.StoreStatus(context.Background(), "T404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStoreCoverage_Direccion(t *testing.T) {
	uc := newUseCase(t, fakeLookup{address: "Calle Mayor 1", found: true}, nil)
	cov, err := uc.StoreCoverage(context.Background(), "T001")
	require.NoError(t, err)
	assert.Equal(t, "Calle Mayor 1", cov.Address)

	uc = newUseCase(t, fakeLookup{err: errors.New("directorio caído")}, nil)
	st, err := uc.StoreStatus(context.Background(), "T001")
	require.NoError(t, err, "el fallo del directorio no rompe el informe")
	assert.Empty(t, st.Address)
}

func TestStoreCoveragePDF(t *testing.T) {
	renderer := &fakeRenderer{}
	uc := newUseCase(t, nil, renderer)
	raw, name, err := uc.StoreCoveragePDF(context.Background(), "T001")
	require.NoError(t, err)
	assert.Equal(t, "cobertura_T001.pdf", name)
	assert.Equal(t, []byte("%PDF-fake"), raw)
	require.NotNil(t, renderer.got)
	assert.Equal(t, 4, renderer.got.TotalIncomplete)

	_, _, err = newUseCase(t, nil, nil).StoreCoveragePDF(context.Background(), "T001")
	assert.Error(t, err)
}
