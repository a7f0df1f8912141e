package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Asignaciones-api/internal/domain"
	"github.com/jhoicas/Asignaciones-api/internal/domain/entity"
)

func TestNewStore(t *testing.T) {
	s, err := entity.NewStore("T001", "Tienda Centro")
	require.NoError(t, err)
	assert.Equal(t, "T001", s.Code)

	for _, code := range []string{"", "   ", "T01", "1001", "TT01", "T0011"} {
		_, err := entity.NewStore(code, "Tienda")
		assert.ErrorIs(t, err, domain.ErrInvalidInput, code)
	}
	_, err = entity.NewStore("T001", "  ")
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestStore_RenameMantieneCodigo(t *testing.T) {
	s, _ := entity.NewStore("T001", "Tienda Centro")
	require.NoError(t, s.Rename("Tienda Norte"))
	assert.Equal(t, "T001", s.Code)
	assert.Equal(t, "Tienda Norte", s.Name)
	assert.Error(t, s.Rename(""))
	assert.Equal(t, "Tienda Norte", s.Name)
}

func TestStore_EqualPorCodigo(t *testing.T) {
	a := &entity.Store{Code: "T001", Name: "A"}
	b := &entity.Store{Code: "T001", Name: "B"}
	c := &entity.Store{Code: "T002", Name: "A"}
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestNewWorker_RangoDeHoras(t *testing.T) {
	w, err := entity.NewWorker("12345678Z", "Juan Perez", 0, "T001")
	require.NoError(t, err, "0 horas se aceptan al crear")
	assert.Equal(t, 0, w.AvailableHours)

	_, err = entity.NewWorker("12345678Z", "Juan Perez", 9, "T001")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = entity.NewWorker("12345678Z", "Juan Perez", -1, "T001")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNewWorker_DocumentoInvalido(t *testing.T) {
	_, err := entity.NewWorker("12345678X", "Juan Perez", 8, "T001")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = entity.NewWorker("", "Juan Perez", 8, "T001")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestWorker_UpdateRechazaCeroHoras(t *testing.T) {
	w, err := entity.NewWorker("X1234567L", "Ana", 0, "T001")
	require.NoError(t, err)
	assert.ErrorIs(t, w.Update("Ana", 0), domain.ErrInvalidInput)
	assert.ErrorIs(t, w.Update("Ana", 9), domain.ErrInvalidInput)
	require.NoError(t, w.Update("Ana María", 1))
	assert.Equal(t, 1, w.AvailableHours)
	assert.Equal(t, "Ana María", w.Name)
}

func TestNewAssignment(t *testing.T) {
	a, err := entity.NewAssignment("12345678Z", "Horno", 8)
	require.NoError(t, err)
	assert.Equal(t, 8, a.Hours)

	for _, h := range []int{0, -2, 9} {
		_, err := entity.NewAssignment("12345678Z", "Horno", h)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.ErrorIs(t, a.SetHours(10), domain.ErrInvalidInput)
	assert.Equal(t, 8, a.Hours)
}

func TestAssignment_EqualIgnoraHoras(t *testing.T) {
	a := &entity.Assignment{WorkerDocument: "12345678Z", SectionName: "Horno", Hours: 2}
	b := &entity.Assignment{WorkerDocument: "12345678Z", SectionName: "Horno", Hours: 7}
	c := &entity.Assignment{WorkerDocument: "12345678Z", SectionName: "Cajas", Hours: 2}
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestParseSectionCatalog(t *testing.T) {
	def, err := entity.ParseSectionCatalog("")
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultSectionCatalog(), def)

	cat, err := entity.ParseSectionCatalog("Horno:4, Cajas:10")
	require.NoError(t, err)
	require.Len(t, cat, 2)
	s, ok := cat.Find("Cajas")
	require.True(t, ok)
	assert.Equal(t, 10, s.RequiredHours)

	for _, raw := range []string{"Horno", "Horno:0", "Horno:x", "Horno:4,Horno:5", ":3"} {
		_, err := entity.ParseSectionCatalog(raw)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, raw)
	}
}

func TestDefaultSectionCatalog(t *testing.T) {
	cat := entity.DefaultSectionCatalog()
	want := map[string]int{"Horno": 8, "Cajas": 16, "Pescadería": 16, "Verduras": 16, "Droguería": 16}
	require.Len(t, cat, len(want))
	for _, s := range cat {
		assert.Equal(t, want[s.Name], s.RequiredHours, s.Name)
	}
}
