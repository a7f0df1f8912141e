package pdf

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Asignaciones-api/internal/application/dto"
)

func TestRenderCoverage_GeneraPDF(t *testing.T) {
	g := NewMarotoPDFGenerator()
	out, err := g.RenderCoverage(context.Background(), &dto.StoreCoverageResponse{
		StoreCode: "T001",
		StoreName: "Tienda Centro",
		Address:   "Avenida del Puerto 12",
		IncompleteSections: []dto.SectionCoverageEntry{
			{Name: "Horno", Required: 8, Assigned: 6, Missing: 2},
			{Name: "Cajas", Required: 16, Assigned: 0, Missing: 16},
		},
		TotalIncomplete:   2,
		TotalMissingHours: 18,
	})
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRenderCoverage_SinSeccionesIncompletas(t *testing.T) {
	out, err := NewMarotoPDFGenerator().RenderCoverage(context.Background(), &dto.StoreCoverageResponse{
		StoreCode: "T002", StoreName: "Tienda Norte", IncompleteSections: []dto.SectionCoverageEntry{},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestRenderCoverage_Nil(t *testing.T) {
	_, err := NewMarotoPDFGenerator().RenderCoverage(context.Background(), nil)
	assert.Error(t, err)
}
