// Package pdf genera el informe de cobertura de una tienda en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Tienda + código        │  Título + fecha           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DIRECCIÓN (si el directorio externo la devuelve)           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Sección | Requeridas | Asignadas | Faltan           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: secciones incompletas / horas por cubrir          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Asignaciones-api/internal/application/dto"
	"github.com/jhoicas/Asignaciones-api/internal/application/report"
)

var _ report.PDFRenderer = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 120, Blue: 70}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// MarotoPDFGenerator implementa report.PDFRenderer usando Maroto v2.
type MarotoPDFGenerator struct {
	now func() time.Time
}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator {
	return &MarotoPDFGenerator{now: time.Now}
}

// RenderCoverage genera el PDF del informe de cobertura y devuelve sus bytes.
func (g *MarotoPDFGenerator) RenderCoverage(_ context.Context, cov *dto.StoreCoverageResponse) ([]byte, error) {
	if cov == nil {
		return nil, fmt.Errorf("pdf: informe vacío")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Cobertura de secciones "+cov.StoreCode, true).
		WithAuthor(cov.StoreName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(cov, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	if cov.Address != "" {
		m.AddRows(addressRow(cov.Address))
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	}

	if len(cov.IncompleteSections) == 0 {
		m.AddRows(row.New(12).Add(col.New(12).Add(
			text.New("Todas las secciones tienen cubiertas sus horas requeridas.", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Center, Color: colorPrimary, Top: 4,
			}),
		)))
	} else {
		m.AddRows(tableHeaderRow())
		m.AddRows(tableRows(cov.IncompleteSections)...)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(cov))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: tienda (izq) y título + fecha (der).
func headerRow(cov *dto.StoreCoverageResponse, at time.Time) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(cov.StoreName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Código: "+cov.StoreCode, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("INFORME DE COBERTURA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Fecha: "+at.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func addressRow(address string) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New("DIRECCIÓN", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
		text.New(address, props.Text{Size: 8, Top: 5, Color: colorGray}),
	))
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Sección", 6, align.Left),
		h("Requeridas", 2, align.Right),
		h("Asignadas", 2, align.Right),
		h("Faltan", 2, align.Right),
	)
}

// tableRows: una fila por sección incompleta.
func tableRows(sections []dto.SectionCoverageEntry) []core.Row {
	result := make([]core.Row, 0, len(sections))
	cell := func(s string, size int, a align.Type, c *props.Color) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1, Color: c}))
	}
	for _, s := range sections {
		result = append(result, row.New(7).Add(
			cell(s.Name, 6, align.Left, nil),
			cell(hours(s.Required), 2, align.Right, nil),
			cell(hours(s.Assigned), 2, align.Right, nil),
			cell(hours(s.Missing), 2, align.Right, colorAlert),
		))
	}
	return result
}

func totalsRow(cov *dto.StoreCoverageResponse) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	return row.New(14).Add(
		col.New(6),
		col.New(4).Add(
			label("Secciones incompletas:"),
			text.New("Horas por cubrir:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: 6,
			}),
		),
		col.New(2).Add(
			text.New(strconv.Itoa(cov.TotalIncomplete), props.Text{Size: 9, Align: align.Right, Right: 1}),
			text.New(hours(cov.TotalMissingHours), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 6,
			}),
		),
	)
}

func hours(n int) string { return strconv.Itoa(n) + " h" }
