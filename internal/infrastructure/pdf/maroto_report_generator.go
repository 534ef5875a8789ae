// Package pdf genera el Relatório de Movimentações en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + período     │  Generado en                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Entradas | Saídas | Movimentações                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Data | Produto | Tipo | Quantidade | Motivo | Obs.   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  POR CATEGORÍA: Categoria | Quantidade                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

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

	"github.com/jhoicas/stockpro/internal/application/dto"
	"github.com/jhoicas/stockpro/internal/application/ports"
	"github.com/jhoicas/stockpro/internal/infrastructure/reportfmt"
)

var _ ports.ReportExporter = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorEntry   = &props.Color{Red: 22, Green: 128, Blue: 61}
	colorExit    = &props.Color{Red: 185, Green: 28, Blue: 28}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa ports.ReportExporter usando Maroto v2.
type MarotoReportGenerator struct {
	author string
}

// NewMarotoReportGenerator construye el generador; author va en los metadatos del PDF.
func NewMarotoReportGenerator(author string) *MarotoReportGenerator {
	return &MarotoReportGenerator{author: author}
}

func (g *MarotoReportGenerator) Format() string      { return "pdf" }
func (g *MarotoReportGenerator) ContentType() string { return "application/pdf" }

// Export genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) Export(report *dto.MovementReportDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(reportfmt.Title, true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(totalsRow(report.Totals))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Tabla de movimientos
	m.AddRows(tableHeaderRow())
	if len(report.Movements) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Nenhuma movimentação no período.", props.Text{
				Size: 8, Align: align.Center, Color: colorGray, Top: 2,
			}),
		)))
	}
	for _, r := range tableDetailRows(report.Movements) {
		m.AddRows(r)
	}

	// Resumen por categoría
	if len(report.ByCategory) > 0 {
		m.AddRows(line.NewRow(3))
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
		for _, r := range categoryRows(report.ByCategory) {
			m.AddRows(r)
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título + período (izq) y fecha de generación (der).
func headerRow(report *dto.MovementReportDTO) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(reportfmt.Title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Período: "+reportfmt.Period(report.Filter), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Gerado em", props.Text{
				Size: 8, Align: align.Right, Color: colorGray, Top: 2,
			}),
			text.New(reportfmt.Date(report.GeneratedAt), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 7,
			}),
		),
	)
}

// totalsRow: tres indicadores en columnas iguales.
func totalsRow(t dto.MovementTotalsDTO) core.Row {
	kpi := func(label, value string, c *props.Color) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{
				Size: 8, Align: align.Center, Color: colorGray, Top: 1,
			}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Center, Color: c, Top: 6,
			}),
		)
	}
	return row.New(14).Add(
		kpi("Total de entradas", reportfmt.Int(t.Entries), colorEntry),
		kpi("Total de saídas", reportfmt.Int(t.Exits), colorExit),
		kpi("Movimentações", reportfmt.Int(t.Count), colorPrimary),
	)
}

// columnSizes ancho de cada columna de la tabla (grilla de 12).
var columnSizes = []int{2, 3, 1, 2, 2, 2}

// tableHeaderRow: cabecera de la tabla de movimientos.
func tableHeaderRow() core.Row {
	cols := make([]core.Col, 0, len(reportfmt.Columns))
	for i, label := range reportfmt.Columns {
		cols = append(cols, col.New(columnSizes[i]).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: columnAlign(i),
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cols...)
}

// tableDetailRows: una fila por movimiento.
func tableDetailRows(movs []dto.MovementResponse) []core.Row {
	result := make([]core.Row, 0, len(movs))
	for _, m := range movs {
		cells := reportfmt.Row(m)
		cols := make([]core.Col, 0, len(cells))
		for i, v := range cells {
			p := props.Text{Size: 8, Align: columnAlign(i), Top: 1, Left: 1, Right: 1}
			if i == 2 {
				p.Color = typeColor(m.Type)
			}
			cols = append(cols, col.New(columnSizes[i]).Add(text.New(v, p)))
		}
		result = append(result, row.New(7).Add(cols...))
	}
	return result
}

// categoryRows: cantidades movidas por categoría.
func categoryRows(items []dto.CategoryTotalDTO) []core.Row {
	rows := []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New("MOVIMENTAÇÃO POR CATEGORIA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
			}),
		)),
	}
	for _, c := range items {
		rows = append(rows, row.New(6).Add(
			col.New(8).Add(text.New(c.Category, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(reportfmt.Int(c.Quantity), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func columnAlign(i int) align.Type {
	switch i {
	case 2:
		return align.Center
	case 3:
		return align.Right
	default:
		return align.Left
	}
}

func typeColor(t string) *props.Color {
	switch t {
	case "entry":
		return colorEntry
	case "exit":
		return colorExit
	default:
		return colorGray
	}
}
