// Package pdf genera el PDF de los reportes tabulares con Maroto v2.
//
// Layout de la página A4 horizontal:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  TÍTULO del reporte                  │  Generado: dd/mm/aaaa │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CABECERA: una celda por columna                            │
//	│  FILAS: una por registro                                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL (solo si el tipo lo declara)                         │
//	│  FOOTER: n registros + fecha de generación                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/lavanderia-api/internal/domain/report"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorStripe  = &props.Color{Red: 240, Green: 244, Blue: 248}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// gridSize columnas de la grilla de Maroto.
const gridSize = 12

// ── Renderer ──────────────────────────────────────────────────────────────────

// ReportRenderer implementa reports.PDFRenderer usando Maroto v2.
type ReportRenderer struct {
	author string
}

// NewReportRenderer construye el renderizador; author va a los metadatos del PDF.
func NewReportRenderer(author string) *ReportRenderer {
	return &ReportRenderer{author: author}
}

// Render genera el PDF de la tabla y devuelve sus bytes.
func (g *ReportRenderer) Render(table *report.Table, generatedAt time.Time) ([]byte, error) {
	if table == nil {
		return nil, fmt.Errorf("pdf: tabla nil")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(table.Title, true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	widths := columnWidths(len(table.Headers))

	m.AddRows(titleRow(table.Title, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(headerRow(table.Headers, widths))
	m.AddRows(bodyRows(table.Rows, widths)...)

	if table.Total != nil {
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
		m.AddRows(totalRow(table.FormattedTotal))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(len(table.Rows), generatedAt))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func titleRow(title string, generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 5, Color: colorGray,
			}),
		),
	)
}

// headerRow: cabecera con fondo azul.
func headerRow(headers []string, widths []int) core.Row {
	cols := make([]core.Col, len(headers))
	for i, h := range headers {
		cols[i] = col.New(widths[i]).Add(text.New(h, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorWhite,
			Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(cols...).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// bodyRows: una fila por registro, alternando fondo.
func bodyRows(rows [][]string, widths []int) []core.Row {
	out := make([]core.Row, 0, len(rows))
	for i, cells := range rows {
		cols := make([]core.Col, len(widths))
		for j := range widths {
			v := ""
			if j < len(cells) {
				v = cells[j]
			}
			cols[j] = col.New(widths[j]).Add(text.New(v, props.Text{
				Size: 8, Top: 1, Left: 1, Right: 1,
			}))
		}
		r := row.New(7).Add(cols...)
		if i%2 == 1 {
			r = r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
		}
		out = append(out, r)
	}
	return out
}

func totalRow(formatted string) core.Row {
	return row.New(10).Add(
		col.New(8).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(4).Add(text.New(formatted, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

func footerRow(count int, generatedAt time.Time) core.Row {
	return row.New(8).Add(col.New(gridSize).Add(
		text.New(
			fmt.Sprintf("%d registros. Reporte generado el %s.", count, generatedAt.Format("02/01/2006 15:04")),
			props.Text{Size: 7, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// columnWidths reparte las 12 unidades de la grilla entre n columnas; el sobrante
// va a las primeras. Con más de 12 columnas cada una recibe 1 unidad.
func columnWidths(n int) []int {
	if n <= 0 {
		return nil
	}
	widths := make([]int, n)
	if n >= gridSize {
		for i := range widths {
			widths[i] = 1
		}
		return widths
	}
	base, extra := gridSize/n, gridSize%n
	for i := range widths {
		widths[i] = base
		if i < extra {
			widths[i]++
		}
	}
	return widths
}
