// Package pdf implementa la generación del reporte de movimientos en PDF
// con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte  │  Dueño + Fecha de emisión    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Tipo | Código | Producto | Cant | Contrap.  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: entradas / salidas / neto                         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
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
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/partes-app/partes-api/internal/application/report"
	"github.com/partes-app/partes-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorGreen   = &props.Color{Red: 0, Green: 120, Blue: 60}
	colorRed     = &props.Color{Red: 170, Green: 30, Blue: 30}
)

var _ report.MovementPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa report.MovementPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateMovementsPDF genera el reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateMovementsPDF(
	_ context.Context,
	ownerName string,
	movements []*entity.Movement,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de movimientos", true).
		WithAuthor(ownerName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(ownerName, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(movements) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(movements))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y dueño + fecha de emisión (der).
func headerRow(ownerName string, generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("REPORTE DE MOVIMIENTOS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Entradas y salidas de inventario", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(ownerName, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
			}),
			text.New("Emitido: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de movimientos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Tipo", 1, align.Center),
		h("Código", 2, align.Left),
		h("Producto", 3, align.Left),
		h("Cant.", 1, align.Right),
		h("Contraparte", 3, align.Left),
	)
}

// tableDetailRows: una fila por movimiento.
func tableDetailRows(movements []*entity.Movement) []core.Row {
	result := make([]core.Row, 0, len(movements))
	for _, mov := range movements {
		tipoColor := colorGreen
		if mov.Type == entity.MovementTypeOUT {
			tipoColor = colorRed
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				mov.Date.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				mov.Type,
				props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 1, Color: tipoColor},
			)),
			col.New(2).Add(text.New(
				mov.ItemCode,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				mov.ItemName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", mov.Quantity),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				counterparty(mov),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
		))
	}
	return result
}

// totalsRow: unidades entradas, salidas y neto del reporte.
func totalsRow(movements []*entity.Movement) core.Row {
	var in, out int64
	for _, mov := range movements {
		if mov.Type == entity.MovementTypeIN {
			in += mov.Quantity
		} else {
			out += mov.Quantity
		}
	}

	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}

	return row.New(20).Add(
		col.New(4),
		col.New(4).Add(
			label("Unidades entradas:"),
			label("Unidades salidas:"),
			label("Neto:"),
		),
		col.New(4).Add(
			value(fmt.Sprintf("%d", in)),
			value(fmt.Sprintf("%d", out)),
			value(fmt.Sprintf("%+d", in-out)),
		),
	)
}

func counterparty(mov *entity.Movement) string {
	if mov.Type == entity.MovementTypeIN {
		return mov.Supplier
	}
	return mov.Destination
}
