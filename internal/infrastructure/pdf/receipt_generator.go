// Package pdf genera el comprobante de un pedido archivado.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la planta │  N° Pedido + Fecha de cierre │
//	│  CLIENTE: Nombre + Email                                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Total línea               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL + Estado (completed / cancelled) + QR del archivo     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Planta-api/internal/application/orders"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
)

var _ orders.ReceiptRenderer = (*ReceiptGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary   = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray      = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorCancelled = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ReceiptGenerator implementa orders.ReceiptRenderer con Maroto v2.
type ReceiptGenerator struct {
	plantName string
}

// NewReceiptGenerator construye el generador; plantName encabeza el documento.
func NewReceiptGenerator(plantName string) *ReceiptGenerator {
	return &ReceiptGenerator{plantName: plantName}
}

// Render genera el PDF del pedido archivado con los precios congelados al crearlo.
func (g *ReceiptGenerator) Render(a *entity.OrderArchive) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Pedido "+a.OrderNumber, true).
		WithAuthor(g.plantName, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(g.headerRow(a))
	m.AddRows(customerRow(a))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.4}))
	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(a.Items)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(footerRow(a))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *ReceiptGenerator) headerRow(a *entity.OrderArchive) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.plantName, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New("Comprobante de pedido", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("PEDIDO", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1}),
			text.New(a.OrderNumber, props.Text{Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 6}),
			text.New("Cierre: "+a.Timestamp.Format("02/01/2006 15:04"), props.Text{Size: 8, Align: align.Right, Top: 13, Color: colorGray}),
		),
	)
}

func customerRow(a *entity.OrderArchive) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(a.CustomerName, props.Text{Style: fontstyle.Bold, Size: 10, Top: 5}),
			text.New("Email: "+nonEmpty(a.CustomerEmail, "—"), props.Text{Size: 8, Top: 10, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 2, align.Center),
		h("Producto", 5, align.Left),
		h("Precio unit.", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

func tableRows(items []entity.OrderItemArchive) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, row.New(7).Add(
			col.New(2).Add(text.New(fmt.Sprintf("%d", it.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(5).Add(text.New(it.ProductID, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(formatMoney(it.UnitPrice), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New(formatMoney(it.TotalPrice), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return rows
}

func footerRow(a *entity.OrderArchive) core.Row {
	statusColor := colorPrimary
	status := "COMPLETADO"
	if a.Action == entity.OrderStatusCancelled {
		statusColor = colorCancelled
		status = "CANCELADO"
	}
	return row.New(36).Add(
		col.New(3).Add(code.NewQr(a.ID, props.Rect{Percent: 90, Center: true})),
		col.New(4).Add(
			text.New(status, props.Text{Style: fontstyle.Bold, Size: 11, Color: statusColor, Top: 4, Left: 2}),
			text.New("Registrado por: "+a.PerformedBy, props.Text{Size: 8, Color: colorGray, Top: 12, Left: 2}),
		),
		col.New(5).Add(
			text.New("TOTAL", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 4, Right: 1}),
			text.New(formatMoney(a.TotalAmount), props.Text{Style: fontstyle.Bold, Size: 12, Align: align.Right, Color: colorPrimary, Top: 10, Right: 1}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney formatea con separador de miles y dos decimales: 1234.5 → "$1,234.50".
func formatMoney(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	intPart, frac := s[:len(s)-3], s[len(s)-2:]
	var b strings.Builder
	n := len(intPart)
	for i, c := range intPart {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	return sign + "$" + b.String() + "." + frac
}
