package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Planta-api/internal/domain/entity"
)

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0":          "$0.00",
		"150":        "$150.00",
		"1234.5":     "$1,234.50",
		"1000000.01": "$1,000,000.01",
		"-75":        "-$75.00",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatMoney(decimal.RequireFromString(in)), in)
	}
}

func TestRender_GeneraPDF(t *testing.T) {
	g := NewReceiptGenerator("Planta Norte")
	a := &entity.OrderArchive{
		ID: "arch-1", OrderID: "o-1", OrderNumber: "ORD-1", CustomerName: "Panadería Sol",
		Action: entity.OrderStatusCompleted, PerformedBy: "ana",
		TotalAmount: decimal.RequireFromString("150.00"), Timestamp: time.Now(),
		Items: []entity.OrderItemArchive{
			{ProductID: "p1", Quantity: 2, UnitPrice: decimal.RequireFromString("50"), TotalPrice: decimal.RequireFromString("100")},
			{ProductID: "p2", Quantity: 2, UnitPrice: decimal.RequireFromString("25"), TotalPrice: decimal.RequireFromString("50")},
		},
	}
	out, err := g.Render(a)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
