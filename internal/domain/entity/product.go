package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto fabricable o vendible. SKU es único global.
type Product struct {
	ID          string
	Name        string
	SKU         string
	Description string
	Category    string
	Price       decimal.Decimal // precio de venta; sus cambios se auditan en inventory_archive
	Cost        decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
