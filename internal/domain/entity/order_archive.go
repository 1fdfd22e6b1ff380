package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderArchive snapshot inmutable de un pedido al pasar a un estado terminal.
type OrderArchive struct {
	ID            string
	OrderID       string
	OrderNumber   string
	CustomerName  string
	CustomerEmail string
	Action        string // completed | cancelled
	PerformedBy   string
	TotalAmount   decimal.Decimal
	Timestamp     time.Time
	Items         []OrderItemArchive
}

// OrderItemArchive copia 1:1 de una línea de pedido archivada.
type OrderItemArchive struct {
	ID             string
	OrderArchiveID string
	ProductID      string
	Quantity       int
	UnitPrice      decimal.Decimal
	TotalPrice     decimal.Decimal
}
