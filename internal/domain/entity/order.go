package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pedido. Completed y Cancelled son terminales: el pedido se archiva y deja de existir.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// Estados de pago.
const (
	PaymentStatusUnpaid = "unpaid"
	PaymentStatusPaid   = "paid"
)

// Order pedido de cliente vivo (pending o processing).
type Order struct {
	ID            string
	OrderNumber   string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	TotalAmount   decimal.Decimal
	Status        string
	PaymentStatus string
	CreatedBy     string
	OrderDate     time.Time
	DeliveryDate  *time.Time
	Items         []OrderItem
}

// OrderItem línea de pedido. TotalPrice = Quantity × UnitPrice se congela al crear el pedido.
type OrderItem struct {
	ID         string
	OrderID    string
	ProductID  string
	Quantity   int
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
}
