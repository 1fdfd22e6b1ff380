package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest línea de un pedido nuevo.
type OrderItemRequest struct {
	ProductID string          `json:"productId" validate:"required"`
	Quantity  int             `json:"quantity" validate:"gt=0"`
	Price     decimal.Decimal `json:"price"`
}

// CreateOrderRequest body para POST /api/orders.
// Si TotalAmount no viene, se calcula como la suma de quantity × price.
type CreateOrderRequest struct {
	OrderNumber   string             `json:"orderNumber" validate:"required,max=50"`
	CustomerName  string             `json:"customerName" validate:"required,max=200"`
	CustomerEmail string             `json:"customerEmail" validate:"omitempty,email"`
	CustomerPhone string             `json:"customerPhone" validate:"omitempty,max=30"`
	TotalAmount   *decimal.Decimal   `json:"totalAmount,omitempty"`
	DeliveryDate  string             `json:"deliveryDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Items         []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdateOrderStatusRequest body para PUT /api/orders/{id}/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// OrderItemResponse línea de pedido vivo.
type OrderItemResponse struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// OrderResponse pedido vivo con sus líneas.
type OrderResponse struct {
	ID            string              `json:"id"`
	OrderNumber   string              `json:"orderNumber"`
	CustomerName  string              `json:"customerName"`
	CustomerEmail string              `json:"customerEmail"`
	CustomerPhone string              `json:"customerPhone,omitempty"`
	Items         []OrderItemResponse `json:"items"`
	TotalAmount   decimal.Decimal     `json:"totalAmount"`
	Status        string              `json:"status"`
	PaymentStatus string              `json:"paymentStatus"`
	OrderDate     time.Time           `json:"orderDate"`
	DeliveryDate  *string             `json:"deliveryDate"`
}

// OrderStatusResponse resultado de una transición de estado.
type OrderStatusResponse struct {
	Message   string `json:"message"`
	Status    string `json:"status"`
	Archived  bool   `json:"archived"`
	ArchiveID string `json:"archiveId,omitempty"`
}

// OrderItemArchiveResponse línea archivada.
type OrderItemArchiveResponse struct {
	ProductID  string          `json:"productId"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

// OrderArchiveResponse pedido archivado con sus líneas anidadas.
type OrderArchiveResponse struct {
	ID            string                     `json:"id"`
	OrderID       string                     `json:"orderId"`
	OrderNumber   string                     `json:"orderNumber"`
	CustomerName  string                     `json:"customerName"`
	CustomerEmail string                     `json:"customerEmail"`
	Action        string                     `json:"action"`
	PerformedBy   string                     `json:"performedBy"`
	TotalAmount   decimal.Decimal            `json:"totalAmount"`
	Timestamp     time.Time                  `json:"timestamp"`
	Items         []OrderItemArchiveResponse `json:"items"`
}

// RevenueResponse ingreso acumulado de pedidos completados.
type RevenueResponse struct {
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
}
