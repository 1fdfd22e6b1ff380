package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferRequest body para POST /api/inventory/transfer.
type TransferRequest struct {
	SourceWarehouse string `json:"sourceWarehouse" validate:"required"`
	TargetWarehouse string `json:"targetWarehouse" validate:"required"`
	ItemID          string `json:"id" validate:"required"`
	Quantity        int    `json:"qty" validate:"gt=0"`
}

// UpdateInventoryItemRequest body para PUT /api/inventory/{item_id}.
// Solo los campos presentes se comparan y aplican.
type UpdateInventoryItemRequest struct {
	Quantity *int             `json:"quantity,omitempty" validate:"omitempty,min=0"`
	MinStock *int             `json:"min_stock,omitempty" validate:"omitempty,min=0"`
	Location *string          `json:"location,omitempty" validate:"omitempty,max=100"`
	Price    *decimal.Decimal `json:"price,omitempty"`
}

// AddInventoryItemRequest body para POST /api/inventory/warehouse/{type}.
// ProductName es el nombre con que se crea el producto si el SKU no existe.
type AddInventoryItemRequest struct {
	SKU         string           `json:"sku" validate:"required,max=50"`
	ProductName string           `json:"product_id" validate:"required,max=200"`
	Quantity    int              `json:"quantity" validate:"min=0"`
	MinStock    int              `json:"min_stock" validate:"min=0"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Location    *string          `json:"location,omitempty" validate:"omitempty,max=100"`
	ExpiryDate  string           `json:"expiry_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// InventoryItemResponse ítem listado por tipo de bodega.
type InventoryItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	SKU         string          `json:"sku"`
	Quantity    int             `json:"quantity"`
	MinStock    int             `json:"min_stock"`
	Price       decimal.Decimal `json:"price"`
	Location    string          `json:"location"`
	ExpiryDate  *string         `json:"expiry_date"`
}

// InventoryArchiveResponse registro de auditoría.
type InventoryArchiveResponse struct {
	ID        string    `json:"id"`
	ItemID    string    `json:"item_id"`
	SKU       string    `json:"sku"`
	Field     string    `json:"field"`
	OldValue  string    `json:"old_value"`
	NewValue  string    `json:"new_value"`
	EditedBy  string    `json:"edited_by"`
	Timestamp time.Time `json:"timestamp"`
}

// MessageResponse respuesta simple de confirmación.
type MessageResponse struct {
	Message string `json:"message"`
}

// TransferResponse resultado de un traslado con las cantidades finales de ambos ítems.
type TransferResponse struct {
	Message        string `json:"message"`
	SourceItemID   string `json:"sourceItemId"`
	SourceQuantity int    `json:"sourceQuantity"`
	TargetItemID   string `json:"targetItemId"`
	TargetQuantity int    `json:"targetQuantity"`
}

// FieldChangeResponse campo modificado por una actualización.
type FieldChangeResponse struct {
	Field    string `json:"field"`
	OldValue string `json:"old_value"`
	NewValue string `json:"new_value"`
}

// UpdateInventoryItemResponse respuesta de PUT /api/inventory/{item_id}.
type UpdateInventoryItemResponse struct {
	Message string                `json:"message"`
	Changes []FieldChangeResponse `json:"changes"`
}

// CreatedItemResponse ítem recién creado en una bodega.
type CreatedItemResponse struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"product_id"`
	WarehouseID string  `json:"warehouse_id"`
	Quantity    int     `json:"quantity"`
	MinStock    int     `json:"min_stock"`
	Location    string  `json:"location"`
	ExpiryDate  *string `json:"expiry_date"`
}
