package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem existencia de un producto en una bodega.
// Hay exactamente un registro por par (ProductID, WarehouseID) y Quantity nunca es negativa.
type InventoryItem struct {
	ID           string
	ProductID    string
	WarehouseID  string
	Quantity     int
	MinStock     int
	ReorderPoint int
	Location     *string
	ExpiryDate   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// InventoryItemView ítem con los datos de producto y bodega para listados.
type InventoryItemView struct {
	InventoryItem
	ProductName   string
	SKU           string
	Price         decimal.Decimal
	WarehouseType string
}
