package repository

import (
	"context"

	"github.com/jhoicas/Planta-api/internal/domain/entity"
)

// InventoryItemRepository puerto de persistencia de ítems de inventario.
// Los métodos *ForUpdate bloquean la fila hasta el fin de la transacción.
type InventoryItemRepository interface {
	GetByID(ctx context.Context, id string) (*entity.InventoryItem, error)
	GetForUpdate(ctx context.Context, id string) (*entity.InventoryItem, error)

	// GetOrCreateForUpdate devuelve la fila del par (producto, bodega) bloqueada.
	// Si no existe la crea a partir de template con cantidad 0; nunca duplica el par.
	GetOrCreateForUpdate(ctx context.Context, productID, warehouseID string, template *entity.InventoryItem) (*entity.InventoryItem, error)

	Create(ctx context.Context, item *entity.InventoryItem) error
	// Update persiste quantity, min_stock, reorder_point, location y expiry_date.
	Update(ctx context.Context, item *entity.InventoryItem) error
	Delete(ctx context.Context, id string) error

	ListByWarehouseType(ctx context.Context, warehouseType string) ([]*entity.InventoryItemView, error)
}
