package repository

import (
	"context"

	"github.com/jhoicas/Planta-api/internal/domain/entity"
)

// WarehouseRepository define el puerto de persistencia para Warehouse.
type WarehouseRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Warehouse, error)
	// GetByType resuelve el tipo a una bodega (la más antigua si hay varias). nil si no existe.
	GetByType(ctx context.Context, warehouseType string) (*entity.Warehouse, error)
	List(ctx context.Context) ([]*entity.Warehouse, error)
}
