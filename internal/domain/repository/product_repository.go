package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Planta-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	// UpdatePrice solo debe llamarse junto con el registro de auditoría del cambio.
	UpdatePrice(ctx context.Context, id string, price decimal.Decimal) error
}
