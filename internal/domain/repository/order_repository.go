package repository

import (
	"context"

	"github.com/jhoicas/Planta-api/internal/domain/entity"
)

// OrderRepository puerto de persistencia de pedidos vivos (pending/processing).
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	CreateItem(ctx context.Context, item *entity.OrderItem) error

	// GetForUpdate bloquea el pedido; nil si no existe.
	GetForUpdate(ctx context.Context, id string) (*entity.Order, error)
	// ListItems devuelve las líneas en orden de inserción.
	ListItems(ctx context.Context, orderID string) ([]entity.OrderItem, error)
	List(ctx context.Context) ([]*entity.Order, error)

	UpdateStatus(ctx context.Context, id, status string) error
	DeleteItems(ctx context.Context, orderID string) error
	Delete(ctx context.Context, id string) error
}
