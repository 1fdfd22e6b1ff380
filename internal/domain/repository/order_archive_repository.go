package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Planta-api/internal/domain/entity"
)

// OrderArchiveRepository instantáneas inmutables de pedidos terminados.
type OrderArchiveRepository interface {
	Create(ctx context.Context, archive *entity.OrderArchive) error
	CreateItem(ctx context.Context, item *entity.OrderItemArchive) error

	GetByID(ctx context.Context, id string) (*entity.OrderArchive, error)
	// List devuelve los archivos con sus líneas anidadas, más recientes primero.
	List(ctx context.Context) ([]*entity.OrderArchive, error)

	// SumByAction suma total_amount de los archivos con la acción dada.
	SumByAction(ctx context.Context, action string) (decimal.Decimal, error)
}
