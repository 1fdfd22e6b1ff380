package orders

import (
	"context"

	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
)

// TxRunner ejecuta fn en una sola transacción con los repositorios de pedidos.
// Archivo, inserts de líneas archivadas y borrados se confirman juntos o no se confirman.
type TxRunner interface {
	RunOrders(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
		archiveRepo repository.OrderArchiveRepository,
	) error) error
}

// ReceiptRenderer genera el comprobante de un pedido archivado.
type ReceiptRenderer interface {
	Render(archive *entity.OrderArchive) ([]byte, error)
}
