package inventory

import (
	"context"
	"io"

	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn devuelve error no queda ninguna fila modificada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		warehouseRepo repository.WarehouseRepository,
		itemRepo repository.InventoryItemRepository,
		archiveRepo repository.InventoryArchiveRepository,
	) error) error
}

// ArchiveExporter serializa el registro de auditoría a un formato descargable.
type ArchiveExporter interface {
	ContentType() string
	FileName() string
	Export(w io.Writer, records []*entity.InventoryArchive) error
}
