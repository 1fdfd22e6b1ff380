package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
	domaininv "github.com/jhoicas/Planta-api/internal/domain/inventory"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
	"github.com/jhoicas/Planta-api/pkg/logger"
)

// TransferInput traslado de Quantity unidades del ítem ItemID entre dos tipos de bodega.
type TransferInput struct {
	SourceWarehouseType string
	TargetWarehouseType string
	ItemID              string
	Quantity            int
}

// TransferResult cantidades resultantes en origen y destino.
type TransferResult struct {
	SourceItemID   string
	SourceQuantity int
	TargetItemID   string
	TargetQuantity int
}

// TransferUseCase mueve stock entre bodegas de forma atómica.
type TransferUseCase struct {
	txRunner TxRunner
	audit    *AuditRecorder
	log      *logger.Logger
}

// NewTransferUseCase construye el caso de uso.
func NewTransferUseCase(txRunner TxRunner, audit *AuditRecorder, log *logger.Logger) *TransferUseCase {
	return &TransferUseCase{txRunner: txRunner, audit: audit, log: log.Component("inventory.transfer")}
}

// Transfer valida, bloquea el ítem origen (SELECT FOR UPDATE), busca o crea el destino,
// mueve la cantidad y registra un único renglón de auditoría. Todo o nada.
func (uc *TransferUseCase) Transfer(ctx context.Context, actor string, in TransferInput) (*TransferResult, error) {
	in.SourceWarehouseType = strings.TrimSpace(in.SourceWarehouseType)
	in.TargetWarehouseType = strings.TrimSpace(in.TargetWarehouseType)
	if in.ItemID == "" || in.SourceWarehouseType == "" || in.TargetWarehouseType == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var res TransferResult
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		warehouseRepo repository.WarehouseRepository,
		itemRepo repository.InventoryItemRepository,
		archiveRepo repository.InventoryArchiveRepository,
	) error {
		source, err := warehouseRepo.GetByType(ctx, in.SourceWarehouseType)
		if err != nil {
			return err
		}
		target, err := warehouseRepo.GetByType(ctx, in.TargetWarehouseType)
		if err != nil {
			return err
		}
		if source == nil || target == nil {
			return domain.ErrInvalidWarehouse
		}
		if source.ID == target.ID {
			return domain.ErrInvalidInput
		}

		item, err := itemRepo.GetForUpdate(ctx, in.ItemID)
		if err != nil {
			return err
		}
		if item == nil || item.WarehouseID != source.ID {
			return domain.ErrItemNotInWarehouse
		}
		if item.Quantity < in.Quantity {
			return domain.ErrInsufficientStock
		}

		product, err := productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		dest, err := itemRepo.GetOrCreateForUpdate(ctx, item.ProductID, target.ID, item)
		if err != nil {
			return err
		}

		now := time.Now()
		item.Quantity -= in.Quantity
		item.UpdatedAt = now
		if err := itemRepo.Update(ctx, item); err != nil {
			return err
		}
		dest.Quantity += in.Quantity
		dest.UpdatedAt = now
		if err := itemRepo.Update(ctx, dest); err != nil {
			return err
		}

		oldValue, newValue := domaininv.TransferDescription(in.Quantity, source.Type, target.Type)
		if err := uc.audit.RecordEvent(ctx, archiveRepo, item.ID, product.SKU, domaininv.FieldChange{
			Field: entity.ArchiveFieldTransfer,
			Old:   oldValue,
			New:   newValue,
		}, actor); err != nil {
			return err
		}

		res = TransferResult{
			SourceItemID:   item.ID,
			SourceQuantity: item.Quantity,
			TargetItemID:   dest.ID,
			TargetQuantity: dest.Quantity,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("item_id", in.ItemID).
		Str("target_item_id", res.TargetItemID).
		Str("from", in.SourceWarehouseType).
		Str("to", in.TargetWarehouseType).
		Int("qty", in.Quantity).
		Str("by", actor).
		Msg("traslado registrado")
	return &res, nil
}
