package inventory

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
	domaininv "github.com/jhoicas/Planta-api/internal/domain/inventory"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
	"github.com/jhoicas/Planta-api/pkg/logger"
)

// UpdateItemInput campos editables; nil significa "no enviado".
type UpdateItemInput struct {
	Quantity *int
	MinStock *int
	Location *string
	Price    *decimal.Decimal
}

// AddItemInput alta de un ítem en una bodega identificada por tipo.
type AddItemInput struct {
	SKU         string
	ProductName string
	Quantity    int
	MinStock    int
	Price       *decimal.Decimal
	Location    *string
	ExpiryDate  *time.Time
}

// ItemUseCase altas, bajas, ediciones auditadas y consultas de ítems de inventario.
type ItemUseCase struct {
	txRunner TxRunner
	itemRepo repository.InventoryItemRepository
	audit    *AuditRecorder
	log      *logger.Logger
}

// NewItemUseCase construye el caso de uso. itemRepo se usa para lecturas fuera de transacción.
func NewItemUseCase(txRunner TxRunner, itemRepo repository.InventoryItemRepository, audit *AuditRecorder, log *logger.Logger) *ItemUseCase {
	return &ItemUseCase{txRunner: txRunner, itemRepo: itemRepo, audit: audit, log: log.Component("inventory.items")}
}

// UpdateItem compara cada campo enviado contra el valor actual, audita los que cambian
// y aplica los nuevos valores en la misma transacción.
func (uc *ItemUseCase) UpdateItem(ctx context.Context, actor, itemID string, in UpdateItemInput) ([]domaininv.FieldChange, error) {
	if itemID == "" {
		return nil, domain.ErrInvalidInput
	}
	if (in.Quantity != nil && *in.Quantity < 0) || (in.MinStock != nil && *in.MinStock < 0) {
		return nil, domain.ErrInvalidInput
	}
	if in.Price != nil && !domain.ValidAmount(*in.Price) {
		return nil, domain.ErrInvalidInput
	}

	var changes []domaininv.FieldChange
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.WarehouseRepository,
		itemRepo repository.InventoryItemRepository,
		archiveRepo repository.InventoryArchiveRepository,
	) error {
		item, err := itemRepo.GetForUpdate(ctx, itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		product, err := productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		var updates []FieldUpdate
		if in.Quantity != nil {
			updates = append(updates, FieldUpdate{Field: domaininv.FieldQuantity, Old: item.Quantity, New: *in.Quantity})
		}
		if in.MinStock != nil {
			updates = append(updates, FieldUpdate{Field: domaininv.FieldMinStock, Old: item.MinStock, New: *in.MinStock})
		}
		if in.Location != nil {
			updates = append(updates, FieldUpdate{Field: domaininv.FieldLocation, Old: item.Location, New: *in.Location})
		}
		if in.Price != nil {
			updates = append(updates, FieldUpdate{Field: domaininv.FieldPrice, Old: product.Price, New: *in.Price})
		}

		changes, err = uc.audit.RecordFieldChanges(ctx, archiveRepo, item.ID, product.SKU, updates, actor)
		if err != nil {
			return err
		}

		itemDirty := false
		for _, ch := range changes {
			switch ch.Field {
			case domaininv.FieldQuantity:
				item.Quantity = *in.Quantity
				itemDirty = true
			case domaininv.FieldMinStock:
				item.MinStock = *in.MinStock
				itemDirty = true
			case domaininv.FieldLocation:
				loc := *in.Location
				item.Location = &loc
				itemDirty = true
			case domaininv.FieldPrice:
				if err := productRepo.UpdatePrice(ctx, product.ID, *in.Price); err != nil {
					return err
				}
			}
		}
		if itemDirty {
			item.UpdatedAt = time.Now()
			return itemRepo.Update(ctx, item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(changes) > 0 {
		uc.log.Info().Str("item_id", itemID).Int("changes", len(changes)).Str("by", actor).Msg("ítem actualizado")
	}
	return changes, nil
}

// AddItem crea el ítem en la bodega del tipo dado; el producto se busca por SKU o se crea.
// Si el par (producto, bodega) ya existe devuelve ErrDuplicate.
func (uc *ItemUseCase) AddItem(ctx context.Context, actor, warehouseType string, in AddItemInput) (*entity.InventoryItem, error) {
	in.SKU = strings.TrimSpace(in.SKU)
	if in.SKU == "" || strings.TrimSpace(warehouseType) == "" || in.Quantity < 0 || in.MinStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Price != nil && !domain.ValidAmount(*in.Price) {
		return nil, domain.ErrInvalidInput
	}

	var created *entity.InventoryItem
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		warehouseRepo repository.WarehouseRepository,
		itemRepo repository.InventoryItemRepository,
		archiveRepo repository.InventoryArchiveRepository,
	) error {
		wh, err := warehouseRepo.GetByType(ctx, warehouseType)
		if err != nil {
			return err
		}
		if wh == nil {
			return domain.ErrInvalidWarehouse
		}

		now := time.Now()
		product, err := productRepo.GetBySKU(ctx, in.SKU)
		if err != nil {
			return err
		}
		if product == nil {
			price := decimal.Zero
			if in.Price != nil {
				price = *in.Price
			}
			name := strings.TrimSpace(in.ProductName)
			if name == "" {
				name = in.SKU
			}
			product = &entity.Product{
				ID:        uuid.New().String(),
				Name:      name,
				SKU:       in.SKU,
				Price:     price,
				Cost:      decimal.Zero,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := productRepo.Create(ctx, product); err != nil {
				return err
			}
		}

		item := &entity.InventoryItem{
			ID:          uuid.New().String(),
			ProductID:   product.ID,
			WarehouseID: wh.ID,
			Quantity:    in.Quantity,
			MinStock:    in.MinStock,
			Location:    in.Location,
			ExpiryDate:  in.ExpiryDate,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := itemRepo.Create(ctx, item); err != nil {
			return err
		}
		if err := uc.audit.RecordEvent(ctx, archiveRepo, item.ID, product.SKU, domaininv.FieldChange{
			Field: entity.ArchiveFieldCreated,
			New:   strconv.Itoa(item.Quantity),
		}, actor); err != nil {
			return err
		}
		created = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("item_id", created.ID).Str("warehouse", warehouseType).Str("by", actor).Msg("ítem creado")
	return created, nil
}

// DeleteItem elimina el ítem y deja constancia en la auditoría con la cantidad que tenía.
func (uc *ItemUseCase) DeleteItem(ctx context.Context, actor, itemID string) error {
	if itemID == "" {
		return domain.ErrInvalidInput
	}
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.WarehouseRepository,
		itemRepo repository.InventoryItemRepository,
		archiveRepo repository.InventoryArchiveRepository,
	) error {
		item, err := itemRepo.GetForUpdate(ctx, itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		sku := ""
		if product, err := productRepo.GetByID(ctx, item.ProductID); err != nil {
			return err
		} else if product != nil {
			sku = product.SKU
		}
		if err := itemRepo.Delete(ctx, item.ID); err != nil {
			return err
		}
		return uc.audit.RecordEvent(ctx, archiveRepo, item.ID, sku, domaininv.FieldChange{
			Field: entity.ArchiveFieldDeleted,
			Old:   strconv.Itoa(item.Quantity),
		}, actor)
	})
	if err != nil {
		return err
	}
	uc.log.Info().Str("item_id", itemID).Str("by", actor).Msg("ítem eliminado")
	return nil
}

// ListByWarehouseType lista los ítems de todas las bodegas del tipo dado.
func (uc *ItemUseCase) ListByWarehouseType(ctx context.Context, warehouseType string) ([]*entity.InventoryItemView, error) {
	return uc.itemRepo.ListByWarehouseType(ctx, warehouseType)
}
