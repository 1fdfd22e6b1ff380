package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Planta-api/internal/application/dto"
	"github.com/jhoicas/Planta-api/internal/application/inventory"
	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
	domaininv "github.com/jhoicas/Planta-api/internal/domain/inventory"
	"github.com/jhoicas/Planta-api/pkg/logger"
)

type transferService interface {
	Transfer(ctx context.Context, actor string, in inventory.TransferInput) (*inventory.TransferResult, error)
}

type itemService interface {
	UpdateItem(ctx context.Context, actor, itemID string, in inventory.UpdateItemInput) ([]domaininv.FieldChange, error)
	AddItem(ctx context.Context, actor, warehouseType string, in inventory.AddItemInput) (*entity.InventoryItem, error)
	DeleteItem(ctx context.Context, actor, itemID string) error
	ListByWarehouseType(ctx context.Context, warehouseType string) ([]*entity.InventoryItemView, error)
}

type archiveService interface {
	List(ctx context.Context) ([]*entity.InventoryArchive, error)
	Export(ctx context.Context, w io.Writer) error
	ContentType() string
	FileName() string
}

// InventoryHandler maneja traslados, ítems y auditoría de inventario (protegido).
type InventoryHandler struct {
	transfers transferService
	items     itemService
	archive   archiveService
	log       *logger.Logger
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(transfers transferService, items itemService, archive archiveService, log *logger.Logger) *InventoryHandler {
	return &InventoryHandler{transfers: transfers, items: items, archive: archive, log: log}
}

// Transfer godoc
// @Summary      Trasladar stock entre bodegas
// @Description  Descuenta del ítem origen y suma al ítem del mismo producto en la bodega destino (lo crea si no existe).
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "sourceWarehouse, targetWarehouse, id, qty"
// @Success      200   {object}  dto.TransferResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/transfer [post]
func (h *InventoryHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, h.log, err)
	}
	res, err := h.transfers.Transfer(c.UserContext(), GetUsername(c), inventory.TransferInput{
		SourceWarehouseType: in.SourceWarehouse,
		TargetWarehouseType: in.TargetWarehouse,
		ItemID:              in.ItemID,
		Quantity:            in.Quantity,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.TransferResponse{
		Message:        fmt.Sprintf("%d unidades trasladadas de %s a %s", in.Quantity, in.SourceWarehouse, in.TargetWarehouse),
		SourceItemID:   res.SourceItemID,
		SourceQuantity: res.SourceQuantity,
		TargetItemID:   res.TargetItemID,
		TargetQuantity: res.TargetQuantity,
	})
}

// UpdateItem godoc
// @Summary      Actualizar ítem de inventario
// @Description  Solo los campos presentes se comparan; cada campo que cambia deja un registro de auditoría.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        item_id  path  string                          true  "ID del ítem"
// @Param        body     body  dto.UpdateInventoryItemRequest  true  "quantity, min_stock, location, price"
// @Success      200   {object}  dto.UpdateInventoryItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/{item_id} [put]
func (h *InventoryHandler) UpdateItem(c *fiber.Ctx) error {
	var in dto.UpdateInventoryItemRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, h.log, err)
	}
	changes, err := h.items.UpdateItem(c.UserContext(), GetUsername(c), c.Params("item_id"), inventory.UpdateItemInput{
		Quantity: in.Quantity,
		MinStock: in.MinStock,
		Location: in.Location,
		Price:    in.Price,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	out := dto.UpdateInventoryItemResponse{Message: "ítem actualizado", Changes: make([]dto.FieldChangeResponse, 0, len(changes))}
	for _, ch := range changes {
		out.Changes = append(out.Changes, dto.FieldChangeResponse{Field: ch.Field, OldValue: ch.Old, NewValue: ch.New})
	}
	if len(changes) == 0 {
		out.Message = "sin cambios"
	}
	return c.JSON(out)
}

// ListByWarehouse godoc
// @Summary      Listar inventario por tipo de bodega
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        type  path  string  true  "Tipo de bodega (ej. raw_materials)"
// @Success      200  {array}   dto.InventoryItemResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/inventory/warehouse/{type} [get]
func (h *InventoryHandler) ListByWarehouse(c *fiber.Ctx) error {
	views, err := h.items.ListByWarehouseType(c.UserContext(), c.Params("type"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	out := make([]dto.InventoryItemResponse, 0, len(views))
	for _, v := range views {
		out = append(out, dto.InventoryItemResponse{
			ID:          v.ID,
			ProductID:   v.ProductID,
			ProductName: v.ProductName,
			SKU:         v.SKU,
			Quantity:    v.Quantity,
			MinStock:    v.MinStock,
			Price:       v.Price,
			Location:    domaininv.Stringify(v.Location),
			ExpiryDate:  formatDate(v.ExpiryDate),
		})
	}
	return c.JSON(out)
}

// AddItem godoc
// @Summary      Agregar ítem a una bodega
// @Description  Busca el producto por SKU (lo crea si no existe) y crea su ítem en la bodega del tipo dado.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        type  path  string                       true  "Tipo de bodega"
// @Param        body  body  dto.AddInventoryItemRequest  true  "sku, product_id (nombre), quantity, min_stock, price, location, expiry_date"
// @Success      201   {object}  dto.CreatedItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/warehouse/{type} [post]
func (h *InventoryHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddInventoryItemRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, h.log, err)
	}
	expiry, err := parseDate(in.ExpiryDate)
	if err != nil {
		return writeError(c, h.log, err)
	}
	item, err := h.items.AddItem(c.UserContext(), GetUsername(c), c.Params("type"), inventory.AddItemInput{
		SKU:         in.SKU,
		ProductName: in.ProductName,
		Quantity:    in.Quantity,
		MinStock:    in.MinStock,
		Price:       in.Price,
		Location:    in.Location,
		ExpiryDate:  expiry,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedItemResponse{
		ID:          item.ID,
		ProductID:   item.ProductID,
		WarehouseID: item.WarehouseID,
		Quantity:    item.Quantity,
		MinStock:    item.MinStock,
		Location:    domaininv.Stringify(item.Location),
		ExpiryDate:  formatDate(item.ExpiryDate),
	})
}

// DeleteItem godoc
// @Summary      Eliminar ítem de inventario
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        item_id  path  string  true  "ID del ítem"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{item_id} [delete]
func (h *InventoryHandler) DeleteItem(c *fiber.Ctx) error {
	if err := h.items.DeleteItem(c.UserContext(), GetUsername(c), c.Params("item_id")); err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.MessageResponse{Message: "ítem eliminado"})
}

// ListArchive godoc
// @Summary      Registro de auditoría de inventario
// @Description  Solo administradores. Más reciente primero.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.InventoryArchiveResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/inventory/archive [get]
func (h *InventoryHandler) ListArchive(c *fiber.Ctx) error {
	records, err := h.archive.List(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	out := make([]dto.InventoryArchiveResponse, 0, len(records))
	for _, r := range records {
		out = append(out, dto.InventoryArchiveResponse{
			ID:        r.ID,
			ItemID:    r.ItemID,
			SKU:       r.SKU,
			Field:     r.Field,
			OldValue:  r.OldValue,
			NewValue:  r.NewValue,
			EditedBy:  r.EditedBy,
			Timestamp: r.Timestamp,
		})
	}
	return c.JSON(out)
}

// ExportArchive godoc
// @Summary      Exportar auditoría de inventario a Excel
// @Tags         inventory
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}    binary
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/inventory/archive/export [get]
func (h *InventoryHandler) ExportArchive(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.archive.Export(c.UserContext(), &buf); err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, h.archive.ContentType())
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, h.archive.FileName()))
	return c.Send(buf.Bytes())
}

// ── helpers ───────────────────────────────────────────────────────────────────

const dateLayout = "2006-01-02"

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha %q debe tener formato YYYY-MM-DD", domain.ErrInvalidInput, s)
	}
	return &t, nil
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
