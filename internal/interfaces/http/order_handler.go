package http

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Planta-api/internal/application/dto"
	"github.com/jhoicas/Planta-api/internal/application/orders"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/pkg/logger"
)

type orderService interface {
	Create(ctx context.Context, createdBy string, in orders.CreateOrderInput) (*entity.Order, error)
	UpdateStatus(ctx context.Context, actor, orderID, status string) (*orders.StatusResult, error)
	Revenue(ctx context.Context) (decimal.Decimal, error)
	List(ctx context.Context) ([]*entity.Order, error)
	ListArchive(ctx context.Context) ([]*entity.OrderArchive, error)
	Receipt(ctx context.Context, archiveID string) ([]byte, error)
}

// OrderHandler maneja pedidos, su archivo y el ingreso acumulado (protegido).
type OrderHandler struct {
	uc  orderService
	log *logger.Logger
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc orderService, log *logger.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear pedido
// @Description  Si totalAmount no viene se calcula como la suma de quantity × price. Queda en pending/unpaid.
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "orderNumber, customerName, customerEmail, items[], deliveryDate"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, h.log, err)
	}
	delivery, err := parseDate(in.DeliveryDate)
	if err != nil {
		return writeError(c, h.log, err)
	}
	items := make([]orders.ItemInput, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, orders.ItemInput{ProductID: it.ProductID, Quantity: it.Quantity, Price: it.Price})
	}
	actor, _ := GetActor(c)
	o, err := h.uc.Create(c.UserContext(), actor.UserID, orders.CreateOrderInput{
		OrderNumber:   in.OrderNumber,
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		CustomerPhone: in.CustomerPhone,
		TotalAmount:   in.TotalAmount,
		DeliveryDate:  delivery,
		Items:         items,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toOrderResponse(o))
}

// List godoc
// @Summary      Listar pedidos vivos
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.OrderResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, toOrderResponse(o))
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado de un pedido
// @Description  pending/processing se actualizan en sitio; completed/cancelled archivan el pedido y borran las filas vivas.
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "ID del pedido"
// @Param        body  body  dto.UpdateOrderStatusRequest  true  "status"
// @Success      200   {object}  dto.OrderStatusResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/status [put]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateOrderStatusRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, h.log, err)
	}
	res, err := h.uc.UpdateStatus(c.UserContext(), GetUsername(c), c.Params("id"), in.Status)
	if err != nil {
		return writeError(c, h.log, err)
	}
	msg := fmt.Sprintf("estado actualizado a %s", res.Status)
	if res.Archived {
		msg = fmt.Sprintf("pedido %s y archivado", res.Status)
	}
	return c.JSON(dto.OrderStatusResponse{
		Message:   msg,
		Status:    res.Status,
		Archived:  res.Archived,
		ArchiveID: res.ArchiveID,
	})
}

// ListArchive godoc
// @Summary      Listar pedidos archivados
// @Description  Cada archivo incluye sus líneas anidadas.
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.OrderArchiveResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/orders/archive [get]
func (h *OrderHandler) ListArchive(c *fiber.Ctx) error {
	list, err := h.uc.ListArchive(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	out := make([]dto.OrderArchiveResponse, 0, len(list))
	for _, a := range list {
		items := make([]dto.OrderItemArchiveResponse, 0, len(a.Items))
		for _, it := range a.Items {
			items = append(items, dto.OrderItemArchiveResponse{
				ProductID:  it.ProductID,
				Quantity:   it.Quantity,
				UnitPrice:  it.UnitPrice,
				TotalPrice: it.TotalPrice,
			})
		}
		out = append(out, dto.OrderArchiveResponse{
			ID:            a.ID,
			OrderID:       a.OrderID,
			OrderNumber:   a.OrderNumber,
			CustomerName:  a.CustomerName,
			CustomerEmail: a.CustomerEmail,
			Action:        a.Action,
			PerformedBy:   a.PerformedBy,
			TotalAmount:   a.TotalAmount,
			Timestamp:     a.Timestamp,
			Items:         items,
		})
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Comprobante PDF de un pedido archivado
// @Tags         orders
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID del archivo del pedido"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/archive/{id}/pdf [get]
func (h *OrderHandler) Receipt(c *fiber.Ctx) error {
	pdf, err := h.uc.Receipt(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="pedido-%s.pdf"`, c.Params("id")))
	return c.Send(pdf)
}

// Revenue godoc
// @Summary      Ingreso acumulado
// @Description  Suma de totalAmount de los pedidos archivados como completed. Los cancelados no cuentan.
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.RevenueResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/revenue [get]
func (h *OrderHandler) Revenue(c *fiber.Ctx) error {
	total, err := h.uc.Revenue(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.RevenueResponse{TotalRevenue: total})
}

func toOrderResponse(o *entity.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.UnitPrice,
			Subtotal:  it.TotalPrice,
		})
	}
	return dto.OrderResponse{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		CustomerPhone: o.CustomerPhone,
		Items:         items,
		TotalAmount:   o.TotalAmount,
		Status:        o.Status,
		PaymentStatus: o.PaymentStatus,
		OrderDate:     o.OrderDate,
		DeliveryDate:  formatDate(o.DeliveryDate),
	}
}
