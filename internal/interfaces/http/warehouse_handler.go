package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Planta-api/pkg/logger"
)

// WarehouseHandler consulta de bodegas (protegido).
type WarehouseHandler struct {
	uc  catalogService
	log *logger.Logger
}

// NewWarehouseHandler construye el handler.
func NewWarehouseHandler(uc catalogService, log *logger.Logger) *WarehouseHandler {
	return &WarehouseHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar bodegas
// @Description  El campo type es el que se usa en sourceWarehouse/targetWarehouse de los traslados.
// @Tags         warehouses
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.WarehouseResponse
// @Router       /api/warehouses [get]
func (h *WarehouseHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListWarehouses(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
