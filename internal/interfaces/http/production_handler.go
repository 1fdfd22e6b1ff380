package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Planta-api/internal/application/dto"
	"github.com/jhoicas/Planta-api/internal/application/production"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/pkg/logger"
)

type productionService interface {
	Create(ctx context.Context, createdBy string, in production.CreateRunInput) (*entity.ProductionRun, error)
	List(ctx context.Context) ([]*entity.ProductionRun, error)
	ListArchived(ctx context.Context) ([]*entity.ProductionRun, error)
	Get(ctx context.Context, ref string) (*entity.ProductionRun, error)
	Update(ctx context.Context, ref string, in production.UpdateRunInput) (*entity.ProductionRun, error)
}

// ProductionHandler corridas de producción (admin y production_staff).
type ProductionHandler struct {
	uc  productionService
	log *logger.Logger
}

// NewProductionHandler construye el handler.
func NewProductionHandler(uc productionService, log *logger.Logger) *ProductionHandler {
	return &ProductionHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear corrida de producción
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductionRunRequest  true  "runNumber, productId, quantity"
// @Success      201   {object}  dto.ProductionRunResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/production/runs [post]
func (h *ProductionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductionRunRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, h.log, err)
	}
	start, err := parseDate(in.StartDate)
	if err != nil {
		return writeError(c, h.log, err)
	}
	actor, _ := GetActor(c)
	run, err := h.uc.Create(c.UserContext(), actor.UserID, production.CreateRunInput{
		RunNumber:        in.RunNumber,
		ProductID:        in.ProductID,
		ProductionLineID: in.ProductionLineID,
		Quantity:         in.Quantity,
		Status:           in.Status,
		StartDate:        start,
		AssignedTo:       in.AssignedTo,
		Notes:            in.Notes,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toRunResponse(run))
}

// List godoc
// @Summary      Listar corridas de producción
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.ProductionRunResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/production/runs [get]
func (h *ProductionHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(toRunResponses(list))
}

// ListArchived godoc
// @Summary      Listar corridas completadas
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.ProductionRunResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/production/archived [get]
func (h *ProductionHandler) ListArchived(c *fiber.Ctx) error {
	list, err := h.uc.ListArchived(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(toRunResponses(list))
}

// Get godoc
// @Summary      Obtener corrida por id o runNumber
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Param        ref  path  string  true  "ID o runNumber"
// @Success      200  {object}  dto.ProductionRunResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/production/runs/{ref} [get]
func (h *ProductionHandler) Get(c *fiber.Ctx) error {
	run, err := h.uc.Get(c.UserContext(), c.Params("ref"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(toRunResponse(run))
}

// Update godoc
// @Summary      Actualizar corrida
// @Description  Pasar a completed sella completionDate. Una corrida completed o cancelled no cambia de estado.
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        ref   path  string                          true  "ID o runNumber"
// @Param        body  body  dto.UpdateProductionRunRequest  true  "status, machineStopped, stopReason, assignedTo"
// @Success      200   {object}  dto.ProductionRunResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/production/runs/{ref} [put]
func (h *ProductionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductionRunRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, h.log, err)
	}
	run, err := h.uc.Update(c.UserContext(), c.Params("ref"), production.UpdateRunInput{
		Status:         in.Status,
		MachineStopped: in.MachineStopped,
		StopReason:     in.StopReason,
		AssignedTo:     in.AssignedTo,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(toRunResponse(run))
}

// MachineStatus godoc
// @Summary      Estado de máquina de una corrida
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Param        ref  path  string  true  "ID o runNumber"
// @Success      200  {object}  dto.MachineStatusResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/production/runs/{ref}/machine-status [get]
func (h *ProductionHandler) MachineStatus(c *fiber.Ctx) error {
	run, err := h.uc.Get(c.UserContext(), c.Params("ref"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.MachineStatusResponse{RunNumber: run.RunNumber, MachineStopped: run.MachineStopped, StopReason: run.StopReason})
}

// SetMachineStatus godoc
// @Summary      Registrar parada o reanudación de máquina
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        ref   path  string                    true  "ID o runNumber"
// @Param        body  body  dto.MachineStatusRequest  true  "machineStopped, reason"
// @Success      200   {object}  dto.ProductionRunResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/production/runs/{ref}/machine-status [post]
func (h *ProductionHandler) SetMachineStatus(c *fiber.Ctx) error {
	var in dto.MachineStatusRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, h.log, err)
	}
	run, err := h.uc.Update(c.UserContext(), c.Params("ref"), production.UpdateRunInput{
		MachineStopped: in.MachineStopped,
		StopReason:     in.Reason,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(toRunResponse(run))
}

func toRunResponses(list []*entity.ProductionRun) []dto.ProductionRunResponse {
	out := make([]dto.ProductionRunResponse, 0, len(list))
	for _, r := range list {
		out = append(out, toRunResponse(r))
	}
	return out
}

func toRunResponse(r *entity.ProductionRun) dto.ProductionRunResponse {
	return dto.ProductionRunResponse{
		ID:               r.ID,
		RunNumber:        r.RunNumber,
		ProductID:        r.ProductID,
		ProductName:      r.ProductName,
		ProductionLineID: r.ProductionLineID,
		Quantity:         r.Quantity,
		Status:           r.Status,
		MachineStopped:   r.MachineStopped,
		StopReason:       r.StopReason,
		StartDate:        r.StartDate,
		CompletionDate:   r.CompletionDate,
		AssignedTo:       r.AssignedTo,
		Notes:            r.Notes,
		CreatedBy:        r.CreatedBy,
	}
}
