package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Planta-api/internal/application/dto"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/pkg/logger"
)

type alertService interface {
	Create(ctx context.Context, in dto.CreateAlertRequest) (*entity.Alert, error)
	List(ctx context.Context) ([]*entity.Alert, error)
	UpdateStatus(ctx context.Context, actorID, alertID, status string) (*entity.Alert, error)
}

// AlertHandler alertas del pipeline de detección (protegido).
type AlertHandler struct {
	uc  alertService
	log *logger.Logger
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc alertService, log *logger.Logger) *AlertHandler {
	return &AlertHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Registrar alerta
// @Tags         alerts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAlertRequest  true  "type, severity, title, description, camera_id, ai_confidence, data"
// @Success      201   {object}  dto.AlertResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/alerts [post]
func (h *AlertHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAlertRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, h.log, err)
	}
	a, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toAlertResponse(a))
}

// List godoc
// @Summary      Listar alertas
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.AlertResponse
// @Router       /api/alerts [get]
func (h *AlertHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	out := make([]dto.AlertResponse, 0, len(list))
	for _, a := range list {
		out = append(out, toAlertResponse(a))
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado de una alerta
// @Tags         alerts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "ID de la alerta"
// @Param        body  body  dto.UpdateAlertStatusRequest  true  "status"
// @Success      200   {object}  dto.AlertResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/alerts/{id}/status [put]
func (h *AlertHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateAlertStatusRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, h.log, err)
	}
	actor, _ := GetActor(c)
	a, err := h.uc.UpdateStatus(c.UserContext(), actor.UserID, c.Params("id"), in.Status)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(toAlertResponse(a))
}

func toAlertResponse(a *entity.Alert) dto.AlertResponse {
	return dto.AlertResponse{
		ID:             a.ID,
		CameraID:       a.CameraID,
		Type:           a.Type,
		Severity:       a.Severity,
		Title:          a.Title,
		Description:    a.Description,
		Timestamp:      a.CreatedAt,
		Status:         a.Status,
		AIConfidence:   a.AIConfidence,
		Data:           a.Data,
		AcknowledgedBy: a.AcknowledgedBy,
		ResolvedBy:     a.ResolvedBy,
	}
}
