// Package alerts registra y gestiona las alertas que publica el pipeline de detección.
package alerts

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Planta-api/internal/application/dto"
	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
	"github.com/jhoicas/Planta-api/pkg/logger"
)

var severities = map[string]bool{
	entity.AlertSeverityLow: true, entity.AlertSeverityMedium: true,
	entity.AlertSeverityHigh: true, entity.AlertSeverityCritical: true,
}

var statuses = map[string]bool{
	entity.AlertStatusNew: true, entity.AlertStatusAcknowledged: true,
	entity.AlertStatusResolved: true, entity.AlertStatusDismissed: true,
}

// AlertUseCase alta, listado y cambio de estado de alertas.
type AlertUseCase struct {
	repo repository.AlertRepository
	log  *logger.Logger
}

// NewAlertUseCase construye el caso de uso.
func NewAlertUseCase(repo repository.AlertRepository, log *logger.Logger) *AlertUseCase {
	return &AlertUseCase{repo: repo, log: log.Component("alerts")}
}

// Create guarda una alerta nueva en estado "new".
func (uc *AlertUseCase) Create(ctx context.Context, in dto.CreateAlertRequest) (*entity.Alert, error) {
	if in.Type == "" || in.Title == "" || in.CameraID == "" || !severities[in.Severity] {
		return nil, domain.ErrInvalidInput
	}
	a := &entity.Alert{
		ID:              uuid.New().String(),
		Type:            in.Type,
		Severity:        in.Severity,
		Title:           in.Title,
		Description:     in.Description,
		CameraID:        in.CameraID,
		ProductionRunID: in.ProductionRunID,
		InventoryItemID: in.InventoryItemID,
		Status:          entity.AlertStatusNew,
		AIConfidence:    in.AIConfidence,
		Data:            in.Data,
		CreatedAt:       time.Now(),
	}
	if err := uc.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	uc.log.Info().Str("alert_id", a.ID).Str("severity", a.Severity).Str("camera_id", a.CameraID).Msg("alerta registrada")
	return a, nil
}

// List devuelve las alertas, más recientes primero.
func (uc *AlertUseCase) List(ctx context.Context) ([]*entity.Alert, error) {
	return uc.repo.List(ctx)
}

// UpdateStatus cambia el estado; acknowledged y resolved registran quién y cuándo.
func (uc *AlertUseCase) UpdateStatus(ctx context.Context, actorID, alertID, status string) (*entity.Alert, error) {
	if !statuses[status] {
		return nil, domain.ErrInvalidStatus
	}
	a, err := uc.repo.GetByID(ctx, alertID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	a.Status = status
	switch status {
	case entity.AlertStatusAcknowledged:
		a.AcknowledgedBy = &actorID
		a.AcknowledgedAt = &now
	case entity.AlertStatusResolved:
		a.ResolvedBy = &actorID
		a.ResolvedAt = &now
	}
	if err := uc.repo.UpdateStatus(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}
