package repository

import (
	"context"

	"github.com/jhoicas/Planta-api/internal/domain/entity"
)

// AlertRepository persistencia de alertas emitidas por el pipeline de detección.
type AlertRepository interface {
	Create(ctx context.Context, alert *entity.Alert) error
	GetByID(ctx context.Context, id string) (*entity.Alert, error)
	List(ctx context.Context) ([]*entity.Alert, error)
	UpdateStatus(ctx context.Context, alert *entity.Alert) error
}
