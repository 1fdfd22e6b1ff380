package repository

import (
	"context"

	"github.com/jhoicas/Planta-api/internal/domain/entity"
)

// InventoryArchiveRepository registro de auditoría append-only: no hay Update ni Delete.
type InventoryArchiveRepository interface {
	Create(ctx context.Context, rec *entity.InventoryArchive) error
	// List devuelve los registros del más reciente al más antiguo.
	List(ctx context.Context) ([]*entity.InventoryArchive, error)
}
