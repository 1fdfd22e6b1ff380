package repository

import (
	"context"

	"github.com/jhoicas/Planta-api/internal/domain/entity"
)

// ProductionRunRepository persistencia de corridas de producción.
type ProductionRunRepository interface {
	Create(ctx context.Context, run *entity.ProductionRun) error
	// GetByRef busca por id o por run_number; nil, nil si no existe.
	GetByRef(ctx context.Context, ref string) (*entity.ProductionRun, error)
	// List filtra por estado; status vacío devuelve todas.
	List(ctx context.Context, status string) ([]*entity.ProductionRun, error)
	Update(ctx context.Context, run *entity.ProductionRun) error
}
