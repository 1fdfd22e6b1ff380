// Package production gestiona las corridas de producción y el estado de máquina de cada una.
package production

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
	"github.com/jhoicas/Planta-api/pkg/logger"
)

var statuses = map[string]bool{
	entity.RunStatusPlanned: true, entity.RunStatusInProgress: true, entity.RunStatusStopped: true,
	entity.RunStatusCompleted: true, entity.RunStatusCancelled: true,
}

func isTerminal(status string) bool {
	return status == entity.RunStatusCompleted || status == entity.RunStatusCancelled
}

// CreateRunInput datos de una corrida nueva. Status vacío equivale a planned.
type CreateRunInput struct {
	RunNumber        string
	ProductID        string
	ProductionLineID *string
	Quantity         int
	Status           string
	StartDate        *time.Time
	AssignedTo       *string
	Notes            *string
}

// UpdateRunInput campos opcionales; nil deja el valor actual.
type UpdateRunInput struct {
	Status         *string
	MachineStopped *bool
	StopReason     *string
	AssignedTo     *string
}

// ProductionUseCase alta, consulta y actualización de corridas.
type ProductionUseCase struct {
	runs     repository.ProductionRunRepository
	products repository.ProductRepository
	now      func() time.Time
	log      *logger.Logger
}

// NewProductionUseCase construye el caso de uso. now nil usa time.Now.
func NewProductionUseCase(runs repository.ProductionRunRepository, products repository.ProductRepository, now func() time.Time, log *logger.Logger) *ProductionUseCase {
	if now == nil {
		now = time.Now
	}
	return &ProductionUseCase{runs: runs, products: products, now: now, log: log.Component("production")}
}

// Create registra una corrida para un producto existente.
func (uc *ProductionUseCase) Create(ctx context.Context, createdBy string, in CreateRunInput) (*entity.ProductionRun, error) {
	in.RunNumber = strings.TrimSpace(in.RunNumber)
	if in.RunNumber == "" || in.ProductID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Status == "" {
		in.Status = entity.RunStatusPlanned
	}
	if !statuses[in.Status] || isTerminal(in.Status) {
		return nil, domain.ErrInvalidStatus
	}
	p, err := uc.products.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrInvalidInput
	}

	now := uc.now()
	run := &entity.ProductionRun{
		ID:               uuid.New().String(),
		RunNumber:        in.RunNumber,
		ProductID:        p.ID,
		ProductName:      p.Name,
		ProductionLineID: in.ProductionLineID,
		Quantity:         in.Quantity,
		Status:           in.Status,
		MachineStopped:   in.Status == entity.RunStatusStopped,
		StartDate:        in.StartDate,
		AssignedTo:       in.AssignedTo,
		Notes:            in.Notes,
		CreatedBy:        createdBy,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.runs.Create(ctx, run); err != nil {
		return nil, err
	}
	uc.log.Info().Str("run_id", run.ID).Str("run_number", run.RunNumber).Int("quantity", run.Quantity).Msg("corrida creada")
	return run, nil
}

// List devuelve todas las corridas.
func (uc *ProductionUseCase) List(ctx context.Context) ([]*entity.ProductionRun, error) {
	return uc.runs.List(ctx, "")
}

// ListArchived devuelve las corridas completadas.
func (uc *ProductionUseCase) ListArchived(ctx context.Context) ([]*entity.ProductionRun, error) {
	return uc.runs.List(ctx, entity.RunStatusCompleted)
}

// Get busca una corrida por id o run_number.
func (uc *ProductionUseCase) Get(ctx context.Context, ref string) (*entity.ProductionRun, error) {
	run, err := uc.runs.GetByRef(ctx, ref)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, domain.ErrNotFound
	}
	return run, nil
}

// Update aplica los campos enviados. Pasar a completed sella completion_date;
// una corrida completed o cancelled ya no cambia de estado.
func (uc *ProductionUseCase) Update(ctx context.Context, ref string, in UpdateRunInput) (*entity.ProductionRun, error) {
	if in.Status != nil && !statuses[*in.Status] {
		return nil, domain.ErrInvalidStatus
	}
	run, err := uc.Get(ctx, ref)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	if in.Status != nil && *in.Status != run.Status {
		if isTerminal(run.Status) {
			return nil, domain.ErrInvalidStatus
		}
		run.Status = *in.Status
		if run.Status == entity.RunStatusCompleted {
			run.CompletionDate = &now
		}
	}
	if in.MachineStopped != nil {
		run.MachineStopped = *in.MachineStopped
	}
	if in.StopReason != nil {
		run.StopReason = in.StopReason
	}
	if in.AssignedTo != nil {
		run.AssignedTo = in.AssignedTo
	}
	run.UpdatedAt = now
	if err := uc.runs.Update(ctx, run); err != nil {
		return nil, err
	}
	if in.MachineStopped != nil {
		ev := uc.log.Info()
		if run.MachineStopped {
			ev = uc.log.Warn()
		}
		ev.Str("run_number", run.RunNumber).Bool("machine_stopped", run.MachineStopped).Msg("estado de máquina actualizado")
	}
	return run, nil
}
