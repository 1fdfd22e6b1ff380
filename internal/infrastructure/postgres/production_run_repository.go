package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
)

var _ repository.ProductionRunRepository = (*ProductionRunRepo)(nil)

const runSelect = `
	SELECT r.id, r.run_number, r.product_id, COALESCE(p.name, ''), r.production_line_id, r.quantity, r.status,
	       r.machine_stopped, r.stop_reason, r.start_date, r.completion_date, r.assigned_to, r.notes,
	       COALESCE(r.created_by, ''), r.created_at, r.updated_at
	FROM production_runs r
	LEFT JOIN products p ON p.id = r.product_id`

// ProductionRunRepo implementación de ProductionRunRepository sobre PostgreSQL.
type ProductionRunRepo struct {
	q Querier
}

// NewProductionRunRepository construye el adaptador.
func NewProductionRunRepository(q Querier) *ProductionRunRepo {
	return &ProductionRunRepo{q: q}
}

func scanRun(row pgx.Row) (*entity.ProductionRun, error) {
	var r entity.ProductionRun
	if err := row.Scan(
		&r.ID, &r.RunNumber, &r.ProductID, &r.ProductName, &r.ProductionLineID, &r.Quantity, &r.Status,
		&r.MachineStopped, &r.StopReason, &r.StartDate, &r.CompletionDate, &r.AssignedTo, &r.Notes,
		&r.CreatedBy, &r.CreatedAt, &r.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &r, nil
}

// Create inserta la corrida. run_number duplicado devuelve ErrDuplicate.
func (r *ProductionRunRepo) Create(ctx context.Context, run *entity.ProductionRun) error {
	query := `
		INSERT INTO production_runs (id, run_number, product_id, production_line_id, quantity, status, machine_stopped,
		                             stop_reason, start_date, assigned_to, notes, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		run.ID, run.RunNumber, run.ProductID, run.ProductionLineID, run.Quantity, run.Status, run.MachineStopped,
		run.StopReason, run.StartDate, run.AssignedTo, run.Notes, run.CreatedBy, run.CreatedAt, run.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert production run: %w", err)
	}
	return nil
}

// GetByRef busca por id o run_number; nil si no existe.
func (r *ProductionRunRepo) GetByRef(ctx context.Context, ref string) (*entity.ProductionRun, error) {
	run, err := scanRun(r.q.QueryRow(ctx, runSelect+` WHERE r.id = $1 OR r.run_number = $1 LIMIT 1`, ref))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get production run: %w", err)
	}
	return run, nil
}

// List devuelve las corridas más recientes primero, filtradas por estado si se indica.
func (r *ProductionRunRepo) List(ctx context.Context, status string) ([]*entity.ProductionRun, error) {
	rows, err := r.q.Query(ctx, runSelect+` WHERE $1 = '' OR r.status = $1 ORDER BY r.created_at DESC, r.run_number`, status)
	if err != nil {
		return nil, fmt.Errorf("list production runs: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductionRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan production run: %w", err)
		}
		list = append(list, run)
	}
	return list, rows.Err()
}

// Update persiste los campos mutables de la corrida.
func (r *ProductionRunRepo) Update(ctx context.Context, run *entity.ProductionRun) error {
	query := `
		UPDATE production_runs
		SET status = $2, machine_stopped = $3, stop_reason = $4, completion_date = $5, assigned_to = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		run.ID, run.Status, run.MachineStopped, run.StopReason, run.CompletionDate, run.AssignedTo, run.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update production run: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
