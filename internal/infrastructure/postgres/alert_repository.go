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

var _ repository.AlertRepository = (*AlertRepo)(nil)

const alertColumns = `id, type, severity, title, COALESCE(description, ''), camera_id, production_run_id, inventory_item_id,
	status, ai_confidence, data, acknowledged_by, acknowledged_at, resolved_by, resolved_at, created_at`

// AlertRepo implementación de AlertRepository sobre PostgreSQL.
type AlertRepo struct {
	q Querier
}

// NewAlertRepository construye el adaptador.
func NewAlertRepository(q Querier) *AlertRepo {
	return &AlertRepo{q: q}
}

func scanAlert(row pgx.Row) (*entity.Alert, error) {
	var a entity.Alert
	var data []byte
	if err := row.Scan(
		&a.ID, &a.Type, &a.Severity, &a.Title, &a.Description, &a.CameraID, &a.ProductionRunID, &a.InventoryItemID,
		&a.Status, &a.AIConfidence, &data, &a.AcknowledgedBy, &a.AcknowledgedAt, &a.ResolvedBy, &a.ResolvedAt, &a.CreatedAt,
	); err != nil {
		return nil, err
	}
	a.Data = data
	return &a, nil
}

// Create inserta una alerta.
func (r *AlertRepo) Create(ctx context.Context, a *entity.Alert) error {
	query := `
		INSERT INTO alerts (id, type, severity, title, description, camera_id, production_run_id, inventory_item_id,
		                    status, ai_confidence, data, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	var data []byte
	if len(a.Data) > 0 {
		data = a.Data
	}
	_, err := r.q.Exec(ctx, query,
		a.ID, a.Type, a.Severity, a.Title, a.Description, a.CameraID, a.ProductionRunID, a.InventoryItemID,
		a.Status, a.AIConfidence, data, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert alert: %w", err)
	}
	return nil
}

// GetByID obtiene una alerta; nil si no existe.
func (r *AlertRepo) GetByID(ctx context.Context, id string) (*entity.Alert, error) {
	a, err := scanAlert(r.q.QueryRow(ctx, `SELECT `+alertColumns+` FROM alerts WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get alert: %w", err)
	}
	return a, nil
}

// List devuelve las alertas, más recientes primero.
func (r *AlertRepo) List(ctx context.Context) ([]*entity.Alert, error) {
	rows, err := r.q.Query(ctx, `SELECT `+alertColumns+` FROM alerts ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Alert
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// UpdateStatus persiste estado y sellos de reconocimiento/resolución.
func (r *AlertRepo) UpdateStatus(ctx context.Context, a *entity.Alert) error {
	query := `
		UPDATE alerts SET status = $2, acknowledged_by = $3, acknowledged_at = $4, resolved_by = $5, resolved_at = $6
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, a.ID, a.Status, a.AcknowledgedBy, a.AcknowledgedAt, a.ResolvedBy, a.ResolvedAt)
	if err != nil {
		return fmt.Errorf("update alert status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
