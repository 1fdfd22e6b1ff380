package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
)

var _ repository.OrderArchiveRepository = (*OrderArchiveRepo)(nil)

const orderArchiveColumns = `id, order_id, order_number, customer_name, COALESCE(customer_email, ''),
	action, performed_by, total_amount, timestamp`

// OrderArchiveRepo archivo de pedidos terminados (solo INSERT y SELECT).
type OrderArchiveRepo struct {
	q Querier
}

// NewOrderArchiveRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderArchiveRepository(q Querier) *OrderArchiveRepo {
	return &OrderArchiveRepo{q: q}
}

// Create inserta la cabecera archivada.
func (r *OrderArchiveRepo) Create(ctx context.Context, a *entity.OrderArchive) error {
	query := `
		INSERT INTO order_archive (id, order_id, order_number, customer_name, customer_email, action, performed_by, total_amount, timestamp)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.OrderID, a.OrderNumber, a.CustomerName, a.CustomerEmail, a.Action, a.PerformedBy, a.TotalAmount, a.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert order archive: %w", err)
	}
	return nil
}

// CreateItem inserta una línea archivada.
func (r *OrderArchiveRepo) CreateItem(ctx context.Context, it *entity.OrderItemArchive) error {
	query := `
		INSERT INTO order_items_archive (id, order_archive_id, product_id, quantity, unit_price, total_price)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, it.ID, it.OrderArchiveID, it.ProductID, it.Quantity, it.UnitPrice, it.TotalPrice)
	if err != nil {
		return fmt.Errorf("insert order item archive: %w", err)
	}
	return nil
}

func scanOrderArchive(row pgx.Row) (*entity.OrderArchive, error) {
	var a entity.OrderArchive
	if err := row.Scan(
		&a.ID, &a.OrderID, &a.OrderNumber, &a.CustomerName, &a.CustomerEmail,
		&a.Action, &a.PerformedBy, &a.TotalAmount, &a.Timestamp,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

// GetByID obtiene un archivo con sus líneas; nil si no existe.
func (r *OrderArchiveRepo) GetByID(ctx context.Context, id string) (*entity.OrderArchive, error) {
	a, err := scanOrderArchive(r.q.QueryRow(ctx, `SELECT `+orderArchiveColumns+` FROM order_archive WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order archive: %w", err)
	}
	if err := r.attachItems(ctx, []*entity.OrderArchive{a}); err != nil {
		return nil, err
	}
	return a, nil
}

// List devuelve todos los archivos con líneas anidadas, más recientes primero.
func (r *OrderArchiveRepo) List(ctx context.Context) ([]*entity.OrderArchive, error) {
	rows, err := r.q.Query(ctx, `SELECT `+orderArchiveColumns+` FROM order_archive ORDER BY timestamp DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list order archive: %w", err)
	}
	var list []*entity.OrderArchive
	for rows.Next() {
		a, err := scanOrderArchive(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan order archive: %w", err)
		}
		list = append(list, a)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list order archive: %w", err)
	}
	if err := r.attachItems(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *OrderArchiveRepo) attachItems(ctx context.Context, archives []*entity.OrderArchive) error {
	if len(archives) == 0 {
		return nil
	}
	ids := make([]string, 0, len(archives))
	byID := make(map[string]*entity.OrderArchive, len(archives))
	for _, a := range archives {
		ids = append(ids, a.ID)
		byID[a.ID] = a
	}
	rows, err := r.q.Query(ctx, `
		SELECT id, order_archive_id, product_id, quantity, unit_price, total_price
		FROM order_items_archive WHERE order_archive_id = ANY($1) ORDER BY line_no`, ids)
	if err != nil {
		return fmt.Errorf("list order item archive: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var it entity.OrderItemArchive
		if err := rows.Scan(&it.ID, &it.OrderArchiveID, &it.ProductID, &it.Quantity, &it.UnitPrice, &it.TotalPrice); err != nil {
			return fmt.Errorf("scan order item archive: %w", err)
		}
		if a := byID[it.OrderArchiveID]; a != nil {
			a.Items = append(a.Items, it)
		}
	}
	return rows.Err()
}

// SumByAction suma total_amount de los archivos con la acción dada (0 si no hay).
func (r *OrderArchiveRepo) SumByAction(ctx context.Context, action string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, `SELECT COALESCE(SUM(total_amount), 0) FROM order_archive WHERE action = $1`, action).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum order archive: %w", err)
	}
	return total, nil
}
