package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
)

var _ repository.InventoryItemRepository = (*InventoryItemRepo)(nil)

const itemColumns = `id, product_id, warehouse_id, quantity, min_stock, reorder_point, location, expiry_date, created_at, updated_at`

// InventoryItemRepo implementación de InventoryItemRepository (usable con pool o tx).
type InventoryItemRepo struct {
	q Querier
}

// NewInventoryItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryItemRepository(q Querier) *InventoryItemRepo {
	return &InventoryItemRepo{q: q}
}

func scanItem(row pgx.Row) (*entity.InventoryItem, error) {
	var it entity.InventoryItem
	err := row.Scan(
		&it.ID, &it.ProductID, &it.WarehouseID, &it.Quantity, &it.MinStock, &it.ReorderPoint,
		&it.Location, &it.ExpiryDate, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *InventoryItemRepo) getOne(ctx context.Context, query string, args ...any) (*entity.InventoryItem, error) {
	it, err := scanItem(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	return it, nil
}

// GetByID obtiene un ítem sin bloquear.
func (r *InventoryItemRepo) GetByID(ctx context.Context, id string) (*entity.InventoryItem, error) {
	return r.getOne(ctx, `SELECT `+itemColumns+` FROM inventory_items WHERE id = $1`, id)
}

// GetForUpdate obtiene el ítem y bloquea la fila (SELECT FOR UPDATE).
func (r *InventoryItemRepo) GetForUpdate(ctx context.Context, id string) (*entity.InventoryItem, error) {
	return r.getOne(ctx, `SELECT `+itemColumns+` FROM inventory_items WHERE id = $1 FOR UPDATE`, id)
}

// GetOrCreateForUpdate inserta la fila del par con cantidad 0 si falta (ON CONFLICT DO NOTHING)
// y luego la bloquea. Dos transacciones concurrentes terminan sobre la misma fila.
func (r *InventoryItemRepo) GetOrCreateForUpdate(ctx context.Context, productID, warehouseID string, tpl *entity.InventoryItem) (*entity.InventoryItem, error) {
	insert := `
		INSERT INTO inventory_items (id, product_id, warehouse_id, quantity, min_stock, reorder_point, location, expiry_date, created_at, updated_at)
		VALUES ($1, $2, $3, 0, $4, $5, $6, $7, now(), now())
		ON CONFLICT (product_id, warehouse_id) DO NOTHING`
	var minStock, reorder int
	var location *string
	var expiry *time.Time
	if tpl != nil {
		minStock, reorder, location, expiry = tpl.MinStock, tpl.ReorderPoint, tpl.Location, dateOnly(tpl.ExpiryDate)
	}
	if _, err := r.q.Exec(ctx, insert, uuid.New().String(), productID, warehouseID, minStock, reorder, location, expiry); err != nil {
		return nil, fmt.Errorf("insert destination item: %w", err)
	}
	it, err := r.getOne(ctx, `
		SELECT `+itemColumns+` FROM inventory_items
		WHERE product_id = $1 AND warehouse_id = $2
		FOR UPDATE`, productID, warehouseID)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, fmt.Errorf("destination item %s/%s desapareció tras el insert", productID, warehouseID)
	}
	return it, nil
}

// Create inserta un ítem; el par (producto, bodega) repetido devuelve ErrDuplicate.
func (r *InventoryItemRepo) Create(ctx context.Context, it *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (id, product_id, warehouse_id, quantity, min_stock, reorder_point, location, expiry_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		it.ID, it.ProductID, it.WarehouseID, it.Quantity, it.MinStock, it.ReorderPoint,
		it.Location, dateOnly(it.ExpiryDate), it.CreatedAt, it.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isCheckViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return nil
}

// Update persiste los campos mutables del ítem.
func (r *InventoryItemRepo) Update(ctx context.Context, it *entity.InventoryItem) error {
	query := `
		UPDATE inventory_items
		SET quantity = $2, min_stock = $3, reorder_point = $4, location = $5, expiry_date = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		it.ID, it.Quantity, it.MinStock, it.ReorderPoint, it.Location, dateOnly(it.ExpiryDate), it.UpdatedAt,
	)
	if err != nil {
		if isCheckViolation(err) {
			return domain.ErrInsufficientStock
		}
		return fmt.Errorf("update inventory item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el ítem.
func (r *InventoryItemRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByWarehouseType lista los ítems de las bodegas del tipo dado con datos de producto.
func (r *InventoryItemRepo) ListByWarehouseType(ctx context.Context, warehouseType string) ([]*entity.InventoryItemView, error) {
	query := `
		SELECT i.id, i.product_id, i.warehouse_id, i.quantity, i.min_stock, i.reorder_point, i.location, i.expiry_date,
		       i.created_at, i.updated_at, p.name, p.sku, p.price, w.type
		FROM inventory_items i
		JOIN warehouses w ON w.id = i.warehouse_id
		JOIN products p ON p.id = i.product_id
		WHERE w.type = $1
		ORDER BY p.name, i.id`
	rows, err := r.q.Query(ctx, query, warehouseType)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryItemView
	for rows.Next() {
		var v entity.InventoryItemView
		if err := rows.Scan(
			&v.ID, &v.ProductID, &v.WarehouseID, &v.Quantity, &v.MinStock, &v.ReorderPoint, &v.Location, &v.ExpiryDate,
			&v.CreatedAt, &v.UpdatedAt, &v.ProductName, &v.SKU, &v.Price, &v.WarehouseType,
		); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
