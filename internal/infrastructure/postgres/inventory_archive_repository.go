package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
)

var _ repository.InventoryArchiveRepository = (*InventoryArchiveRepo)(nil)

// InventoryArchiveRepo registro de auditoría de inventario (solo INSERT y SELECT).
type InventoryArchiveRepo struct {
	q Querier
}

// NewInventoryArchiveRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryArchiveRepository(q Querier) *InventoryArchiveRepo {
	return &InventoryArchiveRepo{q: q}
}

// Create agrega un registro.
func (r *InventoryArchiveRepo) Create(ctx context.Context, rec *entity.InventoryArchive) error {
	query := `
		INSERT INTO inventory_archive (id, item_id, sku, field, old_value, new_value, edited_by, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		rec.ID, rec.ItemID, rec.SKU, rec.Field, rec.OldValue, rec.NewValue, rec.EditedBy, rec.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert inventory archive: %w", err)
	}
	return nil
}

// List devuelve todos los registros, más reciente primero.
func (r *InventoryArchiveRepo) List(ctx context.Context) ([]*entity.InventoryArchive, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, item_id, sku, field, old_value, new_value, edited_by, timestamp
		FROM inventory_archive ORDER BY timestamp DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list inventory archive: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryArchive
	for rows.Next() {
		var a entity.InventoryArchive
		if err := rows.Scan(&a.ID, &a.ItemID, &a.SKU, &a.Field, &a.OldValue, &a.NewValue, &a.EditedBy, &a.Timestamp); err != nil {
			return nil, fmt.Errorf("scan inventory archive: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
