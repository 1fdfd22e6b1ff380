package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Planta-api/internal/domain/entity"
	domaininv "github.com/jhoicas/Planta-api/internal/domain/inventory"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
)

// FieldUpdate valor actual y solicitado de un campo rastreado.
type FieldUpdate struct {
	Field string
	Old   any
	New   any
}

// AuditRecorder agrega registros inmutables a inventory_archive.
// Siempre se invoca con el archiveRepo de la transacción que aplica la mutación.
type AuditRecorder struct {
	now func() time.Time
}

// NewAuditRecorder construye el recorder; now nil usa time.Now.
func NewAuditRecorder(now func() time.Time) *AuditRecorder {
	if now == nil {
		now = time.Now
	}
	return &AuditRecorder{now: now}
}

// RecordFieldChanges inserta un registro por cada campo cuyo texto viejo y nuevo difiere.
// Devuelve los cambios efectivamente registrados, en el orden de updates.
func (r *AuditRecorder) RecordFieldChanges(
	ctx context.Context,
	archiveRepo repository.InventoryArchiveRepository,
	itemID, sku string,
	updates []FieldUpdate,
	actor string,
) ([]domaininv.FieldChange, error) {
	var changes []domaininv.FieldChange
	ts := r.now()
	for _, u := range updates {
		ch, changed := domaininv.Diff(u.Field, u.Old, u.New)
		if !changed {
			continue
		}
		if err := r.append(ctx, archiveRepo, itemID, sku, ch, actor, ts); err != nil {
			return nil, err
		}
		changes = append(changes, ch)
	}
	return changes, nil
}

// RecordEvent inserta un registro de evento (transfer, created, deleted) sin comparar valores.
func (r *AuditRecorder) RecordEvent(
	ctx context.Context,
	archiveRepo repository.InventoryArchiveRepository,
	itemID, sku string,
	change domaininv.FieldChange,
	actor string,
) error {
	return r.append(ctx, archiveRepo, itemID, sku, change, actor, r.now())
}

func (r *AuditRecorder) append(
	ctx context.Context,
	archiveRepo repository.InventoryArchiveRepository,
	itemID, sku string,
	ch domaininv.FieldChange,
	actor string,
	ts time.Time,
) error {
	return archiveRepo.Create(ctx, &entity.InventoryArchive{
		ID:        uuid.New().String(),
		ItemID:    itemID,
		SKU:       sku,
		Field:     ch.Field,
		OldValue:  ch.Old,
		NewValue:  ch.New,
		EditedBy:  actor,
		Timestamp: ts,
	})
}
