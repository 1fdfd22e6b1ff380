package entity

import "time"

// Campos especiales de auditoría además de los campos rastreados del ítem.
const (
	ArchiveFieldTransfer = "transfer"
	ArchiveFieldCreated  = "created"
	ArchiveFieldDeleted  = "deleted"
)

// InventoryArchive registro inmutable de un cambio sobre un ítem de inventario o el precio de su producto.
// Solo se inserta; nunca se actualiza ni se borra.
type InventoryArchive struct {
	ID        string
	ItemID    string
	SKU       string // snapshot del SKU al momento del cambio
	Field     string
	OldValue  string
	NewValue  string
	EditedBy  string
	Timestamp time.Time
}
