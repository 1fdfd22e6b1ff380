package entity

import "time"

// Tipos de bodega conocidos. Type no es único; se usa como clave de búsqueda en traslados.
const (
	WarehouseTypeRawMaterials  = "raw_materials"
	WarehouseTypeWholesale     = "wholesale"
	WarehouseTypeDetailedSales = "detailed_sales"
)

// Warehouse representa una bodega de la planta.
type Warehouse struct {
	ID        string
	Name      string
	Type      string
	Location  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
