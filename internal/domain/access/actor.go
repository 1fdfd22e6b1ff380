// Package access resuelve qué puede hacer el actor autenticado de una petición.
package access

import "github.com/jhoicas/Planta-api/internal/domain/entity"

// Capability acción protegida del API.
type Capability string

const (
	CapInventoryRead   Capability = "inventory:read"
	CapInventoryWrite  Capability = "inventory:write"
	CapInventoryAudit  Capability = "inventory:audit"
	CapOrdersRead      Capability = "orders:read"
	CapOrdersWrite     Capability = "orders:write"
	CapRevenueRead     Capability = "revenue:read"
	CapAlertsRead      Capability = "alerts:read"
	CapAlertsWrite     Capability = "alerts:write"
	CapProductionRead  Capability = "production:read"
	CapProductionWrite Capability = "production:write"
)

// Actor identidad ya resuelta a partir del token.
type Actor struct {
	UserID   string
	Username string
	Role     string
}

var production = []Capability{CapProductionRead, CapProductionWrite}

var staff = []Capability{
	CapInventoryRead, CapInventoryWrite,
	CapOrdersRead, CapOrdersWrite,
	CapRevenueRead,
	CapAlertsRead, CapAlertsWrite,
}

// capabilities tabla única rol -> capacidades.
var capabilities = map[string]map[Capability]bool{
	entity.RoleAdmin:           set(append(append([]Capability{CapInventoryAudit}, production...), staff...)...),
	entity.RoleInventoryStaff:  set(staff...),
	entity.RoleSalesStaff:      set(staff...),
	entity.RoleProductionStaff: set(append(production, staff...)...),
}

func set(caps ...Capability) map[Capability]bool {
	m := make(map[Capability]bool, len(caps))
	for _, c := range caps {
		m[c] = true
	}
	return m
}

// Can indica si el rol del actor concede la capacidad. Un rol desconocido no concede nada.
func (a Actor) Can(c Capability) bool {
	return capabilities[a.Role][c]
}

// IsKnownRole valida el rol contra la tabla de capacidades.
func IsKnownRole(role string) bool {
	_, ok := capabilities[role]
	return ok
}
