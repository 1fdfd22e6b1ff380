package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin           = "admin"
	RoleInventoryStaff  = "inventory_staff"
	RoleSalesStaff      = "sales_staff"
	RoleProductionStaff = "production_staff"
)

// User usuario del sistema.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt
	Role         string
	Name         string
	Email        string
	IsActive     bool
	CreatedAt    time.Time
	LastLogin    *time.Time
}
