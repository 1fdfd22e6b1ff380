package entity

import "time"

// Estados de una corrida de producción. completed y cancelled son terminales.
const (
	RunStatusPlanned    = "planned"
	RunStatusInProgress = "in-progress"
	RunStatusStopped    = "stopped"
	RunStatusCompleted  = "completed"
	RunStatusCancelled  = "cancelled"
)

// ProductionRun lote de fabricación de un producto en una línea. RunNumber es único.
type ProductionRun struct {
	ID               string
	RunNumber        string
	ProductID        string
	ProductName      string // solo lectura, viene del JOIN con products
	ProductionLineID *string
	Quantity         int
	Status           string
	MachineStopped   bool
	StopReason       *string
	StartDate        *time.Time
	CompletionDate   *time.Time
	AssignedTo       *string
	Notes            *string
	CreatedBy        string // users.id
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
