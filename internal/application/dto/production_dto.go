package dto

import "time"

// CreateProductionRunRequest body para POST /api/production/runs. startDate en formato YYYY-MM-DD.
type CreateProductionRunRequest struct {
	RunNumber        string  `json:"runNumber" validate:"required,max=50"`
	ProductID        string  `json:"productId" validate:"required"`
	ProductionLineID *string `json:"productionLineId,omitempty"`
	Quantity         int     `json:"quantity" validate:"gt=0"`
	Status           string  `json:"status" validate:"omitempty,oneof=planned in-progress stopped"`
	StartDate        string  `json:"startDate"`
	AssignedTo       *string `json:"assignedTo,omitempty" validate:"omitempty,max=100"`
	Notes            *string `json:"notes,omitempty"`
}

// UpdateProductionRunRequest body para PUT /api/production/runs/{ref}; los campos ausentes no cambian.
type UpdateProductionRunRequest struct {
	Status         *string `json:"status,omitempty" validate:"omitempty,oneof=planned in-progress stopped completed cancelled"`
	MachineStopped *bool   `json:"machineStopped,omitempty"`
	StopReason     *string `json:"stopReason,omitempty"`
	AssignedTo     *string `json:"assignedTo,omitempty" validate:"omitempty,max=100"`
}

// MachineStatusRequest body para POST /api/production/runs/{ref}/machine-status.
type MachineStatusRequest struct {
	MachineStopped *bool   `json:"machineStopped" validate:"required"`
	Reason         *string `json:"reason,omitempty"`
}

// MachineStatusResponse estado de máquina de una corrida.
type MachineStatusResponse struct {
	RunNumber      string  `json:"runNumber"`
	MachineStopped bool    `json:"machineStopped"`
	StopReason     *string `json:"stopReason"`
}

// ProductionRunResponse corrida de producción.
type ProductionRunResponse struct {
	ID               string     `json:"id"`
	RunNumber        string     `json:"runNumber"`
	ProductID        string     `json:"productId"`
	ProductName      string     `json:"productName"`
	ProductionLineID *string    `json:"productionLineId"`
	Quantity         int        `json:"quantity"`
	Status           string     `json:"status"`
	MachineStopped   bool       `json:"machineStopped"`
	StopReason       *string    `json:"stopReason"`
	StartDate        *time.Time `json:"startDate"`
	CompletionDate   *time.Time `json:"completionDate"`
	AssignedTo       *string    `json:"assignedTo"`
	Notes            *string    `json:"notes,omitempty"`
	CreatedBy        string     `json:"createdBy"`
}
