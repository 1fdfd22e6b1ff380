package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// CreateAlertRequest body para POST /api/alerts (lo envía el pipeline de detección).
type CreateAlertRequest struct {
	Type            string          `json:"type" validate:"required,max=50"`
	Severity        string          `json:"severity" validate:"required,oneof=low medium high critical"`
	Title           string          `json:"title" validate:"required,max=200"`
	Description     string          `json:"description"`
	CameraID        string          `json:"camera_id" validate:"required"`
	ProductionRunID *string         `json:"production_run_id,omitempty"`
	InventoryItemID *string         `json:"inventory_item_id,omitempty"`
	AIConfidence    decimal.Decimal `json:"ai_confidence"`
	Data            json.RawMessage `json:"data,omitempty"`
}

// UpdateAlertStatusRequest body para PUT /api/alerts/{id}/status.
type UpdateAlertStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new acknowledged resolved dismissed"`
}

// AlertResponse alerta listada.
type AlertResponse struct {
	ID             string          `json:"id"`
	CameraID       string          `json:"cameraId"`
	Type           string          `json:"type"`
	Severity       string          `json:"severity"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Timestamp      time.Time       `json:"timestamp"`
	Status         string          `json:"status"`
	AIConfidence   decimal.Decimal `json:"aiConfidence"`
	Data           json.RawMessage `json:"data,omitempty"`
	AcknowledgedBy *string         `json:"acknowledgedBy,omitempty"`
	ResolvedBy     *string         `json:"resolvedBy,omitempty"`
}
