package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una alerta.
const (
	AlertStatusNew          = "new"
	AlertStatusAcknowledged = "acknowledged"
	AlertStatusResolved     = "resolved"
	AlertStatusDismissed    = "dismissed"
)

// Severidades de alerta.
const (
	AlertSeverityLow      = "low"
	AlertSeverityMedium   = "medium"
	AlertSeverityHigh     = "high"
	AlertSeverityCritical = "critical"
)

// Alert evento publicado por el pipeline externo de detección (cámaras) u otros productores.
type Alert struct {
	ID              string
	Type            string
	Severity        string
	Title           string
	Description     string
	CameraID        string
	ProductionRunID *string
	InventoryItemID *string
	Status          string
	AIConfidence    decimal.Decimal
	Data            json.RawMessage
	AcknowledgedBy  *string
	AcknowledgedAt  *time.Time
	ResolvedBy      *string
	ResolvedAt      *time.Time
	CreatedAt       time.Time
}
