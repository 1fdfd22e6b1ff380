// Package order contiene las reglas puras del ciclo de vida de un pedido.
package order

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
)

// Action efecto que debe aplicarse al pedido tras validar la transición.
type Action int

const (
	// ActionUpdate cambia el estado en sitio (pending <-> processing).
	ActionUpdate Action = iota + 1
	// ActionArchive mueve pedido y líneas a las tablas de archivo y borra las filas vivas.
	ActionArchive
)

// IsTerminal indica si el estado saca al pedido de la tabla viva.
func IsTerminal(status string) bool {
	return status == entity.OrderStatusCompleted || status == entity.OrderStatusCancelled
}

func isLive(status string) bool {
	return status == entity.OrderStatusPending || status == entity.OrderStatusProcessing
}

// Transition valida el paso de current a requested.
// Un pedido vivo solo puede estar en pending o processing; cualquier otro destino es ErrInvalidStatus.
func Transition(current, requested string) (Action, error) {
	if !isLive(current) {
		return 0, domain.ErrInvalidStatus
	}
	switch {
	case isLive(requested):
		return ActionUpdate, nil
	case IsTerminal(requested):
		return ActionArchive, nil
	default:
		return 0, domain.ErrInvalidStatus
	}
}

// LineTotal total congelado de una línea.
func LineTotal(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// Total suma los totales de línea.
func Total(items []entity.OrderItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.TotalPrice)
	}
	return sum
}
