package inventory

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Campos del ítem rastreados por la auditoría (más el precio del producto).
const (
	FieldQuantity = "quantity"
	FieldMinStock = "min_stock"
	FieldLocation = "location"
	FieldPrice    = "price"
)

// FieldChange diferencia de un campo expresada como texto, tal como se persiste en inventory_archive.
type FieldChange struct {
	Field string
	Old   string
	New   string
}

// Stringify representa un valor como texto para comparar y auditar.
// Los decimales usan su forma canónica, por lo que "10.00" y "10.0" producen el mismo texto.
func Stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case *string:
		if x == nil {
			return ""
		}
		return *x
	case int:
		return strconv.Itoa(x)
	case *int:
		if x == nil {
			return ""
		}
		return strconv.Itoa(*x)
	case decimal.Decimal:
		return x.String()
	case *decimal.Decimal:
		if x == nil {
			return ""
		}
		return x.String()
	case time.Time:
		return x.Format("2006-01-02")
	case *time.Time:
		if x == nil {
			return ""
		}
		return x.Format("2006-01-02")
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// Diff devuelve el cambio solo si los textos de old y new difieren.
func Diff(field string, old, new any) (FieldChange, bool) {
	o, n := Stringify(old), Stringify(new)
	if o == n {
		return FieldChange{}, false
	}
	return FieldChange{Field: field, Old: o, New: n}, true
}

// TransferDescription textos old/new del registro de auditoría de un traslado.
func TransferDescription(qty int, sourceType, targetType string) (oldValue, newValue string) {
	return fmt.Sprintf("%d moved from %s", qty, sourceType), fmt.Sprintf("%d added to %s", qty, targetType)
}
