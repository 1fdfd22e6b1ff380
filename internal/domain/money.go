package domain

import "github.com/shopspring/decimal"

// MoneyScale decimales de las columnas de dinero (NUMERIC(12,2)).
const MoneyScale = 2

var maxAmount = decimal.New(1, 10) // NUMERIC(12,2): 10 dígitos enteros

// ValidAmount indica si d es un importe no negativo que la base guarda sin redondear.
// "1.50" y "1.500" son válidos; "1.005" no.
func ValidAmount(d decimal.Decimal) bool {
	return !d.IsNegative() && d.LessThan(maxAmount) && d.Equal(d.Round(MoneyScale))
}
