// Package phone normaliza teléfonos de clientes a formato E.164.
package phone

import (
	"errors"
	"strings"

	"github.com/ttacon/libphonenumber"
)

// ErrInvalid teléfono que no se puede interpretar o no es un número válido.
var ErrInvalid = errors.New("teléfono inválido")

// Normalize interpreta raw con la región por defecto (ISO 3166 alfa-2) y devuelve E.164.
// Una cadena vacía se devuelve tal cual.
func Normalize(raw, defaultRegion string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	num, err := libphonenumber.Parse(raw, strings.ToUpper(defaultRegion))
	if err != nil {
		return "", ErrInvalid
	}
	if !libphonenumber.IsValidNumber(num) {
		return "", ErrInvalid
	}
	return libphonenumber.Format(num, libphonenumber.E164), nil
}
