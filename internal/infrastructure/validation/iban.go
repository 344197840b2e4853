// Package validation contiene las implementaciones por defecto de los
// validadores que consume el ensamblador de QR-facturas.
package validation

import (
	"strconv"

	"github.com/jbub/banking/iban"

	"github.com/jhoicas/qrbill-api/internal/domain/qrbill"
	"github.com/jhoicas/qrbill-api/pkg/swissqr"
)

var _ qrbill.IbanValidator = IbanValidator{}

// Rango IID reservado a los QR-IBAN (SIX, IG QR-factura).
const (
	qrIIDMin = 30000
	qrIIDMax = 31999
)

// IbanValidator validación ISO 13616 contra el registro de formatos por país
// de jbub/banking, más la detección de QR-IBAN.
type IbanValidator struct{}

// NewIbanValidator construye el validador.
func NewIbanValidator() IbanValidator { return IbanValidator{} }

// IsValidIban acepta el IBAN con o sin espacios y en minúsculas. Un país sin
// formato registrado o una longitud distinta a la de su país no es válido.
func (IbanValidator) IsValidIban(value string) bool {
	value = swissqr.NormalizeIban(value)
	if value == "" {
		return false
	}
	return iban.Validate(value) == nil
}

// IsQrIban: IBAN suizo o de Liechtenstein cuyo IID cae en 30000-31999.
func (v IbanValidator) IsQrIban(value string) bool {
	value = swissqr.NormalizeIban(value)
	if !v.IsValidIban(value) {
		return false
	}
	if cc := value[:2]; cc != "CH" && cc != "LI" {
		return false
	}
	iid, err := strconv.Atoi(value[4:9])
	return err == nil && iid >= qrIIDMin && iid <= qrIIDMax
}
