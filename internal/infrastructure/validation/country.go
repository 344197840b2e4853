package validation

import (
	"strings"

	"github.com/biter777/countries"

	"github.com/jhoicas/qrbill-api/internal/domain/qrbill"
)

var _ qrbill.CountryValidator = CountryValidator{}

// swissNames nombres que countries.ByName no reconoce.
var swissNames = map[string]bool{
	"SCHWIIZ":                true,
	"CONFOEDERATIOHELVETICA": true,
	"CONFEDERAZIUNSVIZRA":    true,
}

// CountryValidator valida códigos ISO 3166-1 alfa-2 con biter777/countries.
type CountryValidator struct{}

// NewCountryValidator construye el validador.
func NewCountryValidator() CountryValidator { return CountryValidator{} }

// IsValidCountryCode exige exactamente un código alfa-2 en mayúsculas.
func (CountryValidator) IsValidCountryCode(code string) bool {
	if len(code) != 2 || strings.ToUpper(code) != code {
		return false
	}
	c := countries.ByName(code)
	return c != countries.Unknown && c.Alpha2() == code
}

// IsSwissCountry reconoce "CH", "Schweiz", "Suisse", "Svizzera", "Switzerland"...
func (CountryValidator) IsSwissCountry(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	if countries.ByName(name) == countries.CH {
		return true
	}
	key := strings.ToUpper(strings.Join(strings.Fields(name), ""))
	return swissNames[key]
}
