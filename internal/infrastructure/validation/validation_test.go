package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/qrbill-api/internal/infrastructure/validation"
)

// ─────────────────────────────────────────────────────────────────────────────
// IBAN
// ─────────────────────────────────────────────────────────────────────────────

func TestIsValidIban_Validos(t *testing.T) {
	v := validation.NewIbanValidator()
	assert.True(t, v.IsValidIban("CH93 0076 2011 6238 5295 7"))
	assert.True(t, v.IsValidIban("ch9300762011623852957"), "minúsculas se normalizan")
	assert.True(t, v.IsValidIban("CH44 3199 9123 0008 8901 2"))
	assert.True(t, v.IsValidIban("DE89 3704 0044 0532 0130 00"))
}

func TestIsValidIban_ChecksumIncorrecto(t *testing.T) {
	v := validation.NewIbanValidator()
	assert.False(t, v.IsValidIban("CH94 0076 2011 6238 5295 7"))
}

func TestIsValidIban_LongitudPorPais(t *testing.T) {
	v := validation.NewIbanValidator()
	assert.False(t, v.IsValidIban("CH93 0076 2011 6238 5295"), "CH exige 21 caracteres")
	assert.False(t, v.IsValidIban(""))
	assert.False(t, v.IsValidIban("CH"))
}

func TestIsValidIban_PaisDesconocido(t *testing.T) {
	v := validation.NewIbanValidator()
	assert.False(t, v.IsValidIban("ZZ8112345678901"), "ZZ no tiene formato IBAN registrado")
}

func TestIsValidIban_LongitudDeOtrosPaises(t *testing.T) {
	v := validation.NewIbanValidator()
	assert.True(t, v.IsValidIban("SA03 8000 0000 6080 1016 7519"), "SA exige 24 caracteres")
	assert.False(t, v.IsValidIban("SA691234567890123456789012345"), "29 caracteres con checksum correcto")
	assert.True(t, v.IsValidIban("NO93 8601 1117 947"), "NO exige 15 caracteres")
}

func TestIsQrIban_RangoIID(t *testing.T) {
	v := validation.NewIbanValidator()
	assert.True(t, v.IsQrIban("CH44 3199 9123 0008 8901 2"), "IID 31999 es QR-IBAN")
	assert.False(t, v.IsQrIban("CH93 0076 2011 6238 5295 7"), "IID 00762 no es QR-IBAN")
}

func TestIsQrIban_PaisNoSuizo(t *testing.T) {
	v := validation.NewIbanValidator()
	assert.False(t, v.IsQrIban("DE89 3704 0044 0532 0130 00"))
}

// ─────────────────────────────────────────────────────────────────────────────
// Países
// ─────────────────────────────────────────────────────────────────────────────

func TestIsValidCountryCode(t *testing.T) {
	v := validation.NewCountryValidator()
	assert.True(t, v.IsValidCountryCode("CH"))
	assert.True(t, v.IsValidCountryCode("LI"))
	assert.True(t, v.IsValidCountryCode("DE"))
	assert.False(t, v.IsValidCountryCode("ch"), "sólo mayúsculas")
	assert.False(t, v.IsValidCountryCode("CHE"), "alfa-3 no es válido")
	assert.False(t, v.IsValidCountryCode("Schweiz"))
	assert.False(t, v.IsValidCountryCode(""))
}

func TestIsSwissCountry_Sinonimos(t *testing.T) {
	v := validation.NewCountryValidator()
	for _, name := range []string{"CH", "Schweiz", "Suisse", "Svizzera", "Switzerland", " schweiz "} {
		assert.True(t, v.IsSwissCountry(name), name)
	}
}

func TestIsSwissCountry_OtrosPaises(t *testing.T) {
	v := validation.NewCountryValidator()
	assert.False(t, v.IsSwissCountry("Deutschland"))
	assert.False(t, v.IsSwissCountry("LI"))
	assert.False(t, v.IsSwissCountry(""))
}
