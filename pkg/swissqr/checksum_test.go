package swissqr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/qrbill-api/pkg/swissqr"
)

// ──────────────────────────────────────────────────────────────────────────────
// Vectores de referencia tomados de ejemplos publicados por SIX / PostFinance:
//
//	Referencia QR "21 00000 00003 13947 14300 09017": el último dígito (7) es el
//	módulo 10 recursivo de los 26 anteriores.
//	Referencia RF "RF18 5390 0754 7034" (ejemplo de la norma ISO 11649).
// ──────────────────────────────────────────────────────────────────────────────

const (
	testQRRBody  = "21000000000313947143000901"
	testQRRCheck = "7"
	testRfBody   = "539007547034"
	testRfRef    = "RF18 5390 0754 7034"
)

func TestModulo10_VectorPublicado(t *testing.T) {
	assert.Equal(t, testQRRCheck, swissqr.Modulo10(testQRRBody),
		"El dígito de control debe coincidir con el ejemplo oficial")
}

func TestModulo10_CasosBasicos(t *testing.T) {
	assert.Equal(t, "0", swissqr.Modulo10(""), "Cadena vacía termina en el estado 0")
	assert.Equal(t, "0", swissqr.Modulo10("0"))
	assert.Equal(t, "1", swissqr.Modulo10("1"))
	assert.Equal(t, "7", swissqr.Modulo10("12345"))
}

func TestModulo10_IgnoraNoDigitos(t *testing.T) {
	assert.Equal(t, swissqr.Modulo10("12345"), swissqr.Modulo10("1 2-3.4 5"),
		"Espacios y separadores no deben afectar el dígito")
}

// TestModulo10_Determinista verifica que recalcular sobre la misma cadena da el mismo dígito.
func TestModulo10_Determinista(t *testing.T) {
	inputs := []string{"", "9", "0000000000", "31394714300090", testQRRBody}
	for _, s := range inputs {
		c1 := swissqr.Modulo10(s)
		c2 := swissqr.Modulo10(s)
		assert.Equal(t, c1, c2)
		assert.Len(t, c1, 1)
	}
}

func TestModulo97_CasosBasicos(t *testing.T) {
	assert.Equal(t, 0, swissqr.Modulo97(""), "Vacío debe dar resto 0")
	assert.Equal(t, 96, swissqr.Modulo97("96"))
	assert.Equal(t, 0, swissqr.Modulo97("97"))
	assert.Equal(t, 1, swissqr.Modulo97("98"))
	assert.Equal(t, 123456789%97, swissqr.Modulo97("123456789"))
}

// TestModulo97_CadenaLarga compara con la reducción incremental hecha a mano
// sobre un número de más de 30 dígitos (no cabe en int64).
func TestModulo97_CadenaLarga(t *testing.T) {
	digits := "3214282912345698765432161182"
	want := 0
	for _, c := range digits {
		want = (want*10 + int(c-'0')) % 97
	}
	assert.Equal(t, want, swissqr.Modulo97(digits))
	assert.Equal(t, 1, swissqr.Modulo97("00762011623852957121793"),
		"IBAN CH9300762011623852957 reordenado debe dar resto 1")
}

func TestIbanChecksum(t *testing.T) {
	assert.True(t, swissqr.IbanChecksumOK("CH93 0076 2011 6238 5295 7"))
	assert.True(t, swissqr.IbanChecksumOK("ch4431999123000889012"))
	assert.True(t, swissqr.IbanChecksumOK("DE89370400440532013000"))
	assert.False(t, swissqr.IbanChecksumOK("CH9400762011623852957"), "Dígitos de control alterados")
	assert.False(t, swissqr.IbanChecksumOK("CH93-0076"), "Caracteres no permitidos")
	assert.False(t, swissqr.IbanChecksumOK(""))
}

func TestFormatIban_BloquesDe4(t *testing.T) {
	assert.Equal(t, "CH93 0076 2011 6238 5295 7", swissqr.FormatIban("ch9300762011623852957"))
	assert.Equal(t, "CH44 3199 9123 0008 8901 2", swissqr.FormatIban(" CH44 3199 9123 0008 89012 "))
	assert.Equal(t, "DE89 3704 0044 0532 0130 00", swissqr.FormatIban("DE89370400440532013000"))
}

func TestNormalizeIban(t *testing.T) {
	require.Equal(t, "CH9300762011623852957", swissqr.NormalizeIban(" ch93 0076\t2011 6238 5295 7\n"))
}

func TestSanitizeText(t *testing.T) {
	assert.Equal(t, "Zürich", swissqr.SanitizeText("Zu\u0308rich"), "Debe normalizar a NFC")
	assert.Equal(t, "Straße 1", swissqr.SanitizeText("Straße 1"))
	assert.Equal(t, "Linea 1 Linea 2", swissqr.SanitizeText("Linea 1\nLinea 2"))
	assert.Equal(t, "Pago . ok", swissqr.SanitizeText("Pago € ok"), "€ no existe en Latin-1")
	assert.Equal(t, "", swissqr.SanitizeText(""))
}
