package swissqr_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/qrbill-api/pkg/swissqr"
)

// ── Referencia QR (QRR) ───────────────────────────────────────────────────────

func TestQRReference_EjemploCompleto(t *testing.T) {
	ref, err := swissqr.QRReference("210000", "1234567", "7654321")
	require.NoError(t, err)
	assert.Equal(t, "21 00000 00001 23456 77654 32101", ref)

	groups := strings.Split(ref, " ")
	require.Len(t, groups, 7)
	for i, size := range []int{2, 5, 5, 5, 5, 5, 5} {
		assert.Len(t, groups[i], size, "Grupo %d", i)
	}

	digits := strings.ReplaceAll(ref, " ", "")
	require.Len(t, digits, 27)
	assert.Equal(t, swissqr.Modulo10(digits[:26]), digits[26:],
		"El último dígito debe ser el módulo 10 de los 26 anteriores")
	assert.True(t, swissqr.ValidateQRReference(ref))
}

func TestQRReference_IsrIDConGuionesYRelleno(t *testing.T) {
	ref, err := swissqr.QRReference("21-0000", "42", "1001")
	require.NoError(t, err)
	assert.Equal(t, "21 00000 00000 00004 20001 00108", ref)
}

func TestQRReference_ErroresPorCampo(t *testing.T) {
	_, err := swissqr.QRReference("123456789", "1", "1")
	assert.ErrorIs(t, err, swissqr.ErrIsrID, "ISR-ID de 9 dígitos debe fallar")

	_, err = swissqr.QRReference("21A", "1", "1")
	assert.ErrorIs(t, err, swissqr.ErrIsrID, "ISR-ID con letras debe fallar")

	_, err = swissqr.QRReference("210000", "12345678", "1")
	assert.ErrorIs(t, err, swissqr.ErrCustomerNumber)

	_, err = swissqr.QRReference("210000", "12A", "1")
	assert.ErrorIs(t, err, swissqr.ErrCustomerNumber)

	_, err = swissqr.QRReference("210000", "1", "12345678")
	assert.ErrorIs(t, err, swissqr.ErrInvoiceNumber)
}

func TestValidateQRReference_DigitoIncorrecto(t *testing.T) {
	assert.True(t, swissqr.ValidateQRReference("21 00000 00003 13947 14300 09017"))
	assert.False(t, swissqr.ValidateQRReference("21 00000 00003 13947 14300 09018"))
	assert.False(t, swissqr.ValidateQRReference("2100000"))
}

// ── Referencia RF (SCOR) ──────────────────────────────────────────────────────

func TestConvertRfNumber(t *testing.T) {
	got, err := swissqr.ConvertRfNumber("")
	require.NoError(t, err)
	assert.Equal(t, "0", got, "Vacío se representa como \"0\"")

	got, err = swissqr.ConvertRfNumber("AB-12")
	require.NoError(t, err)
	assert.Equal(t, "4AB12", got, "Se eliminan separadores y se antepone la longitud")

	got, err = swissqr.ConvertRfNumber("1234567")
	require.NoError(t, err)
	assert.Equal(t, "71234567", got)

	_, err = swissqr.ConvertRfNumber("12345678")
	assert.ErrorIs(t, err, swissqr.ErrRfNumberTooLong, "8 caracteres es demasiado largo")
}

func TestGenerateRfReference_VectorISO(t *testing.T) {
	ref, ok := swissqr.GenerateRfReference(testRfBody)
	require.True(t, ok)
	assert.Equal(t, testRfRef, ref)
	assert.True(t, swissqr.ValidateRfReference(ref))
}

func TestGenerateRfReference_NormalizaEntrada(t *testing.T) {
	ref, ok := swissqr.GenerateRfReference("4ab 12")
	require.True(t, ok)
	assert.Equal(t, "RF39 4AB1 2", ref)
}

// TestGenerateRfReference_IdaYVuelta: todo cuerpo alfanumérico de hasta 21
// caracteres genera una referencia que vuelve a validar.
func TestGenerateRfReference_IdaYVuelta(t *testing.T) {
	const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	for n := 1; n <= 21; n++ {
		var b strings.Builder
		for i := 0; i < n; i++ {
			b.WriteByte(alphabet[(i*7+n)%len(alphabet)])
		}
		ref, ok := swissqr.GenerateRfReference(b.String())
		require.True(t, ok, "Cuerpo de %d caracteres: %s", n, b.String())
		assert.True(t, swissqr.ValidateRfReference(ref), "Referencia %s debe validar", ref)
		assert.LessOrEqual(t, len(strings.ReplaceAll(ref, " ", "")), swissqr.MaxRfLen)
	}
}

func TestGenerateRfReference_DemasiadoLarga(t *testing.T) {
	_, ok := swissqr.GenerateRfReference(strings.Repeat("1", 22))
	assert.False(t, ok, "RF + 2 dígitos + 22 caracteres supera 25")
}

func TestValidateRfReference_Rechazos(t *testing.T) {
	assert.False(t, swissqr.ValidateRfReference("RF19 5390 0754 7034"), "Dígitos de control alterados")
	assert.False(t, swissqr.ValidateRfReference("XX18 5390 0754 7034"))
	assert.False(t, swissqr.ValidateRfReference(""))
	assert.True(t, swissqr.ValidateRfReference("rf18539007547034"), "Minúsculas se aceptan")
}

func TestCreditorReference(t *testing.T) {
	ref, err := swissqr.CreditorReference("1234567", "1")
	require.NoError(t, err)
	assert.Equal(t, "RF63 7123 4567 11", ref)

	ref, err = swissqr.CreditorReference("", "")
	require.NoError(t, err)
	assert.Equal(t, "RF04 00", ref)
}

func TestCreditorReference_AmbosErrores(t *testing.T) {
	_, err := swissqr.CreditorReference("CUST-12345678", "INV-123456789")
	require.Error(t, err)
	assert.True(t, errors.Is(err, swissqr.ErrCustomerNumber), "Debe reportar el número de cliente")
	assert.True(t, errors.Is(err, swissqr.ErrInvoiceNumber), "Debe reportar el número de factura")
}

func TestFormatBlocks(t *testing.T) {
	assert.Equal(t, "RF18 5390 0754 7034", swissqr.FormatBlocks("RF18539007547034", 4))
	assert.Equal(t, "ABC", swissqr.FormatBlocks("ABC", 4))
	assert.Equal(t, "", swissqr.FormatBlocks("", 4))
}
