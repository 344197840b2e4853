package pdf_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/qrbill-api/internal/domain/qrbill"
	"github.com/jhoicas/qrbill-api/internal/infrastructure/pdf"
	"github.com/jhoicas/qrbill-api/internal/infrastructure/qrcode"
)

func qrPNG(t *testing.T, payload string) []byte {
	t.Helper()
	img, err := qrcode.NewPNGRenderer(0).Render(payload, qrbill.DefaultQrOptions)
	require.NoError(t, err)
	return img
}

func presentation() qrbill.Presentation {
	return qrbill.Presentation{
		Language:      "de",
		Texts:         qrbill.NewCatalog().Texts("de"),
		ReferenceType: "SCOR",
		Account:       "CH93 0076 2011 6238 5295 7",
		Creditor:      []string{"Muster AG", "Bahnhofstrasse 1", "8001 Zürich", "CH"},
		Debtor:        []string{"Hans Muster", "3000 Bern", "CH"},
		Currency:      "CHF",
		Amount:        "1949.75",
		Reference:     "RF89 2424 1001",
	}
}

func TestGeneratePaymentPart_GeneraPDF(t *testing.T) {
	g := pdf.NewPaymentPartGenerator("")

	out, err := g.GeneratePaymentPart(context.Background(), presentation(), qrPNG(t, "SPC\n0200\n1"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "la salida debe empezar con la cabecera PDF")
}

func TestGeneratePaymentPart_ConErroresYSinDeudor(t *testing.T) {
	p := presentation()
	p.Debtor = nil
	p.Errors = []qrbill.FieldError{{Field: "account", Code: "ID_ERR_IBAN_MISSING", Message: "IBAN fehlt"}}

	out, err := pdf.NewPaymentPartGenerator("Test").GeneratePaymentPart(context.Background(), p, qrPNG(t, "SPC"))
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestGeneratePaymentPart_SinImagenQR(t *testing.T) {
	_, err := pdf.NewPaymentPartGenerator("").GeneratePaymentPart(context.Background(), presentation(), nil)
	assert.ErrorIs(t, err, pdf.ErrEmptyQR)
}
