package qrbill_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/qrbill-api/internal/domain/qrbill"
)

func TestCatalog_Language(t *testing.T) {
	c := qrbill.NewCatalog()
	assert.Equal(t, "de", c.Language("de"))
	assert.Equal(t, "de", c.Language("", "de-CH"), "Sin idioma del cliente se usa el locale")
	assert.Equal(t, "fr", c.Language("fr", "de"), "El idioma del cliente tiene prioridad")
	assert.Equal(t, "it", c.Language("it_CH"))
	assert.Equal(t, "en", c.Language(""), "Por defecto inglés")
	assert.Equal(t, "en", c.Language("ja", "xx-invalid-!"), "Idiomas no soportados caen a inglés")
}

func TestCatalog_ErroresPorIdioma(t *testing.T) {
	c := qrbill.NewCatalog()
	assert.Equal(t, "Missing QR-IBAN", c.Error(qrbill.KindQrIbanMissing, "en"))
	assert.Equal(t, "QR-IBAN fehlt", c.Error(qrbill.KindQrIbanMissing, "de"))
	assert.Equal(t, "QR-IBAN est manquant", c.Error(qrbill.KindQrIbanMissing, "fr"))
	assert.Equal(t, "QR-IBAN mancante", c.Error(qrbill.KindQrIbanMissing, "it"))
	assert.Equal(t, "Referenznummer Begünstigter ungültig", c.Error(qrbill.KindCreditorReference, "de"))
	assert.Equal(t, "Missing IBAN", c.Error(qrbill.KindIbanMissing, "rm"), "Idioma desconocido usa inglés")
}

func TestCatalog_AcreedorYDeudorCompartenMensaje(t *testing.T) {
	c := qrbill.NewCatalog()
	assert.Equal(t, c.Error(qrbill.KindCreditorCity, "fr"), c.Error(qrbill.KindDebtorCity, "fr"))
	assert.Equal(t, "Adresse: localité est manquante", c.Error(qrbill.KindDebtorCity, "fr"))
	assert.NotEqual(t, qrbill.KindCreditorCity.Code(), qrbill.KindDebtorCity.Code())
}

func TestCatalog_MensajeQRCode(t *testing.T) {
	c := qrbill.NewCatalog()
	assert.Equal(t, "Errore nella creazione del QrCode: overflow", c.QRCodeError("it", "overflow"))
	assert.Equal(t, "La stampa del QrCode è disponibile solamente per fatture in CHF o EUR", c.CurrencyError("it"))
}

func TestCatalog_Textos(t *testing.T) {
	c := qrbill.NewCatalog()
	assert.Equal(t, "Empfangsschein", c.Texts("de").ReceiptTitle)
	assert.Equal(t, "Section paiement", c.Texts("fr").PaymentTitle)
	assert.Equal(t, "Punto di accettazione", c.Texts("it").AcceptancePoint)
	assert.Equal(t, "Receipt", c.Texts("xx").ReceiptTitle)
}

func TestField_Render(t *testing.T) {
	c := qrbill.NewCatalog()
	assert.Equal(t, "valor", qrbill.Field{Value: "valor"}.Render(c, "en"))
	f := qrbill.Field{Kinds: []qrbill.ErrorKind{qrbill.KindCustomerNumber, qrbill.KindInvoiceNumber}}
	assert.Equal(t,
		"@error Kundennummer zu lang, max. 7 Ziffern\n@error Rechnungsnummer zu lang, max. 7 Ziffern",
		f.Render(c, "de"))
	assert.False(t, f.Valid())
}

func TestClassify(t *testing.T) {
	c := qrbill.Classify(&qrbill.Config{ReferenceScheme: qrbill.SchemeQRR, EmptyAmount: true})
	assert.Equal(t, qrbill.WithQrIbanAndQrr, c.Type())
	assert.False(t, c.AmountPresent())
	assert.True(t, c.DebtorPresent())
	assert.Equal(t, "QRR", c.ReferenceType())

	c = qrbill.Classify(&qrbill.Config{ReferenceScheme: qrbill.SchemeSCOR, EmptyAddress: true})
	assert.Equal(t, qrbill.WithIbanAndScor, c.Type())
	assert.True(t, c.AmountPresent())
	assert.False(t, c.DebtorPresent())

	c = qrbill.Classify(&qrbill.Config{})
	assert.Equal(t, qrbill.WithIbanWithoutReference, c.Type(), "Esquema vacío se trata como NON")
	assert.Equal(t, "NON", c.ReferenceType())
}

func TestParseReferenceScheme(t *testing.T) {
	s, ok := qrbill.ParseReferenceScheme(" scor ")
	assert.True(t, ok)
	assert.Equal(t, qrbill.SchemeSCOR, s)
	_, ok = qrbill.ParseReferenceScheme("ISR")
	assert.False(t, ok)
}
