package qrbill

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/qrbill-api/pkg/swissqr"
)

const zeroAmount = "0.00"

// Builder arma QR-bills. No guarda estado entre facturas: puede usarse desde varias goroutines.
type Builder struct {
	ibans     IbanValidator
	countries CountryValidator
	catalog   *Catalog
	sink      DiagnosticSink
}

// Option configura el Builder.
type Option func(*Builder)

// WithDiagnosticSink recibe un aviso por cada campo con error y por cada error fatal.
func WithDiagnosticSink(s DiagnosticSink) Option {
	return func(b *Builder) { b.sink = s }
}

// WithCatalog reemplaza el catálogo de mensajes por defecto.
func WithCatalog(c *Catalog) Option {
	return func(b *Builder) { b.catalog = c }
}

// NewBuilder crea el servicio con los validadores inyectados.
func NewBuilder(ibans IbanValidator, countries CountryValidator, opts ...Option) *Builder {
	b := &Builder{ibans: ibans, countries: countries}
	for _, opt := range opts {
		opt(b)
	}
	if b.catalog == nil {
		b.catalog = NewCatalog()
	}
	return b
}

// Catalog catálogo de mensajes en uso.
func (b *Builder) Catalog() *Catalog { return b.catalog }

// Build valida y arma el QR-bill de una factura.
// Solo devuelve error en los casos fatales (moneda distinta de CHF/EUR); los errores de
// campo quedan dentro del Bill y el payload se arma igualmente.
func (b *Builder) Build(cfg *Config, inv *Invoice) (*Bill, error) {
	if cfg == nil || inv == nil {
		return nil, fmt.Errorf("qrbill: configuración y factura son obligatorias")
	}
	lang := b.catalog.Language(inv.Customer.Lang, inv.Locale)

	// ── 1. Moneda ──────────────────────────────────────────────────────────────
	currency := strings.ToUpper(strings.TrimSpace(inv.Currency))
	if currency != "CHF" && currency != "EUR" {
		return nil, b.fatal(msgCurrency, b.catalog.CurrencyError(lang), ErrUnsupportedCurrency)
	}

	// ── 2. Clasificación (una vez, inmutable) ──────────────────────────────────
	class := Classify(cfg)

	bill := &Bill{
		class:    class,
		lang:     lang,
		catalog:  b.catalog,
		currency: currency,
		amount:   formatAmount(inv.Amount),
	}

	// ── 3. Cuenta y referencia ─────────────────────────────────────────────────
	bill.account = b.resolveAccount(class, cfg, inv)
	bill.reference = resolveReference(class, cfg, inv)

	// ── 4. Información adicional y de facturación ──────────────────────────────
	texts := b.catalog.Texts(lang)
	switch {
	case bill.amount == zeroAmount:
		if !cfg.EmptyAmount {
			bill.additional = texts.NotUseForPayment
		}
	case !class.DebtorPresent():
		if cfg.BillingInformation {
			bill.billing = BillingInformation(inv)
		}
	default:
		if cfg.AdditionalInformation {
			bill.additional = swissqr.SanitizeText(inv.Notes)
		}
		if cfg.BillingInformation {
			bill.billing = BillingInformation(inv)
		}
	}
	bill.additional, bill.billing = FitInformation(bill.additional, bill.billing)

	// ── 5. Acreedor y deudor ───────────────────────────────────────────────────
	bill.creditor = b.resolveCreditor(cfg, inv.Supplier)
	if class.DebtorPresent() {
		bill.debtor = b.resolveDebtor(inv.Customer)
	}

	// ── 6. Procedimientos alternativos ─────────────────────────────────────────
	if bill.amount != zeroAmount {
		if av := strings.TrimSpace(cfg.AlternativeScheme1); av != "" {
			bill.alternative[0] = texts.NameAV1 + ": " + av
		}
		if av := strings.TrimSpace(cfg.AlternativeScheme2); av != "" {
			bill.alternative[1] = texts.NameAV2 + ": " + av
		}
	}

	if b.sink != nil {
		for _, fe := range bill.Errors() {
			b.sink.Report(fe.Message, fe.Code)
		}
	}
	return bill, nil
}

// RenderImage genera la imagen QR del bill. Un error del renderizador es fatal.
func (b *Builder) RenderImage(bill *Bill, r QrImageRenderer) ([]byte, error) {
	img, err := r.Render(bill.Payload(), DefaultQrOptions)
	if err != nil {
		return nil, b.fatal(msgQRCode, b.catalog.QRCodeError(bill.lang, err.Error()), fmt.Errorf("%w: %w", ErrQRCode, err))
	}
	return img, nil
}

func (b *Builder) fatal(code, msg string, err error) error {
	if b.sink != nil {
		b.sink.Report(msg, code)
	}
	return &FatalError{Code: code, Message: msg, err: err}
}

// resolveAccount elige y valida la cuenta según el tipo de referencia.
// QRR exige un QR-IBAN. SCOR y NON exigen un IBAN que no sea QR-IBAN; si hay IBAN
// y IBAN EUR configurados, el resultado del IBAN EUR prevalece.
// Sin IBAN configurado se usa el del emisor, si lo tiene.
func (b *Builder) resolveAccount(class Classification, cfg *Config, inv *Invoice) Field {
	if class.Type() == WithQrIbanAndQrr {
		if strings.TrimSpace(cfg.QrIban) == "" {
			return failed(KindQrIbanMissing)
		}
		iban := swissqr.NormalizeIban(cfg.QrIban)
		if !b.ibans.IsValidIban(iban) || !b.ibans.IsQrIban(iban) {
			return failed(KindQrIbanWrong)
		}
		return ok(swissqr.FormatIban(iban))
	}

	iban := strings.TrimSpace(cfg.Iban)
	if iban == "" {
		iban = strings.TrimSpace(inv.Supplier.Iban)
	}
	ibanEur := strings.TrimSpace(cfg.IbanEur)
	if iban == "" && ibanEur == "" {
		return failed(KindIbanMissing)
	}
	var account Field
	for _, candidate := range []string{iban, ibanEur} {
		if candidate != "" {
			account = b.plainIban(candidate)
		}
	}
	return account
}

func (b *Builder) plainIban(raw string) Field {
	iban := swissqr.NormalizeIban(raw)
	if !b.ibans.IsValidIban(iban) || b.ibans.IsQrIban(iban) {
		return failed(KindIbanWrong)
	}
	return ok(swissqr.FormatIban(iban))
}

// resolveReference calcula la referencia para QRR o SCOR; NON no lleva referencia.
func resolveReference(class Classification, cfg *Config, inv *Invoice) Field {
	switch class.Type() {
	case WithQrIbanAndQrr:
		ref, err := swissqr.QRReference(cfg.IsrID, inv.Customer.Number, alnum(inv.Number))
		if err != nil {
			switch {
			case errors.Is(err, swissqr.ErrIsrID):
				return failed(KindIsrID)
			case errors.Is(err, swissqr.ErrCustomerNumber):
				return failed(KindCustomerNumber)
			default:
				return failed(KindInvoiceNumber)
			}
		}
		return ok(ref)

	case WithIbanAndScor:
		ref, err := swissqr.CreditorReference(inv.Customer.Number, inv.Number)
		if err != nil {
			var kinds []ErrorKind
			if errors.Is(err, swissqr.ErrCustomerNumber) {
				kinds = append(kinds, KindCustomerNumber)
			}
			if errors.Is(err, swissqr.ErrInvoiceNumber) {
				kinds = append(kinds, KindInvoiceNumber)
			}
			if len(kinds) == 0 {
				kinds = append(kinds, KindCreditorReference)
			}
			return failed(kinds...)
		}
		return ok(ref)
	}
	return ok("")
}

// formatAmount total a pagar con dos decimales; ausente o negativo se trata como 0.00.
func formatAmount(d *decimal.Decimal) string {
	if d == nil || d.IsNegative() {
		return zeroAmount
	}
	return d.Round(2).StringFixed(2)
}
