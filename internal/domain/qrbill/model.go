// Package qrbill: núcleo de la QR-factura suiza (Swiss Payments Code 2.0).
// Clasifica la factura, valida IBAN y direcciones, calcula la referencia y arma
// el payload SPC de campos fijos y el registro de presentación para el recibo.
package qrbill

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ReferenceScheme tipo de referencia del QR-bill.
type ReferenceScheme string

const (
	SchemeQRR  ReferenceScheme = "QRR"  // QR-IBAN + referencia QR
	SchemeSCOR ReferenceScheme = "SCOR" // IBAN + referencia del acreedor RF
	SchemeNON  ReferenceScheme = "NON"  // IBAN sin referencia
)

// ParseReferenceScheme acepta QRR, SCOR o NON sin distinguir mayúsculas.
func ParseReferenceScheme(s string) (ReferenceScheme, bool) {
	switch ReferenceScheme(strings.ToUpper(strings.TrimSpace(s))) {
	case SchemeQRR:
		return SchemeQRR, true
	case SchemeSCOR:
		return SchemeSCOR, true
	case SchemeNON:
		return SchemeNON, true
	}
	return "", false
}

// CreditorOverride datos "Pagadero a" configurados por el usuario.
// Cada campo no vacío reemplaza al derivado del emisor.
type CreditorOverride struct {
	Name       string `json:"name" yaml:"name"`
	Address1   string `json:"address1" yaml:"address1"`
	PostalCode string `json:"postal_code" yaml:"postal_code"`
	City       string `json:"city" yaml:"city"`
	Country    string `json:"country" yaml:"country"`
}

// Config parámetros del QR-bill para una corrida (se construye una vez desde los ajustes guardados).
type Config struct {
	ReferenceScheme ReferenceScheme `json:"reference_type" yaml:"reference_type"`
	EmptyAddress    bool            `json:"empty_address" yaml:"empty_address"`
	EmptyAmount     bool            `json:"empty_amount" yaml:"empty_amount"`
	Iban            string          `json:"iban" yaml:"iban"`
	QrIban          string          `json:"qr_iban" yaml:"qr_iban"`
	IbanEur         string          `json:"iban_eur" yaml:"iban_eur"`
	IsrID           string          `json:"isr_id" yaml:"isr_id"`

	PayableTo bool             `json:"payable_to" yaml:"payable_to"`
	Creditor  CreditorOverride `json:"creditor" yaml:"creditor"`

	AdditionalInformation bool `json:"additional_information" yaml:"additional_information"`
	BillingInformation    bool `json:"billing_information" yaml:"billing_information"`

	// Parámetros de procedimientos alternativos (AV1/AV2). Vacío = no se emiten.
	AlternativeScheme1 string `json:"av1" yaml:"av1"`
	AlternativeScheme2 string `json:"av2" yaml:"av2"`
}

// PartyInfo datos de emisor o cliente tal como vienen del documento.
type PartyInfo struct {
	Number       string `json:"number" yaml:"number"`
	BusinessName string `json:"business_name" yaml:"business_name"`
	FirstName    string `json:"first_name" yaml:"first_name"`
	LastName     string `json:"last_name" yaml:"last_name"`
	Address1     string `json:"address1" yaml:"address1"`
	PostalCode   string `json:"postal_code" yaml:"postal_code"`
	City         string `json:"city" yaml:"city"`
	CountryCode  string `json:"country_code" yaml:"country_code"`
	Country      string `json:"country" yaml:"country"`
	Iban         string `json:"iban" yaml:"iban"`
	VatNumber    string `json:"vat_number" yaml:"vat_number"`
	Lang         string `json:"lang" yaml:"lang"`
}

// VATRate tasa de IVA con su base imponible (neto sin IVA).
type VATRate struct {
	Rate      decimal.Decimal `json:"rate" yaml:"rate"`
	NetAmount decimal.Decimal `json:"net_amount" yaml:"net_amount"`
}

// Invoice datos de la factura necesarios para el QR-bill.
type Invoice struct {
	Number   string           `json:"number"`
	Date     time.Time        `json:"date"`
	DueDate  *time.Time       `json:"due_date,omitempty"`
	Currency string           `json:"currency"`
	Amount   *decimal.Decimal `json:"amount,omitempty"` // nil = total no informado
	VATRates []VATRate        `json:"vat_rates"`
	Notes    string           `json:"notes"` // información adicional (mensaje no estructurado)
	Locale   string           `json:"locale"`
	Supplier PartyInfo        `json:"supplier"`
	Customer PartyInfo        `json:"customer"`
}

// BillType combinación cuenta/referencia del QR-bill.
type BillType int

const (
	WithIbanWithoutReference BillType = iota
	WithQrIbanAndQrr
	WithIbanAndScor
)

// Classification es la clasificación inmutable de una factura:
// tipo de referencia y presencia de importe y deudor.
type Classification struct {
	billType      BillType
	amountPresent bool
	debtorPresent bool
}

// Classify deriva la clasificación de la configuración. Un esquema no reconocido se trata como NON.
func Classify(cfg *Config) Classification {
	c := Classification{amountPresent: !cfg.EmptyAmount, debtorPresent: !cfg.EmptyAddress}
	switch cfg.ReferenceScheme {
	case SchemeQRR:
		c.billType = WithQrIbanAndQrr
	case SchemeSCOR:
		c.billType = WithIbanAndScor
	default:
		c.billType = WithIbanWithoutReference
	}
	return c
}

func (c Classification) Type() BillType      { return c.billType }
func (c Classification) AmountPresent() bool { return c.amountPresent }
func (c Classification) DebtorPresent() bool { return c.debtorPresent }

// ReferenceType código SPC del tipo de referencia.
func (c Classification) ReferenceType() string {
	switch c.billType {
	case WithQrIbanAndQrr:
		return string(SchemeQRR)
	case WithIbanAndScor:
		return string(SchemeSCOR)
	default:
		return string(SchemeNON)
	}
}
