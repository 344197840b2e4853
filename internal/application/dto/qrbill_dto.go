package dto

import "github.com/jhoicas/qrbill-api/internal/domain/qrbill"

// QRBillSettingsDTO ajustes del QR-bill de una empresa.
// También es el bloque "settings" de los documentos YAML del CLI.
type QRBillSettingsDTO struct {
	ReferenceType string `json:"reference_type" yaml:"reference_type"` // QRR | SCOR | NON
	EmptyAddress  bool   `json:"empty_address" yaml:"empty_address"`
	EmptyAmount   bool   `json:"empty_amount" yaml:"empty_amount"`
	Iban          string `json:"iban,omitempty" yaml:"iban"`
	QrIban        string `json:"qr_iban,omitempty" yaml:"qr_iban"`
	IbanEur       string `json:"iban_eur,omitempty" yaml:"iban_eur"`
	IsrID         string `json:"isr_id,omitempty" yaml:"isr_id"`

	PayableTo bool        `json:"payable_to" yaml:"payable_to"`
	Creditor  CreditorDTO `json:"creditor" yaml:"creditor"`

	AdditionalInformation bool   `json:"additional_information" yaml:"additional_information"`
	BillingInformation    bool   `json:"billing_information" yaml:"billing_information"`
	AV1                   string `json:"av1,omitempty" yaml:"av1"`
	AV2                   string `json:"av2,omitempty" yaml:"av2"`
}

// CreditorDTO datos "Pagadero a" que reemplazan a los de la empresa.
type CreditorDTO struct {
	Name       string `json:"name,omitempty" yaml:"name"`
	Address1   string `json:"address1,omitempty" yaml:"address1"`
	PostalCode string `json:"postal_code,omitempty" yaml:"postal_code"`
	City       string `json:"city,omitempty" yaml:"city"`
	Country    string `json:"country,omitempty" yaml:"country"`
}

// QRBillSettingsResponse respuesta de GET/PUT /api/qrbill/settings.
// Source vale "stored" si la empresa tiene ajustes guardados o "default" si no.
type QRBillSettingsResponse struct {
	CompanyID string `json:"company_id"`
	Source    string `json:"source"`
	QRBillSettingsDTO
}

// PartyDTO emisor o cliente de la factura.
type PartyDTO struct {
	Number       string `json:"number,omitempty" yaml:"number"`
	BusinessName string `json:"business_name,omitempty" yaml:"business_name"`
	FirstName    string `json:"first_name,omitempty" yaml:"first_name"`
	LastName     string `json:"last_name,omitempty" yaml:"last_name"`
	Address1     string `json:"address1,omitempty" yaml:"address1"`
	PostalCode   string `json:"postal_code,omitempty" yaml:"postal_code"`
	City         string `json:"city,omitempty" yaml:"city"`
	CountryCode  string `json:"country_code,omitempty" yaml:"country_code"`
	Country      string `json:"country,omitempty" yaml:"country"`
	Iban         string `json:"iban,omitempty" yaml:"iban"`
	VatNumber    string `json:"vat_number,omitempty" yaml:"vat_number"`
	Lang         string `json:"lang,omitempty" yaml:"lang"`
}

// VATRateDTO tasa de IVA y base imponible como texto decimal ("8.10", "1803.65").
type VATRateDTO struct {
	Rate      string `json:"rate" yaml:"rate"`
	NetAmount string `json:"net_amount" yaml:"net_amount"`
}

// InvoiceDTO factura ad-hoc para la vista previa y el CLI.
// Fechas en formato 2006-01-02; Amount vacío significa total no informado.
type InvoiceDTO struct {
	Number   string       `json:"number" yaml:"number"`
	Date     string       `json:"date" yaml:"date"`
	DueDate  string       `json:"due_date,omitempty" yaml:"due_date"`
	Currency string       `json:"currency" yaml:"currency"`
	Amount   string       `json:"amount,omitempty" yaml:"amount"`
	VATRates []VATRateDTO `json:"vat_rates,omitempty" yaml:"vat_rates"`
	Notes    string       `json:"notes,omitempty" yaml:"notes"`
	Locale   string       `json:"locale,omitempty" yaml:"locale"`
	Customer PartyDTO     `json:"customer" yaml:"customer"`
	// Supplier nil = se usa la ficha de la empresa del token.
	Supplier *PartyDTO `json:"supplier,omitempty" yaml:"supplier"`
}

// QRBillPreviewRequest body de POST /api/qrbill/preview y documento YAML del CLI.
// Settings nil = ajustes guardados de la empresa (o los valores por defecto).
type QRBillPreviewRequest struct {
	Settings *QRBillSettingsDTO `json:"settings,omitempty" yaml:"settings"`
	Invoice  InvoiceDTO         `json:"invoice" yaml:"invoice"`
}

// QRBillResponse QR-bill armado: payload SPC y registro de presentación.
type QRBillResponse struct {
	Valid        bool                `json:"valid"`
	Payload      string              `json:"payload"`
	Presentation qrbill.Presentation `json:"presentation"`
}

// RfReferenceRequest body de POST /api/qrbill/references/rf.
type RfReferenceRequest struct {
	CustomerNumber string `json:"customer_number"`
	InvoiceNumber  string `json:"invoice_number"`
}

// QRReferenceRequest body de POST /api/qrbill/references/qrr.
// IsrID vacío = el de los ajustes de la empresa.
type QRReferenceRequest struct {
	IsrID          string `json:"isr_id,omitempty"`
	CustomerNumber string `json:"customer_number"`
	InvoiceNumber  string `json:"invoice_number"`
}

// ReferenceResponse referencia generada, formateada en bloques.
type ReferenceResponse struct {
	Scheme    string `json:"scheme"`
	Reference string `json:"reference"`
}

// CreateInvoiceRequest body de POST /api/invoices.
// Con CustomerID se usa un cliente existente; si va vacío se crea el de Invoice.Customer.
type CreateInvoiceRequest struct {
	CustomerID string `json:"customer_id,omitempty"`
	InvoiceDTO
}

// InvoiceResponse factura guardada.
type InvoiceResponse struct {
	ID         string `json:"id"`
	CompanyID  string `json:"company_id"`
	CustomerID string `json:"customer_id"`
	Number     string `json:"number"`
	Currency   string `json:"currency"`
	NetTotal   string `json:"net_total"`
	TaxTotal   string `json:"tax_total"`
	GrandTotal string `json:"grand_total"`
}

// CustomerResponse cliente de la empresa con sus datos de deudor.
type CustomerResponse struct {
	ID    string   `json:"id"`
	Party PartyDTO `json:"party"`
}
