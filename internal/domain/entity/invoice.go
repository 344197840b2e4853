package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice representa la cabecera de una factura a cobrar con QR-bill.
type Invoice struct {
	ID         string
	CompanyID  string
	CustomerID string
	Number     string
	Date       time.Time
	DueDate    *time.Time // nil = sin condiciones de pago
	Currency   string     // CHF o EUR
	NetTotal   decimal.Decimal
	TaxTotal   decimal.Decimal
	GrandTotal decimal.Decimal // total a pagar
	Notes      string          // texto libre para la información adicional
	Locale     string          // idioma del documento
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// InvoiceVATRate total por tasa de IVA (base imponible sin IVA).
type InvoiceVATRate struct {
	InvoiceID string
	Rate      decimal.Decimal
	NetAmount decimal.Decimal
	VATAmount decimal.Decimal
}
