package qrbill

import (
	"context"

	qrdomain "github.com/jhoicas/qrbill-api/internal/domain/qrbill"
	"github.com/jhoicas/qrbill-api/internal/domain/repository"
)

// PaymentPartGenerator genera el PDF de la sección de pago a partir de la
// presentación y del PNG del QR. Lo implementa infrastructure/pdf.PaymentPartGenerator.
type PaymentPartGenerator interface {
	GeneratePaymentPart(ctx context.Context, p qrdomain.Presentation, qrPNG []byte) ([]byte, error)
}

// InvoiceTxRunner ejecuta fn dentro de una transacción con repos de clientes y facturas.
type InvoiceTxRunner interface {
	RunInvoicing(ctx context.Context, fn func(
		customers repository.CustomerRepository,
		invoices repository.InvoiceRepository,
	) error) error
}
