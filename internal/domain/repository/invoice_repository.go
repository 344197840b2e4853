package repository

import (
	"context"

	"github.com/jhoicas/qrbill-api/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para facturas y sus totales por tasa de IVA.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	CreateVATRate(ctx context.Context, rate *entity.InvoiceVATRate) error
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	// GetVATRates devuelve los totales por tasa en el orden de la tasa.
	GetVATRates(ctx context.Context, invoiceID string) ([]*entity.InvoiceVATRate, error)
}
