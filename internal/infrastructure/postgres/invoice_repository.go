package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/qrbill-api/internal/domain"
	"github.com/jhoicas/qrbill-api/internal/domain/entity"
	"github.com/jhoicas/qrbill-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `id, company_id, customer_id, number, date, due_date, currency,
	net_total, tax_total, grand_total, notes, locale, created_at, updated_at`

// Create persiste la cabecera de la factura.
func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	const q = `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, now(), now())`
	_, err := r.q.Exec(ctx, q,
		inv.ID, inv.CompanyID, inv.CustomerID, inv.Number, inv.Date, inv.DueDate, inv.Currency,
		inv.NetTotal, inv.TaxTotal, inv.GrandTotal, inv.Notes, inv.Locale,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: número de factura %s", domain.ErrDuplicate, inv.Number)
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// CreateVATRate persiste el total de una tasa de IVA.
func (r *InvoiceRepo) CreateVATRate(ctx context.Context, rate *entity.InvoiceVATRate) error {
	const q = `
		INSERT INTO invoice_vat_rates (invoice_id, rate, net_amount, vat_amount)
		VALUES ($1, $2, $3, $4)`
	if _, err := r.q.Exec(ctx, q, rate.InvoiceID, rate.Rate, rate.NetAmount, rate.VATAmount); err != nil {
		return fmt.Errorf("insert invoice_vat_rate: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera. Devuelve nil, nil si no existe.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	const q = `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`
	var inv entity.Invoice
	err := r.q.QueryRow(ctx, q, id).Scan(
		&inv.ID, &inv.CompanyID, &inv.CustomerID, &inv.Number, &inv.Date, &inv.DueDate, &inv.Currency,
		&inv.NetTotal, &inv.TaxTotal, &inv.GrandTotal, &inv.Notes, &inv.Locale, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// GetVATRates devuelve los totales por tasa ordenados por tasa descendente.
func (r *InvoiceRepo) GetVATRates(ctx context.Context, invoiceID string) ([]*entity.InvoiceVATRate, error) {
	const q = `
		SELECT invoice_id, rate, net_amount, vat_amount
		FROM invoice_vat_rates WHERE invoice_id = $1
		ORDER BY rate DESC`
	rows, err := r.q.Query(ctx, q, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list invoice_vat_rates: %w", err)
	}
	defer rows.Close()

	var list []*entity.InvoiceVATRate
	for rows.Next() {
		var v entity.InvoiceVATRate
		if err := rows.Scan(&v.InvoiceID, &v.Rate, &v.NetAmount, &v.VATAmount); err != nil {
			return nil, fmt.Errorf("scan invoice_vat_rate: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
