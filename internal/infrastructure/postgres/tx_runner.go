package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	appqrbill "github.com/jhoicas/qrbill-api/internal/application/qrbill"
	"github.com/jhoicas/qrbill-api/internal/domain/repository"
)

var _ appqrbill.InvoiceTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunInvoicing ejecuta fn con los repos de clientes y facturas atados a una
// transacción. Si fn devuelve error todo se revierte.
func (r *TxRunner) RunInvoicing(ctx context.Context, fn func(
	customers repository.CustomerRepository,
	invoices repository.InvoiceRepository,
) error) error {
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		return fn(NewCustomerRepository(tx), NewInvoiceRepository(tx))
	})
	if err != nil {
		return fmt.Errorf("transacción de facturación: %w", err)
	}
	return nil
}
