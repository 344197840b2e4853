// Package qrbill casos de uso de la QR-factura: ajustes por empresa, armado del
// QR-bill de una factura guardada o ad-hoc y descarga en PNG o PDF.
package qrbill

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/qrbill-api/internal/application/dto"
	"github.com/jhoicas/qrbill-api/internal/domain"
	"github.com/jhoicas/qrbill-api/internal/domain/entity"
	qrdomain "github.com/jhoicas/qrbill-api/internal/domain/qrbill"
	"github.com/jhoicas/qrbill-api/internal/domain/repository"
	"github.com/jhoicas/qrbill-api/pkg/config"
)

// Deps dependencias del caso de uso.
type Deps struct {
	Settings  repository.QRBillSettingsRepository
	Invoices  repository.InvoiceRepository
	Companies repository.CompanyRepository
	Customers repository.CustomerRepository
	Tx        InvoiceTxRunner
	Builder   *qrdomain.Builder
	Ibans     qrdomain.IbanValidator
	Renderer  qrdomain.QrImageRenderer
	PDF       PaymentPartGenerator
	Defaults  config.QRBillConfig
}

// UseCase orquesta repositorios, el ensamblador de QR-bills y los renderizadores.
type UseCase struct {
	settings  repository.QRBillSettingsRepository
	invoices  repository.InvoiceRepository
	companies repository.CompanyRepository
	customers repository.CustomerRepository
	tx        InvoiceTxRunner
	builder   *qrdomain.Builder
	ibans     qrdomain.IbanValidator
	renderer  qrdomain.QrImageRenderer
	pdf       PaymentPartGenerator
	defaults  config.QRBillConfig
	now       func() time.Time
}

// NewUseCase construye el caso de uso inyectando todas sus dependencias.
func NewUseCase(d Deps) *UseCase {
	return &UseCase{
		settings:  d.Settings,
		invoices:  d.Invoices,
		companies: d.Companies,
		customers: d.Customers,
		tx:        d.Tx,
		builder:   d.Builder,
		ibans:     d.Ibans,
		renderer:  d.Renderer,
		pdf:       d.PDF,
		defaults:  d.Defaults,
		now:       time.Now,
	}
}

// GenerateForInvoice arma el QR-bill de una factura guardada.
//
// Retorna:
//   - domain.ErrNotFound          si la factura no existe.
//   - domain.ErrForbidden         si la factura no pertenece a la empresa del token.
//   - *qrbill.FatalError          si la moneda no es CHF ni EUR.
func (uc *UseCase) GenerateForInvoice(ctx context.Context, companyID, invoiceID string) (*dto.QRBillResponse, error) {
	bill, _, err := uc.billForInvoice(ctx, companyID, invoiceID)
	if err != nil {
		return nil, err
	}
	return billResponse(bill), nil
}

// RenderPNG devuelve la imagen QR de la factura y el nombre de archivo sugerido.
func (uc *UseCase) RenderPNG(ctx context.Context, companyID, invoiceID string) ([]byte, string, error) {
	bill, inv, err := uc.billForInvoice(ctx, companyID, invoiceID)
	if err != nil {
		return nil, "", err
	}
	img, err := uc.BillPNG(bill)
	if err != nil {
		return nil, "", err
	}
	return img, FileName(inv.Number, "png"), nil
}

// RenderPDF devuelve la sección de pago en PDF. Un QR-bill con errores también
// se genera: el documento lleva el aviso "no usar para el pago".
func (uc *UseCase) RenderPDF(ctx context.Context, companyID, invoiceID string) ([]byte, string, error) {
	bill, inv, err := uc.billForInvoice(ctx, companyID, invoiceID)
	if err != nil {
		return nil, "", err
	}
	out, err := uc.BillPDF(ctx, bill)
	if err != nil {
		return nil, "", err
	}
	return out, FileName(inv.Number, "pdf"), nil
}

// Preview arma un QR-bill a partir de una factura no guardada. Sin emisor en la
// petición se usa la ficha de la empresa; sin ajustes, los guardados.
func (uc *UseCase) Preview(ctx context.Context, companyID string, req dto.QRBillPreviewRequest) (*dto.QRBillResponse, error) {
	var supplier qrdomain.PartyInfo
	if req.Invoice.Supplier == nil {
		company, err := uc.company(ctx, companyID)
		if err != nil {
			return nil, err
		}
		supplier = partyFromCompany(company)
	}

	inv, err := InvoiceFromDTO(req.Invoice, supplier)
	if err != nil {
		return nil, err
	}
	uc.defaultLocale(inv)

	settings := req.Settings
	if settings == nil {
		stored, _, err := uc.loadSettings(ctx, companyID)
		if err != nil {
			return nil, err
		}
		settings = &stored
	}
	cfg, err := ConfigFromSettings(*settings)
	if err != nil {
		return nil, err
	}

	bill, err := uc.builder.Build(cfg, inv)
	if err != nil {
		return nil, err
	}
	return billResponse(bill), nil
}

// billForInvoice carga factura, empresa, cliente, tasas y ajustes y arma el bill.
func (uc *UseCase) billForInvoice(ctx context.Context, companyID, invoiceID string) (*qrdomain.Bill, *entity.Invoice, error) {
	// ── 1. Cargar factura ─────────────────────────────────────────────────────
	inv, err := uc.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, nil, fmt.Errorf("qrbill: obtener factura: %w", err)
	}
	if inv == nil {
		return nil, nil, domain.ErrNotFound
	}
	if inv.CompanyID != companyID {
		return nil, nil, domain.ErrForbidden
	}

	// ── 2. Cargar empresa y cliente ───────────────────────────────────────────
	company, err := uc.company(ctx, companyID)
	if err != nil {
		return nil, nil, err
	}
	var customer *entity.Customer
	if inv.CustomerID != "" {
		customer, err = uc.customers.GetByID(ctx, inv.CustomerID)
		if err != nil {
			return nil, nil, fmt.Errorf("qrbill: obtener cliente: %w", err)
		}
	}

	// ── 3. Totales por tasa de IVA ────────────────────────────────────────────
	rates, err := uc.invoices.GetVATRates(ctx, invoiceID)
	if err != nil {
		return nil, nil, fmt.Errorf("qrbill: obtener tasas de IVA: %w", err)
	}

	// ── 4. Ajustes de la empresa ──────────────────────────────────────────────
	settings, _, err := uc.loadSettings(ctx, companyID)
	if err != nil {
		return nil, nil, err
	}
	cfg, err := ConfigFromSettings(settings)
	if err != nil {
		return nil, nil, err
	}

	// ── 5. Armar ──────────────────────────────────────────────────────────────
	qinv := invoiceFromEntity(inv, rates, partyFromCompany(company), partyFromCustomer(customer))
	uc.defaultLocale(qinv)
	bill, err := uc.builder.Build(cfg, qinv)
	if err != nil {
		return nil, nil, err
	}
	return bill, inv, nil
}

func (uc *UseCase) company(ctx context.Context, companyID string) (*entity.Company, error) {
	company, err := uc.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("qrbill: obtener empresa: %w", err)
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return company, nil
}

func (uc *UseCase) defaultLocale(inv *qrdomain.Invoice) {
	if inv.Locale == "" {
		inv.Locale = uc.defaults.Language
	}
}
