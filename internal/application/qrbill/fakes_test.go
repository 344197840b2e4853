package qrbill_test

import (
	"context"
	"maps"
	"time"

	"github.com/shopspring/decimal"

	appqrbill "github.com/jhoicas/qrbill-api/internal/application/qrbill"
	"github.com/jhoicas/qrbill-api/internal/domain"
	"github.com/jhoicas/qrbill-api/internal/domain/entity"
	qrdomain "github.com/jhoicas/qrbill-api/internal/domain/qrbill"
	"github.com/jhoicas/qrbill-api/internal/domain/repository"
	"github.com/jhoicas/qrbill-api/internal/infrastructure/validation"
	"github.com/jhoicas/qrbill-api/pkg/config"
)

const (
	companyID  = "00000000-0000-0000-0000-0000000000c1"
	otherID    = "00000000-0000-0000-0000-0000000000c2"
	invoiceID  = "00000000-0000-0000-0000-0000000000f1"
	customerID = "00000000-0000-0000-0000-0000000000a1"
	testIban   = "CH93 0076 2011 6238 5295 7"
	testQrIban = "CH44 3199 9123 0008 8901 2"
)

// ── Repositorios en memoria ───────────────────────────────────────────────────

type settingsRepo struct {
	byCompany map[string]*entity.QRBillSettings
	upserts   int
}

func (r *settingsRepo) GetByCompanyID(_ context.Context, id string) (*entity.QRBillSettings, error) {
	s, ok := r.byCompany[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *settingsRepo) Upsert(_ context.Context, s *entity.QRBillSettings) error {
	cp := *s
	r.byCompany[s.CompanyID] = &cp
	r.upserts++
	return nil
}

type invoiceRepo struct {
	invoices map[string]*entity.Invoice
	rates    map[string][]*entity.InvoiceVATRate
}

func (r *invoiceRepo) Create(_ context.Context, inv *entity.Invoice) error {
	for _, other := range r.invoices {
		if other.CompanyID == inv.CompanyID && other.Number == inv.Number {
			return domain.ErrDuplicate
		}
	}
	r.invoices[inv.ID] = inv
	return nil
}

func (r *invoiceRepo) CreateVATRate(_ context.Context, rate *entity.InvoiceVATRate) error {
	r.rates[rate.InvoiceID] = append(r.rates[rate.InvoiceID], rate)
	return nil
}

func (r *invoiceRepo) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	return r.invoices[id], nil
}

func (r *invoiceRepo) GetVATRates(_ context.Context, id string) ([]*entity.InvoiceVATRate, error) {
	return r.rates[id], nil
}

type companyRepo struct{ companies map[string]*entity.Company }

func (r *companyRepo) Create(_ context.Context, c *entity.Company) error {
	r.companies[c.ID] = c
	return nil
}

func (r *companyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	return r.companies[id], nil
}

func (r *companyRepo) Update(_ context.Context, c *entity.Company) error {
	r.companies[c.ID] = c
	return nil
}

type customerRepo struct{ customers map[string]*entity.Customer }

func (r *customerRepo) Create(_ context.Context, c *entity.Customer) error {
	r.customers[c.ID] = c
	return nil
}

func (r *customerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	return r.customers[id], nil
}

func (r *customerRepo) ListByCompany(_ context.Context, companyID string, _, _ int) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range r.customers {
		if c.CompanyID == companyID {
			out = append(out, c)
		}
	}
	return out, nil
}

// txRunner ejecuta fn sobre los repositorios en memoria; si fn falla descarta
// lo escrito restaurando una copia previa de los mapas.
type txRunner struct {
	customers *customerRepo
	invoices  *invoiceRepo
}

func (t *txRunner) RunInvoicing(_ context.Context, fn func(repository.CustomerRepository, repository.InvoiceRepository) error) error {
	customers := maps.Clone(t.customers.customers)
	invoices := maps.Clone(t.invoices.invoices)
	rates := maps.Clone(t.invoices.rates)
	if err := fn(t.customers, t.invoices); err != nil {
		t.customers.customers = customers
		t.invoices.invoices = invoices
		t.invoices.rates = rates
		return err
	}
	return nil
}

// ── Renderizadores falsos ─────────────────────────────────────────────────────

type fakeRenderer struct {
	text string
	err  error
}

func (f *fakeRenderer) Render(text string, _ qrdomain.QrOptions) ([]byte, error) {
	f.text = text
	if f.err != nil {
		return nil, f.err
	}
	return []byte("PNG"), nil
}

type fakePDF struct {
	presentation qrdomain.Presentation
	qr           []byte
	calls        int
}

func (f *fakePDF) GeneratePaymentPart(_ context.Context, p qrdomain.Presentation, qrPNG []byte) ([]byte, error) {
	f.presentation = p
	f.qr = qrPNG
	f.calls++
	return []byte("%PDF-1.3"), nil
}

// ── Fixture ───────────────────────────────────────────────────────────────────

type fixture struct {
	uc        *appqrbill.UseCase
	settings  *settingsRepo
	invoices  *invoiceRepo
	customers *customerRepo
	companies *companyRepo
	renderer  *fakeRenderer
	pdf       *fakePDF
	deps      appqrbill.Deps
}

// withRenderer reconstruye el caso de uso con otro renderizador de QR.
func (f *fixture) withRenderer(r qrdomain.QrImageRenderer) *fixture {
	f.deps.Renderer = r
	f.uc = appqrbill.NewUseCase(f.deps)
	return f
}

func newFixture() *fixture {
	due := time.Date(2024, 4, 14, 0, 0, 0, 0, time.UTC)
	f := &fixture{
		settings: &settingsRepo{byCompany: map[string]*entity.QRBillSettings{}},
		renderer: &fakeRenderer{},
		pdf:      &fakePDF{},
	}
	invoices := &invoiceRepo{
		invoices: map[string]*entity.Invoice{
			invoiceID: {
				ID: invoiceID, CompanyID: companyID, CustomerID: customerID,
				Number: "1001", Date: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), DueDate: &due,
				Currency: "CHF", GrandTotal: decimal.RequireFromString("1949.75"),
				Notes: "Auftrag vom 15. März",
			},
		},
		rates: map[string][]*entity.InvoiceVATRate{
			invoiceID: {{InvoiceID: invoiceID, Rate: decimal.RequireFromString("8.10"), NetAmount: decimal.RequireFromString("1803.65")}},
		},
	}
	companies := &companyRepo{companies: map[string]*entity.Company{
		companyID: {
			ID: companyID, Name: "Muster AG", Address1: "Bahnhofstrasse 1",
			PostalCode: "8001", City: "Zürich", Country: "Schweiz", VatNumber: "CHE-123.456.789 MWST",
		},
	}}
	customers := &customerRepo{customers: map[string]*entity.Customer{
		customerID: {
			ID: customerID, CompanyID: companyID, Number: "42", FirstName: "Hans", LastName: "Muster",
			Address1: "Marktgasse 5", PostalCode: "3000", City: "Bern", CountryCode: "CH",
		},
	}}

	f.invoices, f.customers, f.companies = invoices, customers, companies

	ibans := validation.NewIbanValidator()
	builder := qrdomain.NewBuilder(ibans, validation.NewCountryValidator())
	f.deps = appqrbill.Deps{
		Settings:  f.settings,
		Invoices:  invoices,
		Companies: companies,
		Customers: customers,
		Tx:        &txRunner{customers: customers, invoices: invoices},
		Builder:   builder,
		Ibans:     ibans,
		Renderer:  f.renderer,
		PDF:       f.pdf,
		Defaults:  config.QRBillConfig{Language: "de", ReferenceType: "SCOR", Iban: testIban, IsrID: "210000"},
	}
	f.uc = appqrbill.NewUseCase(f.deps)
	return f
}
