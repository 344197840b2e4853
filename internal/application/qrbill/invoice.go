package qrbill

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/qrbill-api/internal/application/dto"
	"github.com/jhoicas/qrbill-api/internal/domain"
	"github.com/jhoicas/qrbill-api/internal/domain/entity"
	qrdomain "github.com/jhoicas/qrbill-api/internal/domain/qrbill"
	"github.com/jhoicas/qrbill-api/internal/domain/repository"
)

var hundred = decimal.NewFromInt(100)

// CreateInvoice guarda una factura (y su cliente si es nuevo) en una sola transacción.
// Los totales se calculan desde las tasas de IVA; Amount, si viene, fija el total a pagar.
func (uc *UseCase) CreateInvoice(ctx context.Context, companyID string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if companyID == "" || strings.TrimSpace(in.Number) == "" {
		return nil, domain.ErrInvalidInput
	}
	if uc.tx == nil {
		return nil, fmt.Errorf("qrbill: alta de facturas no disponible")
	}
	parsed, err := InvoiceFromDTO(in.InvoiceDTO, qrdomain.PartyInfo{})
	if err != nil {
		return nil, err
	}
	c := parsed.Customer
	if strings.TrimSpace(in.CustomerID) == "" && c.BusinessName == "" && c.FirstName == "" && c.LastName == "" {
		return nil, fmt.Errorf("%w: cliente sin nombre", domain.ErrInvalidInput)
	}
	currency := strings.ToUpper(strings.TrimSpace(parsed.Currency))
	if currency != "CHF" && currency != "EUR" {
		return nil, fmt.Errorf("%w: moneda %q", domain.ErrInvalidInput, parsed.Currency)
	}

	inv := &entity.Invoice{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Number:    strings.TrimSpace(parsed.Number),
		Date:      parsed.Date,
		DueDate:   parsed.DueDate,
		Currency:  currency,
		Notes:     parsed.Notes,
		Locale:    parsed.Locale,
		CreatedAt: uc.now(),
	}
	inv.UpdatedAt = inv.CreatedAt
	rates := make([]*entity.InvoiceVATRate, 0, len(parsed.VATRates))
	for _, r := range parsed.VATRates {
		vat := r.NetAmount.Mul(r.Rate).Div(hundred).Round(2)
		rates = append(rates, &entity.InvoiceVATRate{
			InvoiceID: inv.ID, Rate: r.Rate, NetAmount: r.NetAmount, VATAmount: vat,
		})
		inv.NetTotal = inv.NetTotal.Add(r.NetAmount)
		inv.TaxTotal = inv.TaxTotal.Add(vat)
	}
	inv.GrandTotal = inv.NetTotal.Add(inv.TaxTotal)
	if parsed.Amount != nil {
		inv.GrandTotal = *parsed.Amount
	}

	err = uc.tx.RunInvoicing(ctx, func(customers repository.CustomerRepository, invoices repository.InvoiceRepository) error {
		// ── 1. Cliente existente o nuevo ──────────────────────────────────────
		if id := strings.TrimSpace(in.CustomerID); id != "" {
			c, err := customers.GetByID(ctx, id)
			if err != nil {
				return fmt.Errorf("qrbill: obtener cliente: %w", err)
			}
			if c == nil {
				return domain.ErrNotFound
			}
			if c.CompanyID != companyID {
				return domain.ErrForbidden
			}
			inv.CustomerID = c.ID
		} else {
			c := uc.customerFromParty(companyID, parsed.Customer)
			if err := customers.Create(ctx, c); err != nil {
				return err
			}
			inv.CustomerID = c.ID
		}

		// ── 2. Cabecera y totales por tasa ────────────────────────────────────
		if err := invoices.Create(ctx, inv); err != nil {
			return err
		}
		for _, r := range rates {
			if err := invoices.CreateVATRate(ctx, r); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.InvoiceResponse{
		ID:         inv.ID,
		CompanyID:  inv.CompanyID,
		CustomerID: inv.CustomerID,
		Number:     inv.Number,
		Currency:   inv.Currency,
		NetTotal:   inv.NetTotal.StringFixed(2),
		TaxTotal:   inv.TaxTotal.StringFixed(2),
		GrandTotal: inv.GrandTotal.StringFixed(2),
	}, nil
}

func (uc *UseCase) customerFromParty(companyID string, p qrdomain.PartyInfo) *entity.Customer {
	now := uc.now()
	return &entity.Customer{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		Number:       p.Number,
		BusinessName: p.BusinessName,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Address1:     p.Address1,
		PostalCode:   p.PostalCode,
		City:         p.City,
		CountryCode:  p.CountryCode,
		Country:      p.Country,
		Lang:         p.Lang,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// ListCustomers lista los clientes (deudores) de la empresa. limit <= 0 usa 50.
func (uc *UseCase) ListCustomers(ctx context.Context, companyID string, limit, offset int) ([]dto.CustomerResponse, error) {
	if companyID == "" {
		return nil, domain.ErrInvalidInput
	}
	page := dto.PageRequest{Limit: limit, Offset: offset}
	page.DefaultPage()
	list, err := uc.customers.ListByCompany(ctx, companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("qrbill: listar clientes: %w", err)
	}
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CustomerResponse{ID: c.ID, Party: partyToDTO(partyFromCustomer(c))})
	}
	return out, nil
}
