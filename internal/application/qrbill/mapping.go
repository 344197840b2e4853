package qrbill

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/qrbill-api/internal/application/dto"
	"github.com/jhoicas/qrbill-api/internal/domain"
	"github.com/jhoicas/qrbill-api/internal/domain/entity"
	qrdomain "github.com/jhoicas/qrbill-api/internal/domain/qrbill"
	"github.com/jhoicas/qrbill-api/pkg/config"
)

const dateLayout = "2006-01-02"

// DefaultSettings ajustes a usar cuando la empresa no tiene configuración guardada.
func DefaultSettings(def config.QRBillConfig) dto.QRBillSettingsDTO {
	return dto.QRBillSettingsDTO{
		ReferenceType:         def.ReferenceType,
		Iban:                  def.Iban,
		QrIban:                def.QrIban,
		IbanEur:               def.IbanEur,
		IsrID:                 def.IsrID,
		AdditionalInformation: true,
		BillingInformation:    true,
	}
}

// ConfigFromSettings arma la configuración de una corrida.
// Un tipo de referencia desconocido es entrada inválida.
func ConfigFromSettings(s dto.QRBillSettingsDTO) (*qrdomain.Config, error) {
	scheme, ok := qrdomain.ParseReferenceScheme(s.ReferenceType)
	if !ok {
		return nil, fmt.Errorf("%w: tipo de referencia %q", domain.ErrInvalidInput, s.ReferenceType)
	}
	return &qrdomain.Config{
		ReferenceScheme: scheme,
		EmptyAddress:    s.EmptyAddress,
		EmptyAmount:     s.EmptyAmount,
		Iban:            s.Iban,
		QrIban:          s.QrIban,
		IbanEur:         s.IbanEur,
		IsrID:           s.IsrID,
		PayableTo:       s.PayableTo,
		Creditor: qrdomain.CreditorOverride{
			Name:       s.Creditor.Name,
			Address1:   s.Creditor.Address1,
			PostalCode: s.Creditor.PostalCode,
			City:       s.Creditor.City,
			Country:    s.Creditor.Country,
		},
		AdditionalInformation: s.AdditionalInformation,
		BillingInformation:    s.BillingInformation,
		AlternativeScheme1:    s.AV1,
		AlternativeScheme2:    s.AV2,
	}, nil
}

func settingsToDTO(s *entity.QRBillSettings) dto.QRBillSettingsDTO {
	return dto.QRBillSettingsDTO{
		ReferenceType: s.ReferenceType,
		EmptyAddress:  s.EmptyAddress,
		EmptyAmount:   s.EmptyAmount,
		Iban:          s.Iban,
		QrIban:        s.QrIban,
		IbanEur:       s.IbanEur,
		IsrID:         s.IsrID,
		PayableTo:     s.PayableTo,
		Creditor: dto.CreditorDTO{
			Name:       s.CreditorName,
			Address1:   s.CreditorAddress1,
			PostalCode: s.CreditorPostalCode,
			City:       s.CreditorCity,
			Country:    s.CreditorCountry,
		},
		AdditionalInformation: s.AdditionalInformation,
		BillingInformation:    s.BillingInformation,
		AV1:                   s.AV1,
		AV2:                   s.AV2,
	}
}

func applySettings(s *entity.QRBillSettings, in dto.QRBillSettingsDTO) {
	s.ReferenceType = in.ReferenceType
	s.EmptyAddress = in.EmptyAddress
	s.EmptyAmount = in.EmptyAmount
	s.Iban = strings.TrimSpace(in.Iban)
	s.QrIban = strings.TrimSpace(in.QrIban)
	s.IbanEur = strings.TrimSpace(in.IbanEur)
	s.IsrID = strings.TrimSpace(in.IsrID)
	s.PayableTo = in.PayableTo
	s.CreditorName = strings.TrimSpace(in.Creditor.Name)
	s.CreditorAddress1 = strings.TrimSpace(in.Creditor.Address1)
	s.CreditorPostalCode = strings.TrimSpace(in.Creditor.PostalCode)
	s.CreditorCity = strings.TrimSpace(in.Creditor.City)
	s.CreditorCountry = strings.TrimSpace(in.Creditor.Country)
	s.AdditionalInformation = in.AdditionalInformation
	s.BillingInformation = in.BillingInformation
	s.AV1 = strings.TrimSpace(in.AV1)
	s.AV2 = strings.TrimSpace(in.AV2)
}

func partyFromCompany(c *entity.Company) qrdomain.PartyInfo {
	return qrdomain.PartyInfo{
		BusinessName: c.Name,
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		Address1:     c.Address1,
		PostalCode:   c.PostalCode,
		City:         c.City,
		CountryCode:  c.CountryCode,
		Country:      c.Country,
		Iban:         c.Iban,
		VatNumber:    c.VatNumber,
	}
}

func partyFromCustomer(c *entity.Customer) qrdomain.PartyInfo {
	if c == nil {
		return qrdomain.PartyInfo{}
	}
	return qrdomain.PartyInfo{
		Number:       c.Number,
		BusinessName: c.BusinessName,
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		Address1:     c.Address1,
		PostalCode:   c.PostalCode,
		City:         c.City,
		CountryCode:  c.CountryCode,
		Country:      c.Country,
		Lang:         c.Lang,
	}
}

func partyFromDTO(p dto.PartyDTO) qrdomain.PartyInfo {
	return qrdomain.PartyInfo{
		Number:       p.Number,
		BusinessName: p.BusinessName,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Address1:     p.Address1,
		PostalCode:   p.PostalCode,
		City:         p.City,
		CountryCode:  p.CountryCode,
		Country:      p.Country,
		Iban:         p.Iban,
		VatNumber:    p.VatNumber,
		Lang:         p.Lang,
	}
}

func partyToDTO(p qrdomain.PartyInfo) dto.PartyDTO {
	return dto.PartyDTO{
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
	}
}

func invoiceFromEntity(inv *entity.Invoice, rates []*entity.InvoiceVATRate, supplier, customer qrdomain.PartyInfo) *qrdomain.Invoice {
	amount := inv.GrandTotal
	out := &qrdomain.Invoice{
		Number:   inv.Number,
		Date:     inv.Date,
		DueDate:  inv.DueDate,
		Currency: inv.Currency,
		Amount:   &amount,
		Notes:    inv.Notes,
		Locale:   inv.Locale,
		Supplier: supplier,
		Customer: customer,
	}
	for _, r := range rates {
		out.VATRates = append(out.VATRates, qrdomain.VATRate{Rate: r.Rate, NetAmount: r.NetAmount})
	}
	return out
}

// InvoiceFromDTO convierte una factura ad-hoc. supplier se usa cuando el
// documento no trae emisor propio.
func InvoiceFromDTO(in dto.InvoiceDTO, supplier qrdomain.PartyInfo) (*qrdomain.Invoice, error) {
	date, err := time.Parse(dateLayout, strings.TrimSpace(in.Date))
	if err != nil {
		return nil, fmt.Errorf("%w: fecha %q", domain.ErrInvalidInput, in.Date)
	}
	out := &qrdomain.Invoice{
		Number:   in.Number,
		Date:     date,
		Currency: in.Currency,
		Notes:    in.Notes,
		Locale:   in.Locale,
		Supplier: supplier,
		Customer: partyFromDTO(in.Customer),
	}
	if in.Supplier != nil {
		out.Supplier = partyFromDTO(*in.Supplier)
	}
	if s := strings.TrimSpace(in.DueDate); s != "" {
		due, err := time.Parse(dateLayout, s)
		if err != nil {
			return nil, fmt.Errorf("%w: vencimiento %q", domain.ErrInvalidInput, in.DueDate)
		}
		out.DueDate = &due
	}
	if s := strings.TrimSpace(in.Amount); s != "" {
		amount, err := decimal.NewFromString(s)
		if err != nil {
			return nil, fmt.Errorf("%w: importe %q", domain.ErrInvalidInput, in.Amount)
		}
		out.Amount = &amount
	}
	for _, r := range in.VATRates {
		rate, err := decimal.NewFromString(strings.TrimSpace(r.Rate))
		if err != nil {
			return nil, fmt.Errorf("%w: tasa de IVA %q", domain.ErrInvalidInput, r.Rate)
		}
		net, err := decimal.NewFromString(strings.TrimSpace(r.NetAmount))
		if err != nil {
			return nil, fmt.Errorf("%w: base imponible %q", domain.ErrInvalidInput, r.NetAmount)
		}
		out.VATRates = append(out.VATRates, qrdomain.VATRate{Rate: rate, NetAmount: net})
	}
	return out, nil
}

func billResponse(b *qrdomain.Bill) *dto.QRBillResponse {
	return &dto.QRBillResponse{
		Valid:        b.Valid(),
		Payload:      b.Payload(),
		Presentation: b.Presentation(),
	}
}
