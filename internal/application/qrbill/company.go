package qrbill

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/qrbill-api/internal/application/dto"
	"github.com/jhoicas/qrbill-api/internal/domain"
	"github.com/jhoicas/qrbill-api/internal/domain/entity"
	"github.com/jhoicas/qrbill-api/pkg/swissqr"
)

// GetCompany devuelve la ficha de acreedor de la empresa del token.
func (uc *UseCase) GetCompany(ctx context.Context, companyID string) (*dto.CompanyResponse, error) {
	company, err := uc.company(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return companyResponse(company), nil
}

// UpdateCompany aplica los cambios de la ficha. El IBAN se guarda normalizado y
// debe ser válido para su país; la empresa debe conservar un nombre.
func (uc *UseCase) UpdateCompany(ctx context.Context, companyID string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	stored, err := uc.company(ctx, companyID)
	if err != nil {
		return nil, err
	}
	c := *stored
	company := &c

	set := func(dst *string, v *string) {
		if v != nil {
			*dst = strings.TrimSpace(*v)
		}
	}
	set(&company.Name, in.Name)
	set(&company.FirstName, in.FirstName)
	set(&company.LastName, in.LastName)
	set(&company.Address1, in.Address1)
	set(&company.PostalCode, in.PostalCode)
	set(&company.City, in.City)
	set(&company.Country, in.Country)
	set(&company.VatNumber, in.VatNumber)
	if in.CountryCode != nil {
		company.CountryCode = strings.ToUpper(strings.TrimSpace(*in.CountryCode))
	}
	if in.Iban != nil {
		company.Iban = swissqr.NormalizeIban(*in.Iban)
	}

	if company.Name == "" && company.FirstName == "" && company.LastName == "" {
		return nil, fmt.Errorf("%w: empresa sin nombre", domain.ErrInvalidInput)
	}
	if company.CountryCode != "" && !isAlpha2(company.CountryCode) {
		return nil, fmt.Errorf("%w: código de país %q", domain.ErrInvalidInput, company.CountryCode)
	}
	if company.Iban != "" && !uc.ibans.IsValidIban(company.Iban) {
		return nil, fmt.Errorf("%w: IBAN %q", domain.ErrInvalidInput, company.Iban)
	}

	company.UpdatedAt = uc.now()
	if err := uc.companies.Update(ctx, company); err != nil {
		return nil, fmt.Errorf("qrbill: actualizar empresa: %w", err)
	}
	return companyResponse(company), nil
}

func isAlpha2(code string) bool {
	if len(code) != 2 {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

func companyResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		ID:          c.ID,
		Name:        c.Name,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Address1:    c.Address1,
		PostalCode:  c.PostalCode,
		City:        c.City,
		CountryCode: c.CountryCode,
		Country:     c.Country,
		VatNumber:   c.VatNumber,
		Iban:        c.Iban,
		Status:      c.Status,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
