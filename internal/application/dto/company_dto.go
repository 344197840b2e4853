package dto

import "time"

// UpdateCompanyRequest cambios en la ficha de la empresa (acreedor). Los campos
// nil no se tocan; una cadena vacía borra el valor.
type UpdateCompanyRequest struct {
	Name        *string `json:"name,omitempty" yaml:"name"`
	FirstName   *string `json:"first_name,omitempty" yaml:"first_name"`
	LastName    *string `json:"last_name,omitempty" yaml:"last_name"`
	Address1    *string `json:"address1,omitempty" yaml:"address1"`
	PostalCode  *string `json:"postal_code,omitempty" yaml:"postal_code"`
	City        *string `json:"city,omitempty" yaml:"city"`
	CountryCode *string `json:"country_code,omitempty" yaml:"country_code"`
	Country     *string `json:"country,omitempty" yaml:"country"`
	VatNumber   *string `json:"vat_number,omitempty" yaml:"vat_number"`
	Iban        *string `json:"iban,omitempty" yaml:"iban"`
}

// CompanyResponse ficha de la empresa tal como se usa en el QR-bill.
type CompanyResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	FirstName   string    `json:"first_name,omitempty"`
	LastName    string    `json:"last_name,omitempty"`
	Address1    string    `json:"address1"`
	PostalCode  string    `json:"postal_code"`
	City        string    `json:"city"`
	CountryCode string    `json:"country_code,omitempty"`
	Country     string    `json:"country,omitempty"`
	VatNumber   string    `json:"vat_number,omitempty"`
	Iban        string    `json:"iban,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
