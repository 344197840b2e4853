package entity

import "time"

// Company representa la empresa emisora (acreedor del QR-bill). Multi-tenant.
type Company struct {
	ID          string
	Name        string // razón social
	FirstName   string // para personas físicas sin razón social
	LastName    string
	Address1    string
	PostalCode  string
	City        string
	CountryCode string // ISO 3166-1 alfa-2; si está vacío se usa Country
	Country     string // nombre libre del país
	VatNumber   string // ej. CHE-123.456.789 MWST
	Iban        string // IBAN de la ficha de la empresa (se usa si los ajustes no definen uno)
	Status      string // active, suspended, inactive
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
