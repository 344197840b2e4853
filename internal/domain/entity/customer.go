package entity

import "time"

// Customer representa un cliente de la empresa (deudor del QR-bill).
type Customer struct {
	ID           string
	CompanyID    string
	Number       string // número de cliente; entra en la referencia QRR/RF
	BusinessName string
	FirstName    string
	LastName     string
	Address1     string
	PostalCode   string
	City         string
	CountryCode  string
	Country      string
	Lang         string // idioma preferido (de, fr, it, en)
	Email        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
