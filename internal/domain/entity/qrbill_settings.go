package entity

import "time"

// QRBillSettings ajustes del QR-bill guardados por empresa.
// A partir de ellos se arma la configuración de cada corrida.
type QRBillSettings struct {
	ID            string
	CompanyID     string
	ReferenceType string // QRR, SCOR o NON
	EmptyAddress  bool
	EmptyAmount   bool
	Iban          string
	QrIban        string
	IbanEur       string
	IsrID         string

	PayableTo          bool
	CreditorName       string
	CreditorAddress1   string
	CreditorPostalCode string
	CreditorCity       string
	CreditorCountry    string

	AdditionalInformation bool
	BillingInformation    bool
	AV1                   string
	AV2                   string

	CreatedAt time.Time
	UpdatedAt time.Time
}
