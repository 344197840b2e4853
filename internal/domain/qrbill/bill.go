package qrbill

import "strings"

// Valores fijos del Swiss Payments Code.
const (
	QRType          = "SPC"
	Version         = "0200"
	CodingType      = "1"
	AddressCombined = "K"
	Trailer         = "EPD"

	// PayloadFields número de líneas del payload SPC 2.0.
	PayloadFields = 34
)

type namedField struct {
	name  string
	field Field
}

// Bill es el resultado de armar un QR-bill para una factura. Es inmutable.
type Bill struct {
	class   Classification
	lang    string
	catalog *Catalog

	account   Field // IBAN formateado en bloques de 4
	reference Field // referencia formateada (vacía para NON)
	creditor  Address
	debtor    Address

	currency    string
	amount      string // siempre con dos decimales; "0.00" si no hay total
	additional  string
	billing     string
	alternative [2]string
}

// Classification clasificación usada para armar el bill.
func (b *Bill) Classification() Classification { return b.class }

// Language idioma de los mensajes y etiquetas.
func (b *Bill) Language() string { return b.lang }

func (b *Bill) Account() Field    { return b.account }
func (b *Bill) Reference() Field  { return b.reference }
func (b *Bill) Creditor() Address { return b.creditor }
func (b *Bill) Debtor() Address   { return b.debtor }

func (b *Bill) render(f Field) string { return f.Render(b.catalog, b.lang) }

func (b *Bill) wire(f Field) string { return f.RenderInline(b.catalog, b.lang) }

func (b *Bill) emittedAmount() string {
	if !b.class.AmountPresent() {
		return ""
	}
	return b.amount
}

// Fields devuelve las líneas del payload SPC en el orden del estándar.
func (b *Bill) Fields() []string {
	f := make([]string, 0, PayloadFields)
	f = append(f,
		QRType,
		Version,
		CodingType,
		stripSpaces(b.wire(b.account)),
		AddressCombined,
		b.wire(b.creditor.Name),
		b.creditor.Address1,
		b.wire(b.creditor.PostalCode)+" "+b.wire(b.creditor.City),
		"",
		"",
		b.wire(b.creditor.Country),
	)
	// acreedor final: reservado, siempre vacío
	f = append(f, "", "", "", "", "", "", "")
	f = append(f, b.emittedAmount(), b.currency)

	if b.class.DebtorPresent() {
		f = append(f,
			AddressCombined,
			b.wire(b.debtor.Name),
			b.debtor.Address1,
			b.wire(b.debtor.PostalCode)+" "+b.wire(b.debtor.City),
			"",
			"",
			b.wire(b.debtor.Country),
		)
	} else {
		f = append(f, "", "", "", "", "", "", "")
	}

	var ref string
	if b.class.Type() != WithIbanWithoutReference {
		ref = stripSpaces(b.wire(b.reference))
	}
	f = append(f,
		b.class.ReferenceType(),
		ref,
		b.additional,
		Trailer,
		b.billing,
		b.alternative[0],
		b.alternative[1],
	)
	return f
}

// Payload texto que se codifica en el QR: los campos unidos por LF, sin LF final.
func (b *Bill) Payload() string {
	return strings.Join(b.Fields(), "\n")
}

// Errors errores de campo localizados, en el orden del payload.
func (b *Bill) Errors() []FieldError {
	var out []FieldError
	for _, nf := range b.namedFields() {
		for _, k := range nf.field.Kinds {
			out = append(out, FieldError{Field: nf.name, Code: k.Code(), Message: b.catalog.Error(k, b.lang)})
		}
	}
	return out
}

// Valid indica si ningún campo tiene errores.
func (b *Bill) Valid() bool {
	for _, nf := range b.namedFields() {
		if !nf.field.Valid() {
			return false
		}
	}
	return true
}

func (b *Bill) namedFields() []namedField {
	nf := []namedField{{"account", b.account}}
	nf = append(nf, b.creditor.fields("creditor")...)
	if b.class.DebtorPresent() {
		nf = append(nf, b.debtor.fields("debtor")...)
	}
	if b.class.Type() != WithIbanWithoutReference {
		nf = append(nf, namedField{"reference", b.reference})
	}
	return nf
}

// Presentation registro para dibujar recibo y sección de pago sin volver a parsear el payload.
type Presentation struct {
	Language              string       `json:"language"`
	Texts                 Texts        `json:"texts"`
	ReferenceType         string       `json:"reference_type"`
	Account               string       `json:"account"`
	Creditor              []string     `json:"creditor"`
	Debtor                []string     `json:"debtor,omitempty"`
	Currency              string       `json:"currency"`
	Amount                string       `json:"amount"`
	Reference             string       `json:"reference,omitempty"`
	AdditionalInformation string       `json:"additional_information,omitempty"`
	BillingInformation    string       `json:"billing_information,omitempty"`
	AlternativeSchemes    []string     `json:"alternative_schemes,omitempty"`
	Errors                []FieldError `json:"errors,omitempty"`
}

// Presentation arma el registro de presentación.
func (b *Bill) Presentation() Presentation {
	p := Presentation{
		Language:              b.lang,
		Texts:                 b.catalog.Texts(b.lang),
		ReferenceType:         b.class.ReferenceType(),
		Account:               b.render(b.account),
		Creditor:              b.addressLines(b.creditor),
		Currency:              b.currency,
		Amount:                b.emittedAmount(),
		AdditionalInformation: b.additional,
		BillingInformation:    b.billing,
		Errors:                b.Errors(),
	}
	if b.class.DebtorPresent() {
		p.Debtor = b.addressLines(b.debtor)
	}
	if b.class.Type() != WithIbanWithoutReference {
		p.Reference = b.render(b.reference)
	}
	for _, av := range b.alternative {
		if av != "" {
			p.AlternativeSchemes = append(p.AlternativeSchemes, av)
		}
	}
	return p
}

// addressLines nombre, dirección (si hay), "CP localidad" y país.
func (b *Bill) addressLines(a Address) []string {
	lines := []string{b.render(a.Name)}
	if a.Address1 != "" {
		lines = append(lines, a.Address1)
	}
	return append(lines,
		b.render(a.PostalCode)+" "+b.render(a.City),
		b.render(a.Country),
	)
}

func stripSpaces(s string) string { return strings.ReplaceAll(s, " ", "") }
