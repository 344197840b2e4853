package qrbill

import (
	"strings"

	"github.com/jhoicas/qrbill-api/pkg/swissqr"
)

// Address dirección combinada (tipo "K") de acreedor o deudor.
// Address1 es opcional; el resto es obligatorio.
type Address struct {
	Name       Field
	Address1   string
	PostalCode Field
	City       Field
	Country    Field
}

// fields devuelve los campos validados con el prefijo de rol (creditor/debtor).
func (a Address) fields(role string) []namedField {
	return []namedField{
		{role + ".name", a.Name},
		{role + ".postal_code", a.PostalCode},
		{role + ".city", a.City},
		{role + ".country", a.Country},
	}
}

// partyName usa la razón social; si no existe, nombre + apellido sin espacios sobrantes.
func partyName(p PartyInfo) string {
	if name := strings.TrimSpace(p.BusinessName); name != "" {
		return name
	}
	parts := make([]string, 0, 2)
	for _, s := range []string{p.FirstName, p.LastName} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

type addressKinds struct {
	name, postalCode, city, country, countryWrong ErrorKind
}

var (
	creditorKinds = addressKinds{KindCreditorName, KindCreditorPostalCode, KindCreditorCity, KindCreditorCountry, KindCreditorCountryWrong}
	debtorKinds   = addressKinds{KindDebtorName, KindDebtorPostalCode, KindDebtorCity, KindDebtorCountry, KindDebtorCountryWrong}
)

type rawAddress struct {
	name, address1, postalCode, city, country string
}

// resolveCreditor deriva la dirección del emisor. El país prefiere el código explícito;
// si solo hay nombre de país, los sinónimos de Suiza se convierten en "CH".
// Con PayableTo activo, cada campo informado en la configuración reemplaza al derivado.
func (b *Builder) resolveCreditor(cfg *Config, supplier PartyInfo) Address {
	raw := rawAddress{
		name:       partyName(supplier),
		address1:   supplier.Address1,
		postalCode: supplier.PostalCode,
		city:       supplier.City,
	}
	switch {
	case strings.TrimSpace(supplier.CountryCode) != "":
		raw.country = strings.ToUpper(strings.TrimSpace(supplier.CountryCode))
	case strings.TrimSpace(supplier.Country) != "":
		if b.countries.IsSwissCountry(supplier.Country) {
			raw.country = "CH"
		} else {
			raw.country = strings.ToUpper(strings.TrimSpace(supplier.Country))
		}
	}

	if cfg.PayableTo {
		o := cfg.Creditor
		if o.Name != "" {
			raw.name = o.Name
		}
		if o.Address1 != "" {
			raw.address1 = o.Address1
		}
		if o.PostalCode != "" {
			raw.postalCode = o.PostalCode
		}
		if o.City != "" {
			raw.city = o.City
		}
		if o.Country != "" {
			raw.country = strings.ToUpper(strings.TrimSpace(o.Country))
		}
	}
	return b.validateAddress(raw, creditorKinds)
}

// resolveDebtor deriva la dirección del cliente.
// A diferencia del acreedor, un nombre de país no se traduce a "CH": se usa en mayúsculas.
func (b *Builder) resolveDebtor(customer PartyInfo) Address {
	raw := rawAddress{
		name:       partyName(customer),
		address1:   customer.Address1,
		postalCode: customer.PostalCode,
		city:       customer.City,
	}
	if cc := strings.TrimSpace(customer.CountryCode); cc != "" {
		raw.country = strings.ToUpper(cc)
	} else {
		raw.country = strings.ToUpper(strings.TrimSpace(customer.Country))
	}
	return b.validateAddress(raw, debtorKinds)
}

func (b *Builder) validateAddress(raw rawAddress, k addressKinds) Address {
	a := Address{Address1: swissqr.SanitizeText(raw.address1)}

	a.Name = required(swissqr.SanitizeText(raw.name), k.name)
	a.PostalCode = required(swissqr.SanitizeText(raw.postalCode), k.postalCode)
	a.City = required(swissqr.SanitizeText(raw.city), k.city)

	switch {
	case raw.country == "":
		a.Country = failed(k.country)
	case !b.countries.IsValidCountryCode(raw.country):
		a.Country = failed(k.countryWrong)
	default:
		a.Country = ok(raw.country)
	}
	return a
}

func required(v string, kind ErrorKind) Field {
	if v == "" {
		return failed(kind)
	}
	return ok(v)
}
