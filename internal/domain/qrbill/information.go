package qrbill

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jhoicas/qrbill-api/pkg/swissqr"
)

// MaxInformationLen límite conjunto de información adicional + información de facturación.
const MaxInformationLen = 140

const ellipsis = "..."

// BillingInformation arma el mensaje estructurado Swico S1:
//
//	//S1/10/<factura>/11/<AAMMDD>/20/<cliente>/30/<IVA>/31/<AAMMDD>/32/<tasa:neto;...>/40/0:<días>
//
// El orden de las etiquetas es fijo; solo se omite una etiqueta si falta su dato.
func BillingInformation(inv *Invoice) string {
	var b strings.Builder
	b.WriteString("//S1")

	b.WriteString("/10/")
	b.WriteString(alnum(inv.Number))

	var date string
	if !inv.Date.IsZero() {
		date = inv.Date.Format("060102")
		b.WriteString("/11/")
		b.WriteString(date)
	}

	b.WriteString("/20/")
	b.WriteString(swissqr.SanitizeText(inv.Customer.Number))

	if vat := digits(inv.Supplier.VatNumber); vat != "" {
		b.WriteString("/30/")
		b.WriteString(vat)
	}

	if date != "" {
		b.WriteString("/31/")
		b.WriteString(date)
	}

	if len(inv.VATRates) > 0 {
		pairs := make([]string, 0, len(inv.VATRates))
		for _, r := range inv.VATRates {
			// String() descarta los ceros finales: 8.00 -> 8, 3.70 -> 3.7
			pairs = append(pairs, r.Rate.String()+":"+r.NetAmount.String())
		}
		b.WriteString("/32/")
		b.WriteString(strings.Join(pairs, ";"))
	}

	if inv.DueDate != nil && !inv.Date.IsZero() {
		fmt.Fprintf(&b, "/40/0:%d", daysBetween(inv.Date, *inv.DueDate))
	}

	return b.String()
}

// daysBetween diferencia absoluta en días, redondeada hacia arriba.
func daysBetween(a, b time.Time) int {
	d := b.Sub(a)
	if d < 0 {
		d = -d
	}
	return int(math.Ceil(d.Hours() / 24))
}

// FitInformation aplica el límite de 140 caracteres: si la suma lo supera se recorta
// la información adicional (terminada en "...") y la de facturación queda intacta.
// Si la de facturación no deja sitio ni para "...", la adicional se descarta y la
// de facturación se corta en el límite.
func FitInformation(additional, billing string) (string, string) {
	addLen := utf8.RuneCountInString(additional)
	billLen := utf8.RuneCountInString(billing)
	if addLen+billLen <= MaxInformationLen {
		return additional, billing
	}
	keep := MaxInformationLen - len(ellipsis) - billLen
	if keep < 0 {
		return "", truncateRunes(billing, MaxInformationLen)
	}
	return truncateRunes(additional, keep) + ellipsis, billing
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func alnum(s string) string {
	return strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return r
		}
		return -1
	}, s)
}

func digits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
