package swissqr

import (
	"strings"
	"unicode"
)

// NormalizeIban elimina todo espacio en blanco y pasa a mayúsculas.
func NormalizeIban(iban string) string {
	return strings.ToUpper(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, iban))
}

// FormatIban presenta el IBAN normalizado en bloques de 4 caracteres
// ("CH9300762011623852957" -> "CH93 0076 2011 6238 5295 7").
func FormatIban(iban string) string {
	return FormatBlocks(NormalizeIban(iban), 4)
}

// IbanChecksumOK aplica la verificación ISO 13616: los 4 primeros caracteres van al final,
// las letras se sustituyen por números y el resto módulo 97 debe ser 1.
func IbanChecksumOK(iban string) bool {
	iban = NormalizeIban(iban)
	if len(iban) < 5 || onlyAlnum(iban) != iban {
		return false
	}
	return Modulo97(lettersToDigits(iban[4:]+iban[:4])) == 1
}
