package swissqr

import (
	"errors"
	"fmt"
	"strings"
)

// Límites de la referencia QR (QRR) y del cuerpo de la referencia RF.
const (
	MaxIsrIDLen      = 8
	MaxCustomerNoLen = 7
	MaxInvoiceNoLen  = 7
	MaxRfNumberLen   = 7
	MaxRfLen         = 25

	qrrBodyLen = 26
)

// Errores de construcción de referencias. El llamador decide cómo mostrarlos.
var (
	ErrIsrID           = errors.New("swissqr: ISR-ID inválido (máx. 8 dígitos)")
	ErrCustomerNumber  = errors.New("swissqr: número de cliente inválido (máx. 7 dígitos)")
	ErrInvoiceNumber   = errors.New("swissqr: número de factura inválido (máx. 7 dígitos)")
	ErrRfNumberTooLong = errors.New("swissqr: número demasiado largo para la referencia RF (máx. 7 caracteres)")
	ErrRfReference     = errors.New("swissqr: referencia RF inválida")
)

// QRReference construye la referencia QR de 27 dígitos:
// ISR-ID (sin guiones) + relleno de ceros + número de cliente + relleno + número de factura + "0" + dígito módulo 10.
// Devuelve la referencia agrupada 2/5/5/5/5/5/5.
func QRReference(isrID, customerNo, invoiceNo string) (string, error) {
	isrID = strings.ReplaceAll(isrID, "-", "")
	if len(isrID) > MaxIsrIDLen || !onlyDigits(isrID) {
		return "", fmt.Errorf("%w: %q", ErrIsrID, isrID)
	}
	if len(customerNo) > MaxCustomerNoLen || !onlyDigits(customerNo) {
		return "", fmt.Errorf("%w: %q", ErrCustomerNumber, customerNo)
	}
	if len(invoiceNo) > MaxInvoiceNoLen || !onlyDigits(invoiceNo) {
		return "", fmt.Errorf("%w: %q", ErrInvoiceNumber, invoiceNo)
	}

	var b strings.Builder
	b.Grow(qrrBodyLen + 1)
	b.WriteString(isrID)
	b.WriteString(strings.Repeat("0", 18-len(isrID)-len(customerNo)))
	b.WriteString(customerNo)
	b.WriteString(strings.Repeat("0", 25-b.Len()-len(invoiceNo)))
	b.WriteString(invoiceNo)
	b.WriteByte('0')
	b.WriteString(Modulo10(b.String()))

	return FormatQRReference(b.String()), nil
}

// FormatQRReference agrupa una referencia QR de 27 dígitos en bloques 2/5/5/5/5/5/5.
// Los espacios existentes se descartan antes de agrupar.
func FormatQRReference(ref string) string {
	ref = strings.ReplaceAll(ref, " ", "")
	if len(ref) <= 2 {
		return ref
	}
	parts := []string{ref[:2]}
	for i := 2; i < len(ref); i += 5 {
		end := min(i+5, len(ref))
		parts = append(parts, ref[i:end])
	}
	return strings.Join(parts, " ")
}

// ValidateQRReference comprueba longitud (27 dígitos) y dígito de control.
func ValidateQRReference(ref string) bool {
	ref = strings.ReplaceAll(ref, " ", "")
	if len(ref) != qrrBodyLen+1 || !onlyDigits(ref) {
		return false
	}
	return Modulo10(ref[:qrrBodyLen]) == ref[qrrBodyLen:]
}

// ConvertRfNumber normaliza un número de cliente o de factura para el cuerpo RF:
// se eliminan los caracteres no alfanuméricos; vacío da "0"; de 1 a 7 caracteres
// se antepone la longitud ("AB-12" -> "4AB12"); más de 7 es error.
func ConvertRfNumber(s string) (string, error) {
	s = onlyAlnum(s)
	switch {
	case s == "":
		return "0", nil
	case len(s) <= MaxRfNumberLen:
		return fmt.Sprintf("%d%s", len(s), s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrRfNumberTooLong, s)
	}
}

// RfCheckDigits calcula los dos dígitos de control ISO 11649 del cuerpo ya normalizado.
func RfCheckDigits(body string) string {
	rem := Modulo97(lettersToDigits(body + "RF00"))
	return fmt.Sprintf("%02d", 98-rem)
}

// GenerateRfReference genera la referencia del acreedor "RF" + dígitos + cuerpo,
// formateada en bloques de 4. Devuelve false si el resultado no valida
// (p. ej. cuerpo demasiado largo o con caracteres no permitidos).
func GenerateRfReference(input string) (string, bool) {
	body := strings.ToUpper(strings.ReplaceAll(input, " ", ""))
	ref := "RF" + RfCheckDigits(body) + body
	if !ValidateRfReference(ref) {
		return "", false
	}
	return FormatBlocks(onlyAlnum(ref), 4), true
}

// ValidateRfReference valida una referencia RF: se mueven los 4 primeros caracteres
// al final, se sustituyen letras por números y el resto módulo 97 debe ser 1.
// La longitud total no puede superar 25 caracteres.
func ValidateRfReference(ref string) bool {
	ref = strings.ToUpper(strings.ReplaceAll(ref, " ", ""))
	if len(ref) < 5 || len(ref) > MaxRfLen || !strings.HasPrefix(ref, "RF") {
		return false
	}
	if onlyAlnum(ref) != ref {
		return false
	}
	return Modulo97(lettersToDigits(ref[4:]+ref[:4])) == 1
}

// CreditorReference arma la referencia RF a partir del número de cliente y de factura.
// Si ambos números son demasiado largos, el error incluye los dos (errors.Join).
func CreditorReference(customerNo, invoiceNo string) (string, error) {
	cust, errCust := ConvertRfNumber(customerNo)
	inv, errInv := ConvertRfNumber(invoiceNo)
	if errCust != nil || errInv != nil {
		return "", errors.Join(wrapIf(errCust, ErrCustomerNumber), wrapIf(errInv, ErrInvoiceNumber))
	}
	ref, ok := GenerateRfReference(cust + inv)
	if !ok {
		return "", ErrRfReference
	}
	return ref, nil
}

func wrapIf(err, kind error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", kind, err)
}

// FormatBlocks agrupa s en bloques de n caracteres separados por un espacio.
// El último bloque puede ser más corto.
func FormatBlocks(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i += n {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s[i:min(i+n, len(s))])
	}
	return b.String()
}
