// Package swissqr: primitivas del Swiss Payments Code (QR-factura suiza).
// Dígitos de control módulo 10 recursivo (referencia QRR) y módulo 97-10
// según ISO 7064 (referencia RF ISO 11649 e IBAN).
package swissqr

// tabla de transición del módulo 10 recursivo (PostFinance, registros BVR).
// Cada fila es un estado; las columnas 0-9 dan el estado siguiente para ese dígito
// y la columna 10 el dígito de control si la cadena termina en ese estado.
var modulo10Table = [10][11]byte{
	{0, 9, 4, 6, 8, 2, 7, 1, 3, 5, '0'},
	{9, 4, 6, 8, 2, 7, 1, 3, 5, 0, '9'},
	{4, 6, 8, 2, 7, 1, 3, 5, 0, 9, '8'},
	{6, 8, 2, 7, 1, 3, 5, 0, 9, 4, '7'},
	{8, 2, 7, 1, 3, 5, 0, 9, 4, 6, '6'},
	{2, 7, 1, 3, 5, 0, 9, 4, 6, 8, '5'},
	{7, 1, 3, 5, 0, 9, 4, 6, 8, 2, '4'},
	{1, 3, 5, 0, 9, 4, 6, 8, 2, 7, '3'},
	{3, 5, 0, 9, 4, 6, 8, 2, 7, 1, '2'},
	{5, 0, 9, 4, 6, 8, 2, 7, 1, 3, '1'},
}

// Modulo10 devuelve el dígito de control módulo 10 recursivo de s.
// Los caracteres que no son dígitos se ignoran; la cadena vacía da "0".
func Modulo10(s string) string {
	var state byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			continue
		}
		state = modulo10Table[state][c-'0']
	}
	return string(modulo10Table[state][10])
}

// Modulo97 calcula el resto módulo 97 de una cadena de dígitos arbitrariamente larga
// sin aritmética de precisión arbitraria: el prefijo acumulado se reduce cada vez
// que alcanza 97. Los caracteres que no son dígitos se ignoran; vacío da 0.
func Modulo97(digits string) int {
	rem := 0
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c < '0' || c > '9' {
			continue
		}
		rem = rem*10 + int(c-'0')
		if rem >= 97 {
			rem %= 97
		}
	}
	return rem
}

// lettersToDigits sustituye A-Z por 10-35 (ISO 7064). Espera mayúsculas.
func lettersToDigits(s string) string {
	out := make([]byte, 0, len(s)*2)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z':
			n := int(c-'A') + 10
			out = append(out, byte('0'+n/10), byte('0'+n%10))
		default:
			out = append(out, c)
		}
	}
	return string(out)
}

func onlyDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// onlyAlnum elimina todo lo que no sea letra ASCII o dígito.
func onlyAlnum(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			out = append(out, c)
		}
	}
	return string(out)
}
