package swissqr

import (
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

// SanitizeText prepara texto libre para el payload SPC (tipo de codificación 1,
// UTF-8 restringido al juego latino): normaliza a NFC, convierte saltos de línea
// y tabuladores en espacios y sustituye por '.' cualquier carácter fuera de Latin-1.
func SanitizeText(s string) string {
	if s == "" {
		return s
	}
	s = norm.NFC.String(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\n' || r == '\r' || r == '\t':
			b.WriteByte(' ')
		case r < 0x20 || r == 0x7f:
			// caracteres de control: se descartan
		default:
			if _, ok := charmap.ISO8859_1.EncodeRune(r); ok {
				b.WriteRune(r)
			} else {
				b.WriteByte('.')
			}
		}
	}
	return strings.TrimSpace(b.String())
}
