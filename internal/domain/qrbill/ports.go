package qrbill

// IbanValidator verificación estructural del IBAN y detección de QR-IBAN.
type IbanValidator interface {
	IsValidIban(iban string) bool
	IsQrIban(iban string) bool
}

// CountryValidator valida códigos ISO 3166-1 alfa-2 y reconoce nombres de Suiza.
type CountryValidator interface {
	IsValidCountryCode(code string) bool
	IsSwissCountry(name string) bool
}

// QrOptions parámetros del símbolo QR exigidos por el estándar.
type QrOptions struct {
	ErrorCorrectionLevel string
	BinaryCodingVersion  int
	Border               int
}

// DefaultQrOptions nivel de corrección M, versión máxima 25, sin borde.
var DefaultQrOptions = QrOptions{ErrorCorrectionLevel: "M", BinaryCodingVersion: 25, Border: 0}

// QrImageRenderer convierte el payload en una imagen.
type QrImageRenderer interface {
	Render(text string, opts QrOptions) ([]byte, error)
}

// DiagnosticSink recibe avisos no fatales (un aviso por cada campo con error).
type DiagnosticSink interface {
	Report(message, code string)
}
