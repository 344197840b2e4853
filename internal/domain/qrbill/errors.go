package qrbill

import (
	"errors"
	"strings"
)

// ErrorMarker es el prefijo reservado con el que se presentan los campos con error
// en el payload y en el registro de presentación.
const ErrorMarker = "@error "

// ErrorKind identifica un error de campo no fatal. El texto se resuelve aparte
// con el Catalog según el idioma.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindQrIbanMissing
	KindQrIbanWrong
	KindIbanMissing
	KindIbanWrong
	KindCreditorReference
	KindIsrID
	KindCustomerNumber
	KindInvoiceNumber
	KindCreditorName
	KindCreditorPostalCode
	KindCreditorCity
	KindCreditorCountry
	KindCreditorCountryWrong
	KindDebtorName
	KindDebtorPostalCode
	KindDebtorCity
	KindDebtorCountry
	KindDebtorCountryWrong
)

var kindCodes = map[ErrorKind]string{
	KindQrIbanMissing:        "ID_ERR_QRIBAN",
	KindQrIbanWrong:          "ID_ERR_QRIBAN_WRONG",
	KindIbanMissing:          "ID_ERR_IBAN",
	KindIbanWrong:            "ID_ERR_IBAN_WRONG",
	KindCreditorReference:    "ID_ERR_CREDITORREFERENCE",
	KindIsrID:                "ID_ERR_ISR_ID",
	KindCustomerNumber:       "ID_ERR_CUSTOMER_NUMBER",
	KindInvoiceNumber:        "ID_ERR_INVOICE_NUMBER",
	KindCreditorName:         "ID_ERR_CREDITOR_NAME",
	KindCreditorPostalCode:   "ID_ERR_CREDITOR_POSTALCODE",
	KindCreditorCity:         "ID_ERR_CREDITOR_CITY",
	KindCreditorCountry:      "ID_ERR_CREDITOR_COUNTRY",
	KindCreditorCountryWrong: "ID_ERR_CREDITOR_COUNTRY_WRONG",
	KindDebtorName:           "ID_ERR_DEBTOR_NAME",
	KindDebtorPostalCode:     "ID_ERR_DEBTOR_POSTALCODE",
	KindDebtorCity:           "ID_ERR_DEBTOR_CITY",
	KindDebtorCountry:        "ID_ERR_DEBTOR_COUNTRY",
	KindDebtorCountryWrong:   "ID_ERR_DEBTOR_COUNTRY_WRONG",
}

// Code devuelve el identificador estable del error (ej. "ID_ERR_QRIBAN").
func (k ErrorKind) Code() string {
	if c, ok := kindCodes[k]; ok {
		return c
	}
	return ""
}

func (k ErrorKind) String() string { return k.Code() }

// Errores fatales: abortan el procesamiento de la factura.
var (
	ErrUnsupportedCurrency = errors.New("qrbill: moneda no soportada (solo CHF o EUR)")
	ErrQRCode              = errors.New("qrbill: error al generar el código QR")
)

// FatalError lleva el mensaje localizado y el código del error fatal.
// errors.Is funciona contra ErrUnsupportedCurrency y ErrQRCode.
type FatalError struct {
	Code    string
	Message string
	err     error
}

func (e *FatalError) Error() string { return e.Message + " (" + e.Code + ")" }

func (e *FatalError) Unwrap() error { return e.err }

// Field es un valor del QR-bill junto con los errores detectados al derivarlo.
// Un campo con errores se sigue emitiendo, marcado, para que se vea qué falta.
type Field struct {
	Value string
	Kinds []ErrorKind
}

// Valid indica si el campo no tiene errores.
func (f Field) Valid() bool { return len(f.Kinds) == 0 }

func ok(v string) Field { return Field{Value: v} }

func failed(kinds ...ErrorKind) Field { return Field{Kinds: kinds} }

// Render devuelve el valor, o los mensajes localizados con el marcador reservado
// (uno por línea si hay varios).
func (f Field) Render(c *Catalog, lang string) string {
	return f.render(c, lang, "\n")
}

// RenderInline es Render en una sola línea, con "; " entre mensajes. Es la forma
// que va al payload: un LF dentro de un campo desplazaría los siguientes.
func (f Field) RenderInline(c *Catalog, lang string) string {
	return f.render(c, lang, "; ")
}

func (f Field) render(c *Catalog, lang, sep string) string {
	if f.Valid() {
		return f.Value
	}
	msgs := make([]string, 0, len(f.Kinds))
	for _, k := range f.Kinds {
		msgs = append(msgs, ErrorMarker+c.Error(k, lang))
	}
	return strings.Join(msgs, sep)
}

// FieldError describe un error de campo ya localizado.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}
