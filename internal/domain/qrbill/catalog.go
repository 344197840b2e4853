package qrbill

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Idiomas soportados por el QR-bill. El primero es el idioma por defecto.
const (
	LangEnglish = "en"
	LangGerman  = "de"
	LangFrench  = "fr"
	LangItalian = "it"
)

var supportedTags = []language.Tag{language.English, language.German, language.French, language.Italian}

var supportedLangs = []string{LangEnglish, LangGerman, LangFrench, LangItalian}

// claves de mensajes de error compartidas entre acreedor y deudor.
const (
	msgCurrency     = "ID_ERR_CURRENCY"
	msgQRCode       = "ID_ERR_QRCODE"
	msgName         = "ID_ERR_NAME"
	msgPostalCode   = "ID_ERR_POSTALCODE"
	msgCity         = "ID_ERR_CITY"
	msgCountry      = "ID_ERR_COUNTRY"
	msgCountryWrong = "ID_ERR_COUNTRY_WRONG"
)

var kindMessage = map[ErrorKind]string{
	KindQrIbanMissing:        "ID_ERR_QRIBAN",
	KindQrIbanWrong:          "ID_ERR_QRIBAN_WRONG",
	KindIbanMissing:          "ID_ERR_IBAN",
	KindIbanWrong:            "ID_ERR_IBAN_WRONG",
	KindCreditorReference:    "ID_ERR_CREDITORREFERENCE",
	KindIsrID:                "ID_ERR_ISR_ID",
	KindCustomerNumber:       "ID_ERR_CUSTOMER_NUMBER",
	KindInvoiceNumber:        "ID_ERR_INVOICE_NUMBER",
	KindCreditorName:         msgName,
	KindCreditorPostalCode:   msgPostalCode,
	KindCreditorCity:         msgCity,
	KindCreditorCountry:      msgCountry,
	KindCreditorCountryWrong: msgCountryWrong,
	KindDebtorName:           msgName,
	KindDebtorPostalCode:     msgPostalCode,
	KindDebtorCity:           msgCity,
	KindDebtorCountry:        msgCountry,
	KindDebtorCountryWrong:   msgCountryWrong,
}

// messages: textos de error por idioma. ID_ERR_QRCODE recibe el detalle del renderizador.
var messages = map[string]map[string]string{
	LangEnglish: {
		msgCurrency:                "QrCode printing is only available for invoices in CHF or EUR",
		msgQRCode:                  "Error creating QrCode: %s",
		"ID_ERR_QRIBAN":            "Missing QR-IBAN",
		"ID_ERR_QRIBAN_WRONG":      "Incorrect QR-IBAN",
		"ID_ERR_IBAN":              "Missing IBAN",
		"ID_ERR_IBAN_WRONG":        "Incorrect IBAN",
		"ID_ERR_CREDITORREFERENCE": "Creditor reference number not valid",
		"ID_ERR_ISR_ID":            "ISR-ID not valid, max 8 digits",
		"ID_ERR_CUSTOMER_NUMBER":   "Customer Number too long, max 7 digits",
		"ID_ERR_INVOICE_NUMBER":    "Invoice Number too long, max 7 digits",
		msgName:                    "Address: missing name/business",
		msgPostalCode:              "Address: missing ZIP code",
		msgCity:                    "Address: missing locality",
		msgCountry:                 "Address: missing country code",
		msgCountryWrong:            "Address: Incorrect country code",
	},
	LangGerman: {
		msgCurrency:                "QR-Code-Druck ist nur für Rechnungen in CHF oder EUR verfügbar",
		msgQRCode:                  "Fehler beim Erstellen des QR-Codes: %s",
		"ID_ERR_QRIBAN":            "QR-IBAN fehlt",
		"ID_ERR_QRIBAN_WRONG":      "Falscher QR-IBAN",
		"ID_ERR_IBAN":              "IBAN fehlt",
		"ID_ERR_IBAN_WRONG":        "Falscher IBAN",
		"ID_ERR_CREDITORREFERENCE": "Referenznummer Begünstigter ungültig",
		"ID_ERR_ISR_ID":            "ESR-ID ungültig, max. 8 Ziffern",
		"ID_ERR_CUSTOMER_NUMBER":   "Kundennummer zu lang, max. 7 Ziffern",
		"ID_ERR_INVOICE_NUMBER":    "Rechnungsnummer zu lang, max. 7 Ziffern",
		msgName:                    "Adresse: Name/Firma fehlt",
		msgPostalCode:              "Adresse: PLZ fehlt",
		msgCity:                    "Adresse: Ort fehlt",
		msgCountry:                 "Adresse: Ländercode fehlt",
		msgCountryWrong:            "Adresse: Falscher Ländercode",
	},
	LangFrench: {
		msgCurrency:                "L'impression du QrCode n'est disponible que pour les factures en CHF ou EUR",
		msgQRCode:                  "Erreur lors de la création du QrCode : %s",
		"ID_ERR_QRIBAN":            "QR-IBAN est manquant",
		"ID_ERR_QRIBAN_WRONG":      "QR-IBAN est incorrect",
		"ID_ERR_IBAN":              "IBAN est manquant",
		"ID_ERR_IBAN_WRONG":        "IBAN est incorrect",
		"ID_ERR_CREDITORREFERENCE": "Numéro de référence du créancier non valide",
		"ID_ERR_ISR_ID":            "ID BVR non valide, 8 chiffres maximum",
		"ID_ERR_CUSTOMER_NUMBER":   "Numéro client trop long, 7 chiffres maximum",
		"ID_ERR_INVOICE_NUMBER":    "Numéro facture trop long, 7 chiffres maximum",
		msgName:                    "Adresse: nom/société est manquant",
		msgPostalCode:              "Adresse: code postal NPA est manquant",
		msgCity:                    "Adresse: localité est manquante",
		msgCountry:                 "Adresse: code du pays est manquant",
		msgCountryWrong:            "Adresse: code du pays est incorrect",
	},
	LangItalian: {
		msgCurrency:                "La stampa del QrCode è disponibile solamente per fatture in CHF o EUR",
		msgQRCode:                  "Errore nella creazione del QrCode: %s",
		"ID_ERR_QRIBAN":            "QR-IBAN mancante",
		"ID_ERR_QRIBAN_WRONG":      "QR-IBAN non corretto",
		"ID_ERR_IBAN":              "IBAN mancante",
		"ID_ERR_IBAN_WRONG":        "IBAN non corretto",
		"ID_ERR_CREDITORREFERENCE": "Numero di riferimento creditore non valido",
		"ID_ERR_ISR_ID":            "ID PVR non valido, max 8 cifre",
		"ID_ERR_CUSTOMER_NUMBER":   "Numero cliente troppo lungo, max 7 cifre",
		"ID_ERR_INVOICE_NUMBER":    "Numero fattura troppo lungo, max 7 cifre",
		msgName:                    "Indirizzo: nome/società mancante",
		msgPostalCode:              "Indirizzo: CAP mancante",
		msgCity:                    "Indirizzo: località mancante",
		msgCountry:                 "Indirizzo: codice nazione mancante",
		msgCountryWrong:            "Indirizzo: codice nazione non corretto",
	},
}

// Texts son las etiquetas de la sección de pago y del recibo.
type Texts struct {
	ReceiptTitle          string `json:"receipt_title"`
	PaymentTitle          string `json:"payment_title"`
	PayableTo             string `json:"payable_to"`
	PayableBy             string `json:"payable_by"`
	PayableByBlank        string `json:"payable_by_blank"`
	ReferenceNumber       string `json:"reference_number"`
	AdditionalInformation string `json:"additional_information"`
	Currency              string `json:"currency"`
	Amount                string `json:"amount"`
	AcceptancePoint       string `json:"acceptance_point"`
	NameAV1               string `json:"name_av1"`
	NameAV2               string `json:"name_av2"`
	SeparateBeforePaying  string `json:"separate_before_paying"`
	InFavourOf            string `json:"in_favour_of"`
	NotUseForPayment      string `json:"not_use_for_payment"`
}

var texts = map[string]Texts{
	LangEnglish: {
		ReceiptTitle: "Receipt", PaymentTitle: "Payment part",
		PayableTo: "Account / Payable to", PayableBy: "Payable by", PayableByBlank: "Payable by (name/address)",
		ReferenceNumber: "Reference", AdditionalInformation: "Additional information",
		Currency: "Currency", Amount: "Amount", AcceptancePoint: "Acceptance point",
		NameAV1: "Name AV1", NameAV2: "Name AV2",
		SeparateBeforePaying: "Separate before paying in", InFavourOf: "In favour of",
		NotUseForPayment: "DO NOT USE FOR PAYMENT",
	},
	LangGerman: {
		ReceiptTitle: "Empfangsschein", PaymentTitle: "Zahlteil",
		PayableTo: "Konto / Zahlbar an", PayableBy: "Zahlbar durch", PayableByBlank: "Zahlbar durch (Name/Adresse)",
		ReferenceNumber: "Referenz", AdditionalInformation: "Zusätzliche Informationen",
		Currency: "Währung", Amount: "Betrag", AcceptancePoint: "Annahmestelle",
		NameAV1: "Name AV1", NameAV2: "Name AV2",
		SeparateBeforePaying: "Vor der Einzahlung abzutrennen", InFavourOf: "Zugunsten",
		NotUseForPayment: "NICHT ZUR ZAHLUNG VERWENDEN",
	},
	LangFrench: {
		ReceiptTitle: "Récépissé", PaymentTitle: "Section paiement",
		PayableTo: "Compte / Payable à", PayableBy: "Payable par", PayableByBlank: "Payable par (nom/adresse)",
		ReferenceNumber: "Référence", AdditionalInformation: "Informations additionnelles",
		Currency: "Monnaie", Amount: "Montant", AcceptancePoint: "Point de dépôt",
		NameAV1: "Nom AV1", NameAV2: "Nom AV2",
		SeparateBeforePaying: "A détacher avant le versement", InFavourOf: "En faveur de",
		NotUseForPayment: "NE PAS UTILISER POUR LE PAIEMENT",
	},
	LangItalian: {
		ReceiptTitle: "Ricevuta", PaymentTitle: "Sezione pagamento",
		PayableTo: "Conto / Pagabile a", PayableBy: "Pagabile da", PayableByBlank: "Pagabile da (nome/indirizzo)",
		ReferenceNumber: "Riferimento", AdditionalInformation: "Informazioni aggiuntive",
		Currency: "Valuta", Amount: "Importo", AcceptancePoint: "Punto di accettazione",
		NameAV1: "Nome AV1", NameAV2: "Nome AV2",
		SeparateBeforePaying: "Da staccare prima del versamento", InFavourOf: "A favore di",
		NotUseForPayment: "NON UTILIZZARE PER IL PAGAMENTO",
	},
}

// Catalog resuelve el idioma y traduce mensajes de error y etiquetas.
// Es inmutable tras NewCatalog y seguro para uso concurrente.
type Catalog struct {
	builder  *catalog.Builder
	matcher  language.Matcher
	printers map[string]*message.Printer
}

// NewCatalog carga los mensajes en un catalog de golang.org/x/text.
func NewCatalog() *Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for i, lang := range supportedLangs {
		for key, msg := range messages[lang] {
			if err := b.SetString(supportedTags[i], key, msg); err != nil {
				panic(fmt.Sprintf("qrbill: mensaje %s/%s inválido: %v", lang, key, err))
			}
		}
	}
	c := &Catalog{
		builder:  b,
		matcher:  language.NewMatcher(supportedTags),
		printers: make(map[string]*message.Printer, len(supportedLangs)),
	}
	for i, lang := range supportedLangs {
		c.printers[lang] = message.NewPrinter(supportedTags[i], message.Catalog(b))
	}
	return c
}

// Language elige el idioma del documento: el primer candidato reconocido
// (ej. idioma del cliente, luego el locale del documento); si ninguno, inglés.
// "de-CH" o "fr_CH" se resuelven a su idioma base.
func (c *Catalog) Language(candidates ...string) string {
	for _, s := range candidates {
		if s == "" {
			continue
		}
		tag, err := language.Parse(s)
		if err != nil {
			continue
		}
		_, idx, conf := c.matcher.Match(tag)
		if conf == language.No {
			continue
		}
		return supportedLangs[idx]
	}
	return LangEnglish
}

func (c *Catalog) printer(lang string) *message.Printer {
	if p, ok := c.printers[lang]; ok {
		return p
	}
	return c.printers[LangEnglish]
}

// Error devuelve el mensaje localizado de un error de campo (sin el marcador).
func (c *Catalog) Error(k ErrorKind, lang string) string {
	key, ok := kindMessage[k]
	if !ok {
		return k.Code()
	}
	return c.printer(lang).Sprintf(key)
}

// CurrencyError mensaje localizado de moneda no soportada.
func (c *Catalog) CurrencyError(lang string) string {
	return c.printer(lang).Sprintf(msgCurrency)
}

// QRCodeError mensaje localizado de fallo del renderizador, con su detalle.
func (c *Catalog) QRCodeError(lang, detail string) string {
	return c.printer(lang).Sprintf(msgQRCode, detail)
}

// Texts devuelve las etiquetas del idioma indicado (inglés si no se soporta).
func (c *Catalog) Texts(lang string) Texts {
	if t, ok := texts[lang]; ok {
		return t
	}
	return texts[LangEnglish]
}
