// Package pdf genera la sección de pago (recibo + parte de pago) de una
// QR-factura a partir del registro de presentación.
//
// Layout de la página A4 (la sección ocupa el tercio inferior):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  CABECERA: Acreedor + aviso "NO USAR PARA PAGO" si aplica    │
//	│                                                             │
//	│  ─ ─ ─ ─ ─ ─ ─ Separar antes de pagar ─ ─ ─ ─ ─ ─ ─ ─ ─ ─ ─  │
//	│  RECIBO          │ PARTE DE PAGO                            │
//	│  Cuenta          │ ┌──────┐  Cuenta / Pagadero a           │
//	│  Referencia      │ │  QR  │  Referencia                    │
//	│  Pagadero por    │ └──────┘  Información adicional         │
//	│  Moneda / Monto  │ Moneda / Monto    Pagadero por          │
//	│  Punto de acept. │ AV1 / AV2                                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"errors"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/linestyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/qrbill-api/internal/domain/qrbill"
)

// ErrEmptyQR se devuelve cuando no llega la imagen del QR.
var ErrEmptyQR = errors.New("pdf: imagen QR vacía")

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorBlack = &props.Color{Red: 0, Green: 0, Blue: 0}
	colorGray  = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorError = &props.Color{Red: 190, Green: 20, Blue: 20}
)

// Alturas en mm de la sección de pago (105 mm en total).
const (
	headingSize = 11
	labelSize   = 6
	valueSize   = 8
	lineHeight  = 3.5
	sectionRow  = 95
)

// ── Generator ─────────────────────────────────────────────────────────────────

// PaymentPartGenerator genera el PDF de la sección de pago usando Maroto v2.
type PaymentPartGenerator struct {
	author string
}

// NewPaymentPartGenerator construye el generador. author se escribe en los
// metadatos del documento; si está vacío se usa el nombre del acreedor.
func NewPaymentPartGenerator(author string) *PaymentPartGenerator {
	return &PaymentPartGenerator{author: author}
}

// GeneratePaymentPart genera el PDF y devuelve sus bytes. qrPNG es la imagen
// ya renderizada del payload SPC; el generador no codifica QR por su cuenta.
func (g *PaymentPartGenerator) GeneratePaymentPart(
	_ context.Context,
	p qrbill.Presentation,
	qrPNG []byte,
) ([]byte, error) {
	if len(qrPNG) == 0 {
		return nil, ErrEmptyQR
	}

	author := g.author
	if author == "" && len(p.Creditor) > 0 {
		author = p.Creditor[0]
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(5).WithRightMargin(5).
		WithTopMargin(10).WithBottomMargin(5).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: valueSize}).
		WithTitle(p.Texts.PaymentTitle, true).
		WithAuthor(author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRows(p)...)
	// Empuja la sección de pago al tercio inferior de la hoja.
	m.AddRows(row.New(spacerHeight(p)))
	m.AddRows(separatorRows(p)...)
	m.AddRows(paymentSectionRow(p, qrPNG))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRows: acreedor y, si la factura tiene errores, el aviso en rojo.
func headerRows(p qrbill.Presentation) []core.Row {
	rows := []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New(strings.Join(p.Creditor, ", "), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 1,
			}),
		)),
	}
	if len(p.Errors) == 0 {
		return rows
	}
	rows = append(rows, row.New(8).Add(col.New(12).Add(
		text.New(p.Texts.NotUseForPayment, props.Text{
			Style: fontstyle.Bold, Size: 12, Color: colorError, Top: 1,
		}),
	)))
	for _, fe := range p.Errors {
		rows = append(rows, row.New(4).Add(col.New(12).Add(
			text.New(fe.Field+": "+fe.Message, props.Text{Size: 7, Color: colorError, Left: 2}),
		)))
	}
	return rows
}

func spacerHeight(p qrbill.Presentation) float64 {
	used := 8.0
	if len(p.Errors) > 0 {
		used += 8 + 4*float64(len(p.Errors))
	}
	// 297 - márgenes - separador - sección
	free := 297.0 - 15 - 10 - sectionRow - used
	if free < 0 {
		return 0
	}
	return free
}

// separatorRows: línea de corte con la leyenda "separar antes de pagar".
func separatorRows(p qrbill.Presentation) []core.Row {
	return []core.Row{
		row.New(5).Add(col.New(12).Add(
			text.New(p.Texts.SeparateBeforePaying, props.Text{
				Size: labelSize, Align: align.Center, Color: colorGray,
			}),
		)),
		line.NewRow(5, props.Line{
			Color: colorBlack, Style: linestyle.Dashed, Thickness: 0.2,
		}),
	}
}

// paymentSectionRow: recibo (62 mm aprox.) + QR + datos de la parte de pago.
func paymentSectionRow(p qrbill.Presentation, qrPNG []byte) core.Row {
	return row.New(sectionRow).Add(
		col.New(3).Add(receiptComponents(p)...),
		col.New(3).Add(qrComponents(p, qrPNG)...),
		col.New(6).Add(paymentComponents(p)...),
	)
}

func receiptComponents(p qrbill.Presentation) []core.Component {
	t := p.Texts
	s := &stack{}
	s.heading(t.ReceiptTitle)
	s.block(t.PayableTo, append([]string{p.Account}, p.Creditor...)...)
	if p.Reference != "" {
		s.block(t.ReferenceNumber, p.Reference)
	}
	s.block(payableByLabel(p), p.Debtor...)
	s.block(t.Currency+"   "+t.Amount, p.Currency+"   "+p.Amount)
	s.top = sectionRow - 8
	s.add(t.AcceptancePoint, props.Text{
		Style: fontstyle.Bold, Size: labelSize, Align: align.Right, Right: 3,
	})
	return s.items
}

func qrComponents(p qrbill.Presentation, qrPNG []byte) []core.Component {
	t := p.Texts
	s := &stack{}
	s.heading(t.PaymentTitle)
	items := append(s.items, image.NewFromBytes(qrPNG, extension.Png, props.Rect{
		Percent: 90,
		Top:     12,
		Center:  false,
		Left:    1,
	}))
	s = &stack{top: 70}
	s.block(t.Currency+"   "+t.Amount, p.Currency+"   "+p.Amount)
	return append(items, s.items...)
}

func paymentComponents(p qrbill.Presentation) []core.Component {
	t := p.Texts
	s := &stack{top: 10}
	s.block(t.PayableTo, append([]string{p.Account}, p.Creditor...)...)
	if p.Reference != "" {
		s.block(t.ReferenceNumber, p.Reference)
	}
	if info := informationLines(p); len(info) > 0 {
		s.block(t.AdditionalInformation, info...)
	}
	s.block(payableByLabel(p), p.Debtor...)
	s.top = sectionRow - 4*lineHeight
	for _, av := range p.AlternativeSchemes {
		s.add(av, props.Text{Size: labelSize})
	}
	return s.items
}

// ── helpers ───────────────────────────────────────────────────────────────────

func payableByLabel(p qrbill.Presentation) string {
	if len(p.Debtor) == 0 {
		return p.Texts.PayableByBlank
	}
	return p.Texts.PayableBy
}

func informationLines(p qrbill.Presentation) []string {
	var lines []string
	if p.AdditionalInformation != "" {
		lines = append(lines, p.AdditionalInformation)
	}
	if p.BillingInformation != "" {
		lines = append(lines, p.BillingInformation)
	}
	return lines
}

// stack apila textos dentro de una columna llevando la posición vertical.
type stack struct {
	top   float64
	items []core.Component
}

func (s *stack) add(value string, prop props.Text) {
	prop.Top = s.top
	s.items = append(s.items, text.New(value, prop))
	s.top += lineHeight
}

func (s *stack) heading(title string) {
	s.add(title, props.Text{Style: fontstyle.Bold, Size: headingSize})
	s.top += lineHeight
}

// block escribe una etiqueta en negrita seguida de sus líneas y un espacio.
func (s *stack) block(label string, lines ...string) {
	s.add(label, props.Text{Style: fontstyle.Bold, Size: labelSize})
	for _, l := range lines {
		if l == "" {
			continue
		}
		s.add(l, props.Text{Size: valueSize})
	}
	s.top += lineHeight / 2
}
