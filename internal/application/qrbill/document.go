package qrbill

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/qrbill-api/internal/application/dto"
	"github.com/jhoicas/qrbill-api/internal/domain"
	qrdomain "github.com/jhoicas/qrbill-api/internal/domain/qrbill"
)

// Document arma el QR-bill de un documento autocontenido (CLI, lotes).
// No toca repositorios: el emisor debe venir en el documento y, sin bloque
// settings, se usan los valores por defecto de la configuración.
func (uc *UseCase) Document(req dto.QRBillPreviewRequest) (*qrdomain.Bill, error) {
	if req.Invoice.Supplier == nil {
		return nil, fmt.Errorf("%w: el documento no trae emisor (supplier)", domain.ErrInvalidInput)
	}
	inv, err := InvoiceFromDTO(req.Invoice, qrdomain.PartyInfo{})
	if err != nil {
		return nil, err
	}
	uc.defaultLocale(inv)

	settings := DefaultSettings(uc.defaults)
	if req.Settings != nil {
		settings = *req.Settings
	}
	cfg, err := ConfigFromSettings(settings)
	if err != nil {
		return nil, err
	}
	return uc.builder.Build(cfg, inv)
}

// DocumentResponse payload y presentación de un documento autocontenido.
func (uc *UseCase) DocumentResponse(req dto.QRBillPreviewRequest) (*dto.QRBillResponse, error) {
	bill, err := uc.Document(req)
	if err != nil {
		return nil, err
	}
	return billResponse(bill), nil
}

// DocumentPNG imagen QR de un documento autocontenido.
func (uc *UseCase) DocumentPNG(req dto.QRBillPreviewRequest) ([]byte, error) {
	bill, err := uc.Document(req)
	if err != nil {
		return nil, err
	}
	return uc.BillPNG(bill)
}

// DocumentPDF sección de pago de un documento autocontenido.
func (uc *UseCase) DocumentPDF(ctx context.Context, req dto.QRBillPreviewRequest) ([]byte, error) {
	bill, err := uc.Document(req)
	if err != nil {
		return nil, err
	}
	return uc.BillPDF(ctx, bill)
}

// BillPNG renderiza la imagen QR de un bill ya armado.
func (uc *UseCase) BillPNG(bill *qrdomain.Bill) ([]byte, error) {
	return uc.builder.RenderImage(bill, uc.renderer)
}

// BillPDF genera la sección de pago de un bill ya armado. El QR del PDF es la
// misma imagen que BillPNG, así que un fallo del renderizador también es fatal aquí.
func (uc *UseCase) BillPDF(ctx context.Context, bill *qrdomain.Bill) ([]byte, error) {
	img, err := uc.BillPNG(bill)
	if err != nil {
		return nil, err
	}
	out, err := uc.pdf.GeneratePaymentPart(ctx, bill.Presentation(), img)
	if err != nil {
		return nil, fmt.Errorf("qrbill: generar pdf: %w", err)
	}
	return out, nil
}

// FileName nombre sugerido para la salida de una factura ("qrbill_1001.png").
// Los caracteres fuera de [A-Za-z0-9._-] se reemplazan por "_".
func FileName(invoiceNumber, ext string) string {
	clean := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			return r
		}
		return '_'
	}, strings.TrimSpace(invoiceNumber))
	if clean == "" {
		clean = "sin_numero"
	}
	return fmt.Sprintf("qrbill_%s.%s", clean, ext)
}
