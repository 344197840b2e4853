package http

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/qrbill-api/internal/application/dto"
)

// QRBillService casos de uso que expone el handler.
// Lo implementa *application/qrbill.UseCase.
type QRBillService interface {
	GenerateForInvoice(ctx context.Context, companyID, invoiceID string) (*dto.QRBillResponse, error)
	RenderPNG(ctx context.Context, companyID, invoiceID string) ([]byte, string, error)
	RenderPDF(ctx context.Context, companyID, invoiceID string) ([]byte, string, error)
	Preview(ctx context.Context, companyID string, req dto.QRBillPreviewRequest) (*dto.QRBillResponse, error)
	GetSettings(ctx context.Context, companyID string) (*dto.QRBillSettingsResponse, error)
	SaveSettings(ctx context.Context, companyID string, in dto.QRBillSettingsDTO) (*dto.QRBillSettingsResponse, error)
	CreditorReference(req dto.RfReferenceRequest) (*dto.ReferenceResponse, error)
	QRReference(ctx context.Context, companyID string, req dto.QRReferenceRequest) (*dto.ReferenceResponse, error)
	CreateInvoice(ctx context.Context, companyID string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error)
	ListCustomers(ctx context.Context, companyID string, limit, offset int) ([]dto.CustomerResponse, error)
	GetCompany(ctx context.Context, companyID string) (*dto.CompanyResponse, error)
	UpdateCompany(ctx context.Context, companyID string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error)
}

// QRBillHandler maneja las peticiones HTTP de la QR-factura (protegido).
type QRBillHandler struct {
	svc QRBillService
}

// NewQRBillHandler construye el handler.
func NewQRBillHandler(svc QRBillService) *QRBillHandler {
	return &QRBillHandler{svc: svc}
}

// Generate devuelve payload y registro de presentación de una factura.
// GET /api/invoices/:id/qrbill
func (h *QRBillHandler) Generate(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	res, err := h.svc.GenerateForInvoice(c.Context(), companyID, c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}

// PNG descarga la imagen QR.
// GET /api/invoices/:id/qrbill.png
func (h *QRBillHandler) PNG(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	img, filename, err := h.svc.RenderPNG(c.Context(), companyID, c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", filename))
	return c.Send(img)
}

// PDF descarga la sección de pago.
// GET /api/invoices/:id/qrbill.pdf
func (h *QRBillHandler) PDF(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	out, filename, err := h.svc.RenderPDF(c.Context(), companyID, c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(out)
}

// Preview arma un QR-bill sin guardar la factura.
// POST /api/qrbill/preview
func (h *QRBillHandler) Preview(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var in dto.QRBillPreviewRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	res, err := h.svc.Preview(c.Context(), companyID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}

// GetSettings GET /api/qrbill/settings
func (h *QRBillHandler) GetSettings(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	res, err := h.svc.GetSettings(c.Context(), companyID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}

// SaveSettings PUT /api/qrbill/settings
func (h *QRBillHandler) SaveSettings(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var in dto.QRBillSettingsDTO
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	res, err := h.svc.SaveSettings(c.Context(), companyID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}

// RfReference POST /api/qrbill/references/rf
func (h *QRBillHandler) RfReference(c *fiber.Ctx) error {
	var in dto.RfReferenceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	res, err := h.svc.CreditorReference(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}

// QRReference POST /api/qrbill/references/qrr
func (h *QRBillHandler) QRReference(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var in dto.QRReferenceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	res, err := h.svc.QRReference(c.Context(), companyID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}
