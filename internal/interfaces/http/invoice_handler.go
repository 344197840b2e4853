package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/qrbill-api/internal/application/dto"
)

// CreateInvoice registra una factura con sus totales por tasa de IVA.
// POST /api/invoices
func (h *QRBillHandler) CreateInvoice(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	res, err := h.svc.CreateInvoice(c.Context(), companyID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

// ListCustomers GET /api/customers?limit=&offset=
func (h *QRBillHandler) ListCustomers(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return invalidBody(c)
	}
	page.DefaultPage()
	list, err := h.svc.ListCustomers(c.Context(), companyID, page.Limit, page.Offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"items": list,
		"count": len(list),
		"page":  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	})
}
