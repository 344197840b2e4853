package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/qrbill-api/internal/application/dto"
)

// GetCompany devuelve la ficha de acreedor de la empresa del token.
// GET /api/company
func (h *QRBillHandler) GetCompany(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	res, err := h.svc.GetCompany(c.Context(), companyID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}

// UpdateCompany cambia nombre, dirección, IVA o IBAN de la empresa.
// PUT /api/company (sólo admin)
func (h *QRBillHandler) UpdateCompany(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var in dto.UpdateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	res, err := h.svc.UpdateCompany(c.Context(), companyID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}
