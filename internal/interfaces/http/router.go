package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/qrbill-api/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	QRBill    QRBillService
	Auth      AuthService
	JWTSecret string
	AppName   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	authH := NewAuthHandler(deps.Auth)
	app.Post("/auth/login", authH.Login)

	// Rutas protegidas (requieren Bearer Token)
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))
	h := NewQRBillHandler(deps.QRBill)

	anyRole := RequireRole(jwt.RoleAdmin, jwt.RoleContable, jwt.RoleLector)
	billing := RequireRole(jwt.RoleAdmin, jwt.RoleContable)

	// Ajustes y utilidades QR-bill
	qr := api.Group("/qrbill")
	qr.Get("/settings", anyRole, h.GetSettings)
	qr.Put("/settings", RequireRole(jwt.RoleAdmin), h.SaveSettings)
	qr.Post("/preview", billing, h.Preview)
	qr.Post("/references/rf", anyRole, h.RfReference)
	qr.Post("/references/qrr", anyRole, h.QRReference)

	// QR-bill de facturas guardadas
	invoices := api.Group("/invoices")
	invoices.Post("", billing, h.CreateInvoice)
	invoices.Get("/:id/qrbill", anyRole, h.Generate)
	invoices.Get("/:id/qrbill.png", billing, h.PNG)
	invoices.Get("/:id/qrbill.pdf", billing, h.PDF)

	api.Get("/customers", anyRole, h.ListCustomers)
	api.Get("/company", anyRole, h.GetCompany)
	api.Put("/company", RequireRole(jwt.RoleAdmin), h.UpdateCompany)
	api.Post("/users", RequireRole(jwt.RoleAdmin), authH.Register)
}
