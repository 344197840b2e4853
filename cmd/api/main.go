package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/qrbill-api/docs"
	"github.com/jhoicas/qrbill-api/internal/application/auth"
	appqrbill "github.com/jhoicas/qrbill-api/internal/application/qrbill"
	qrdomain "github.com/jhoicas/qrbill-api/internal/domain/qrbill"
	infrapdf "github.com/jhoicas/qrbill-api/internal/infrastructure/pdf"
	"github.com/jhoicas/qrbill-api/internal/infrastructure/postgres"
	"github.com/jhoicas/qrbill-api/internal/infrastructure/qrcode"
	"github.com/jhoicas/qrbill-api/internal/infrastructure/validation"
	httpRouter "github.com/jhoicas/qrbill-api/internal/interfaces/http"
	"github.com/jhoicas/qrbill-api/pkg/config"
	"github.com/jhoicas/qrbill-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("qrbill_language", cfg.QRBill.Language).
		Str("qrbill_reference", cfg.QRBill.ReferenceType).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	// Ensamblador QR-bill: validadores de IBAN/país y avisos al log
	ibans := validation.NewIbanValidator()
	builder := qrdomain.NewBuilder(
		ibans,
		validation.NewCountryValidator(),
		qrdomain.WithDiagnosticSink(log.Component("qrbill")),
	)

	companyRepo := postgres.NewCompanyRepository(pool)
	qrbillUC := appqrbill.NewUseCase(appqrbill.Deps{
		Settings:  postgres.NewQRBillSettingsRepository(pool),
		Invoices:  postgres.NewInvoiceRepository(pool),
		Companies: companyRepo,
		Customers: postgres.NewCustomerRepository(pool),
		Tx:        postgres.NewTxRunner(pool),
		Builder:   builder,
		Ibans:     ibans,
		Renderer:  qrcode.NewPNGRenderer(cfg.QRBill.QrSize),
		PDF:       infrapdf.NewPaymentPartGenerator(cfg.App.Name),
		Defaults:  cfg.QRBill,
	})

	authUC := auth.NewAuthUseCase(postgres.NewUserRepository(pool), companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "QR-Bill API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		QRBill:    qrbillUC,
		Auth:      authUC,
		JWTSecret: cfg.JWT.Secret,
		AppName:   cfg.App.Name,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
