// Package cli comandos del binario qrbill: QR-facturas desde documentos YAML,
// lotes desde hojas de cálculo, referencias, tokens y tareas de base de datos.
package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	appqrbill "github.com/jhoicas/qrbill-api/internal/application/qrbill"
	qrdomain "github.com/jhoicas/qrbill-api/internal/domain/qrbill"
	infrapdf "github.com/jhoicas/qrbill-api/internal/infrastructure/pdf"
	"github.com/jhoicas/qrbill-api/internal/infrastructure/qrcode"
	"github.com/jhoicas/qrbill-api/internal/infrastructure/validation"
	"github.com/jhoicas/qrbill-api/pkg/config"
	"github.com/jhoicas/qrbill-api/pkg/logger"
)

var version = "1.0.0"

// app estado compartido por los subcomandos, cargado antes de cada ejecución.
type app struct {
	cfg *config.Config
	log *logger.Logger
	uc  *appqrbill.UseCase
}

// NewRootCmd construye el comando raíz con todos los subcomandos.
func NewRootCmd() *cobra.Command {
	a := &app{}
	var envFile string

	root := &cobra.Command{
		Use:   "qrbill",
		Short: "QR-facturas suizas (Swiss Payment Code) desde la línea de comandos",
		Long: `qrbill arma el payload SPC, la imagen QR y la sección de pago en PDF
a partir de documentos YAML u hojas de cálculo, sin necesidad de la API.

La configuración se lee de variables de entorno (QRBILL_IBAN, QRBILL_REFERENCE_TYPE, ...)
y opcionalmente de un archivo .env.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd, envFile)
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env", ".env", "archivo de variables de entorno (se ignora si no existe)")

	root.AddCommand(
		newPayloadCmd(a),
		newPNGCmd(a),
		newPDFCmd(a),
		newReferenceCmd(a),
		newBatchCmd(a),
		newTokenCmd(a),
		newDBCmd(a),
	)
	return root
}

func (a *app) load(cmd *cobra.Command, envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("cargar %s: %w", envFile, err)
		}
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg
	// stdout queda libre para el payload y los archivos binarios
	a.log = logger.NewWithWriter(cmd.ErrOrStderr(), cfg.App.LogLevel)

	ibans := validation.NewIbanValidator()
	builder := qrdomain.NewBuilder(
		ibans,
		validation.NewCountryValidator(),
		qrdomain.WithDiagnosticSink(a.log.Component("qrbill")),
	)
	a.uc = appqrbill.NewUseCase(appqrbill.Deps{
		Builder:  builder,
		Ibans:    ibans,
		Renderer: qrcode.NewPNGRenderer(cfg.QRBill.QrSize),
		PDF:      infrapdf.NewPaymentPartGenerator(cfg.App.Name),
		Defaults: cfg.QRBill,
	})
	return nil
}
