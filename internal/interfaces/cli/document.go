package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jhoicas/qrbill-api/internal/application/dto"
	appqrbill "github.com/jhoicas/qrbill-api/internal/application/qrbill"
	qrdomain "github.com/jhoicas/qrbill-api/internal/domain/qrbill"
)

// readDocument lee un documento YAML con los bloques settings e invoice.
// "-" lee de stdin.
func readDocument(cmd *cobra.Command, path string) (dto.QRBillPreviewRequest, error) {
	var req dto.QRBillPreviewRequest
	if path == "" {
		return req, fmt.Errorf("falta el documento (-f)")
	}
	var raw []byte
	var err error
	if path == "-" {
		raw, err = io.ReadAll(cmd.InOrStdin())
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return req, fmt.Errorf("leer documento: %w", err)
	}
	if err := yaml.Unmarshal(raw, &req); err != nil {
		return req, fmt.Errorf("documento YAML inválido: %w", err)
	}
	return req, nil
}

// reportErrors escribe los errores de campo en stderr.
func reportErrors(cmd *cobra.Command, bill *qrdomain.Bill) {
	for _, fe := range bill.Errors() {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s (%s)\n", fe.Field, fe.Message, fe.Code)
	}
}

func newPayloadCmd(a *app) *cobra.Command {
	var file string
	var asJSON, strict bool

	cmd := &cobra.Command{
		Use:   "payload",
		Short: "Imprime el payload SPC del documento",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := readDocument(cmd, file)
			if err != nil {
				return err
			}
			bill, err := a.uc.Document(req)
			if err != nil {
				return err
			}
			reportErrors(cmd, bill)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(dto.QRBillResponse{
					Valid: bill.Valid(), Payload: bill.Payload(), Presentation: bill.Presentation(),
				}); err != nil {
					return err
				}
			} else {
				fmt.Fprintln(out, bill.Payload())
			}
			if strict && !bill.Valid() {
				return fmt.Errorf("QR-bill con %d errores", len(bill.Errors()))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "documento YAML (- para stdin)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "imprime payload y presentación en JSON")
	cmd.Flags().BoolVar(&strict, "strict", false, "termina con error si el QR-bill tiene errores de campo")
	return cmd
}

func newPNGCmd(a *app) *cobra.Command {
	return newFileCmd(a, "png", "Genera la imagen QR con la cruz suiza",
		func(cmd *cobra.Command, bill *qrdomain.Bill) ([]byte, error) { return a.uc.BillPNG(bill) })
}

func newPDFCmd(a *app) *cobra.Command {
	return newFileCmd(a, "pdf", "Genera la sección de pago en PDF",
		func(cmd *cobra.Command, bill *qrdomain.Bill) ([]byte, error) {
			return a.uc.BillPDF(cmd.Context(), bill)
		})
}

// newFileCmd comando que arma el bill y escribe un archivo binario.
// Sin -o el nombre sale del número de factura; "-o -" escribe en stdout.
func newFileCmd(a *app, ext, short string, render func(*cobra.Command, *qrdomain.Bill) ([]byte, error)) *cobra.Command {
	var file, output string

	cmd := &cobra.Command{
		Use:   ext,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := readDocument(cmd, file)
			if err != nil {
				return err
			}
			bill, err := a.uc.Document(req)
			if err != nil {
				return err
			}
			reportErrors(cmd, bill)

			data, err := render(cmd, bill)
			if err != nil {
				return err
			}
			if output == "-" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if output == "" {
				output = appqrbill.FileName(req.Invoice.Number, ext)
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("escribir %s: %w", output, err)
			}
			a.log.Info().Str("archivo", output).Bool("valido", bill.Valid()).Msg("QR-bill generado")
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "documento YAML (- para stdin)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "archivo de salida (- para stdout)")
	return cmd
}
