package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/qrbill-api/internal/application/dto"
	appqrbill "github.com/jhoicas/qrbill-api/internal/application/qrbill"
	qrdomain "github.com/jhoicas/qrbill-api/internal/domain/qrbill"
)

// Columnas reconocidas en la hoja de facturas (primera fila, sin distinguir mayúsculas).
// Sólo "number" es obligatoria; el resto completa o reemplaza la plantilla.
const (
	colNumber        = "number"
	colDate          = "date"
	colDueDate       = "due_date"
	colCurrency      = "currency"
	colAmount        = "amount"
	colNotes         = "notes"
	colLocale        = "locale"
	colVATRate       = "vat_rate"
	colVATNet        = "vat_net"
	colCustNumber    = "customer_number"
	colCustName      = "customer_name"
	colCustAddress   = "customer_address"
	colCustPostal    = "customer_postal_code"
	colCustCity      = "customer_city"
	colCustCountry   = "customer_country"
	colCustLang      = "customer_lang"
	summarySheetName = "Resumen"
)

var summaryHeader = []any{"Fila", "Factura", "Válido", "Referencia", "Archivo", "Errores"}

// batchRow fila ya convertida en documento, con su número de fila en la hoja.
type batchRow struct {
	line int
	req  dto.QRBillPreviewRequest
}

// batchResult resultado de una fila para la hoja resumen.
type batchResult struct {
	line      int
	number    string
	valid     bool
	reference string
	file      string
	errors    string
}

func newBatchCmd(a *app) *cobra.Command {
	var xlsxPath, sheet, template, outDir, format, summary string

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Genera un QR-bill por fila de una hoja de cálculo",
		Long: `batch lee facturas de un .xlsx (una por fila, cabeceras en la primera fila)
y escribe un archivo por factura en --out. La plantilla YAML (-f) aporta los
ajustes y el emisor comunes; las columnas de la hoja completan cada factura.

Columnas: number, date, due_date, currency, amount, notes, locale, vat_rate, vat_net,
customer_number, customer_name, customer_address, customer_postal_code,
customer_city, customer_country, customer_lang.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var base dto.QRBillPreviewRequest
			if template != "" {
				var err error
				if base, err = readDocument(cmd, template); err != nil {
					return err
				}
			}
			switch format {
			case "payload", "png", "pdf":
			default:
				return fmt.Errorf("formato inválido %q (payload, png, pdf)", format)
			}

			rows, err := readBatch(xlsxPath, sheet, base)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("crear %s: %w", outDir, err)
			}

			results := make([]batchResult, 0, len(rows))
			invalid := 0
			for _, row := range rows {
				res := a.processRow(cmd, row, outDir, format)
				if !res.valid {
					invalid++
				}
				results = append(results, res)
			}

			if summary == "" {
				summary = filepath.Join(outDir, "resumen.xlsx")
			}
			if err := writeSummary(summary, results); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d facturas procesadas, %d con errores, resumen en %s\n",
				len(results), invalid, summary)
			return nil
		},
	}
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "hoja de cálculo con las facturas (obligatorio)")
	cmd.Flags().StringVar(&sheet, "sheet", "", "nombre de la hoja (por defecto la primera)")
	cmd.Flags().StringVarP(&template, "file", "f", "", "plantilla YAML con settings y emisor")
	cmd.Flags().StringVar(&outDir, "out", ".", "directorio de salida")
	cmd.Flags().StringVar(&format, "format", "payload", "salida por factura: payload, png o pdf")
	cmd.Flags().StringVar(&summary, "summary", "", "resumen .xlsx (por defecto <out>/resumen.xlsx)")
	_ = cmd.MarkFlagRequired("xlsx")
	return cmd
}

// processRow arma y escribe el QR-bill de una fila. Los errores de la fila
// quedan en el resultado; no cortan el lote.
func (a *app) processRow(cmd *cobra.Command, row batchRow, outDir, format string) batchResult {
	res := batchResult{line: row.line, number: row.req.Invoice.Number}

	bill, err := a.uc.Document(row.req)
	if err != nil {
		res.errors = err.Error()
		a.log.Error().Err(err).Int("fila", row.line).Str("factura", res.number).Msg("fila descartada")
		return res
	}
	res.valid = bill.Valid()
	res.reference = bill.Presentation().Reference
	res.errors = joinFieldErrors(bill.Errors())

	var data []byte
	ext := "txt"
	switch format {
	case "png":
		ext = "png"
		data, err = a.uc.BillPNG(bill)
	case "pdf":
		ext = "pdf"
		data, err = a.uc.BillPDF(cmd.Context(), bill)
	default:
		data = []byte(bill.Payload())
	}
	if err != nil {
		res.valid = false
		res.errors = err.Error()
		return res
	}

	res.file = filepath.Join(outDir, appqrbill.FileName(res.number, ext))
	if err := os.WriteFile(res.file, data, 0o644); err != nil {
		res.valid = false
		res.errors = fmt.Sprintf("escribir %s: %v", res.file, err)
		res.file = ""
	}
	return res
}

// readBatch lee la hoja y convierte cada fila no vacía en un documento sobre la plantilla.
func readBatch(path, sheet string, base dto.QRBillPreviewRequest) ([]batchRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("abrir %s: %w", path, err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("leer hoja %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("la hoja %q está vacía", sheet)
	}

	index := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := index[colNumber]; !ok {
		return nil, fmt.Errorf("la hoja %q no tiene la columna %q", sheet, colNumber)
	}

	out := make([]batchRow, 0, len(rows)-1)
	for i, cells := range rows[1:] {
		get := func(col string) string {
			j, ok := index[col]
			if !ok || j >= len(cells) {
				return ""
			}
			return strings.TrimSpace(cells[j])
		}
		if get(colNumber) == "" {
			continue
		}
		out = append(out, batchRow{line: i + 2, req: rowDocument(base, get)})
	}
	return out, nil
}

// rowDocument copia la plantilla y aplica las celdas no vacías de la fila.
func rowDocument(base dto.QRBillPreviewRequest, get func(string) string) dto.QRBillPreviewRequest {
	req := base
	inv := base.Invoice
	inv.VATRates = append([]dto.VATRateDTO(nil), base.Invoice.VATRates...)

	set := func(dst *string, col string) {
		if v := get(col); v != "" {
			*dst = v
		}
	}
	set(&inv.Number, colNumber)
	set(&inv.Date, colDate)
	set(&inv.DueDate, colDueDate)
	set(&inv.Currency, colCurrency)
	set(&inv.Amount, colAmount)
	set(&inv.Notes, colNotes)
	set(&inv.Locale, colLocale)
	if rate := get(colVATRate); rate != "" {
		inv.VATRates = []dto.VATRateDTO{{Rate: rate, NetAmount: get(colVATNet)}}
	}

	set(&inv.Customer.Number, colCustNumber)
	set(&inv.Customer.BusinessName, colCustName)
	set(&inv.Customer.Address1, colCustAddress)
	set(&inv.Customer.PostalCode, colCustPostal)
	set(&inv.Customer.City, colCustCity)
	if c := get(colCustCountry); c != "" {
		if len(c) == 2 {
			inv.Customer.CountryCode = strings.ToUpper(c)
		} else {
			inv.Customer.Country = c
		}
	}
	set(&inv.Customer.Lang, colCustLang)

	req.Invoice = inv
	return req
}

func joinFieldErrors(errs []qrdomain.FieldError) string {
	parts := make([]string, 0, len(errs))
	for _, fe := range errs {
		parts = append(parts, fe.Field+": "+fe.Code)
	}
	return strings.Join(parts, "; ")
}

// writeSummary escribe el resultado del lote en una hoja "Resumen".
func writeSummary(path string, results []batchResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), summarySheetName); err != nil {
		return err
	}
	if err := f.SetSheetRow(summarySheetName, "A1", &summaryHeader); err != nil {
		return err
	}
	for i, r := range results {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		valid := "no"
		if r.valid {
			valid = "sí"
		}
		row := []any{strconv.Itoa(r.line), r.number, valid, r.reference, r.file, r.errors}
		if err := f.SetSheetRow(summarySheetName, cell, &row); err != nil {
			return err
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("guardar resumen %s: %w", path, err)
	}
	return nil
}
