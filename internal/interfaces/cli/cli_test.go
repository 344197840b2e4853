package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/qrbill-api/internal/application/dto"
	"github.com/jhoicas/qrbill-api/internal/interfaces/cli"
	pkgjwt "github.com/jhoicas/qrbill-api/pkg/jwt"
)

const (
	testIban   = "CH93 0076 2011 6238 5295 7"
	testSecret = "cli-test-secret"
)

// run ejecuta el CLI con un entorno controlado y devuelve stdout y stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("QRBILL_IBAN", testIban)
	t.Setenv("QRBILL_REFERENCE_TYPE", "SCOR")
	t.Setenv("QRBILL_ISR_ID", "210000")
	t.Setenv("JWT_SECRET", testSecret)

	root := cli.NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--env", filepath.Join(t.TempDir(), "no-existe.env")}, args...))
	err := root.Execute()
	return out.String(), errOut.String(), err
}

// ──────────────────────────────────────────────────────────────────────────────
// payload / png / pdf
// ──────────────────────────────────────────────────────────────────────────────

func TestPayload_DesdeYAML(t *testing.T) {
	out, _, err := run(t, "", "payload", "-f", "testdata/bill.yaml")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 34)
	assert.Equal(t, "SPC", lines[0])
	assert.Equal(t, "CH9300762011623852957", lines[3])
	assert.Equal(t, "Muster AG", lines[5])
	assert.Equal(t, "Hans Muster", lines[21])
	assert.Equal(t, "RF8924241001", lines[28])
}

func TestPayload_JSONDesdeStdin(t *testing.T) {
	doc, err := os.ReadFile("testdata/bill.yaml")
	require.NoError(t, err)

	out, _, err := run(t, string(doc), "payload", "--json", "-f", "-")
	require.NoError(t, err)

	var res dto.QRBillResponse
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.True(t, res.Valid, "errores inesperados: %v", res.Presentation.Errors)
	assert.Equal(t, "1949.75", res.Presentation.Amount)
	assert.Equal(t, "de", res.Presentation.Language, "idioma por defecto de la configuración")
}

func TestPayload_StrictConErrores(t *testing.T) {
	t.Setenv("QRBILL_IBAN", "")
	path := filepath.Join(t.TempDir(), "bill.yaml")
	doc, err := os.ReadFile("testdata/bill.yaml")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte(strings.Replace(string(doc), `number: "42"`, `number: "123456789"`, 1)), 0o644))

	_, stderr, err := run(t, "", "payload", "--strict", "-f", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "errores")
	assert.NotEmpty(t, stderr)
}

func TestPayload_SinDocumento(t *testing.T) {
	_, _, err := run(t, "", "payload")
	assert.Error(t, err)
}

func TestPNG_EscribeArchivo(t *testing.T) {
	out := filepath.Join(t.TempDir(), "qr.png")
	_, _, err := run(t, "", "png", "-f", "testdata/bill.yaml", "-o", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
}

func TestPDF_AStdout(t *testing.T) {
	out, _, err := run(t, "", "pdf", "-f", "testdata/bill.yaml", "-o", "-")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "%PDF"))
}

func TestEnvFile_SeCarga(t *testing.T) {
	t.Setenv("QRBILL_LANGUAGE", "")
	require.NoError(t, os.Unsetenv("QRBILL_LANGUAGE"))
	envFile := filepath.Join(t.TempDir(), "qrbill.env")
	require.NoError(t, os.WriteFile(envFile, []byte("QRBILL_LANGUAGE=fr\n"), 0o644))

	out, _, err := run(t, "", "--env", envFile, "payload", "--json", "-f", "testdata/bill.yaml")
	require.NoError(t, err)

	var res dto.QRBillResponse
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "fr", res.Presentation.Language)
}

// ──────────────────────────────────────────────────────────────────────────────
// reference / token
// ──────────────────────────────────────────────────────────────────────────────

func TestReference_RF(t *testing.T) {
	out, _, err := run(t, "", "reference", "rf", "42", "1001")
	require.NoError(t, err)
	assert.Equal(t, "RF89 2424 1001\n", out)
}

func TestReference_QRRConIsrIDDeLaConfiguracion(t *testing.T) {
	out, _, err := run(t, "", "reference", "qrr", "42", "1001")
	require.NoError(t, err)
	assert.Equal(t, "21 00000 00000 00004 20001 00108\n", out)
}

func TestReference_RFNumeroLargo(t *testing.T) {
	_, _, err := run(t, "", "reference", "rf", "12345678", "1")
	assert.Error(t, err)
}

func TestToken_GeneraClaims(t *testing.T) {
	out, _, err := run(t, "", "token", "--company", "c-1", "--role", "lector")
	require.NoError(t, err)

	claims, err := pkgjwt.Parse(testSecret, strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "c-1", claims.CompanyID)
	assert.Equal(t, pkgjwt.RoleLector, claims.Role)
	assert.NotEmpty(t, claims.UserID)
}

func TestToken_RolInvalido(t *testing.T) {
	_, _, err := run(t, "", "token", "--company", "c-1", "--role", "root")
	assert.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// batch
// ──────────────────────────────────────────────────────────────────────────────

func writeInvoicesXLSX(t *testing.T, path string) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	rows := [][]any{
		{"number", "date", "amount", "vat_rate", "vat_net", "customer_number", "customer_name", "customer_address", "customer_postal_code", "customer_city", "customer_country"},
		{"2001", "2024-05-02", "108.10", "8.1", "100.00", "7", "Beispiel GmbH", "Seeweg 3", "6003", "Luzern", "CH"},
		{"", "", "", "", "", "", "", "", "", "", ""},
		{"2002", "02.05.2024", "50.00", "", "", "8", "Otra AG", "Gasse 1", "3000", "Bern", "Schweiz"},
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &r))
	}
	require.NoError(t, f.SaveAs(path))
}

func TestBatch_PayloadYResumen(t *testing.T) {
	dir := t.TempDir()
	xlsx := filepath.Join(dir, "facturas.xlsx")
	writeInvoicesXLSX(t, xlsx)
	outDir := filepath.Join(dir, "salida")

	out, _, err := run(t, "", "batch", "--xlsx", xlsx, "-f", "testdata/template.yaml", "--out", outDir)
	require.NoError(t, err)
	assert.Contains(t, out, "2 facturas procesadas, 1 con errores")

	payload, err := os.ReadFile(filepath.Join(outDir, "qrbill_2001.txt"))
	require.NoError(t, err)
	lines := strings.Split(string(payload), "\n")
	assert.Equal(t, "108.10", lines[18])
	assert.Equal(t, "Beispiel GmbH", lines[21])

	_, err = os.Stat(filepath.Join(outDir, "qrbill_2002.txt"))
	assert.True(t, os.IsNotExist(err), "la fila con fecha inválida no genera archivo")

	f, err := excelize.OpenFile(filepath.Join(outDir, "resumen.xlsx"))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Resumen")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Factura", rows[0][1])
	assert.Equal(t, []string{"2", "2001", "sí"}, rows[1][:3])
	assert.Equal(t, "4", rows[2][0], "la fila vacía se salta pero cuenta en la numeración")
	assert.Equal(t, "no", rows[2][2])
}

func TestBatch_FormatoInvalido(t *testing.T) {
	dir := t.TempDir()
	xlsx := filepath.Join(dir, "facturas.xlsx")
	writeInvoicesXLSX(t, xlsx)

	_, _, err := run(t, "", "batch", "--xlsx", xlsx, "--format", "svg", "--out", dir)
	assert.Error(t, err)
}
