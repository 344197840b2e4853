package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/qrbill-api/pkg/logger"
)

func TestReport_EscribeAvisoConCodigo(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithWriter(&buf, "info")

	l.Report("Adresse: PLZ fehlt", "ID_ERR_CREDITOR_POSTALCODE")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "ID_ERR_CREDITOR_POSTALCODE", entry["code"])
	assert.Equal(t, "Adresse: PLZ fehlt", entry["message"])
}

func TestReport_NivelErrorLoSilencia(t *testing.T) {
	var buf bytes.Buffer
	logger.NewWithWriter(&buf, "error").Report("aviso", "X")
	assert.Empty(t, buf.String())
}

func TestComponent_AgregaCampo(t *testing.T) {
	var buf bytes.Buffer
	logger.NewWithWriter(&buf, "debug").Component("qrbill").Report("Falta IBAN", "ID_ERR_IBAN_MISSING")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "qrbill", entry["component"])
	assert.Equal(t, "ID_ERR_IBAN_MISSING", entry["code"])
}

func TestNewWithWriter_NivelDesconocidoEsInfo(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithWriter(&buf, "verbose")

	l.Debug().Msg("no sale")
	assert.Empty(t, buf.String())

	l.Info().Msg("sale")
	assert.Contains(t, buf.String(), `"level":"info"`)
}
