package docs_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"

	"github.com/jhoicas/qrbill-api/docs"
)

func TestSwagger_RegistradoConLasRutas(t *testing.T) {
	raw, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc struct {
		Info  map[string]any            `json:"info"`
		Paths map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	assert.Equal(t, "QR-Bill API", doc.Info["title"])
	for _, path := range []string{
		"/api/invoices",
		"/api/invoices/{id}/qrbill",
		"/api/invoices/{id}/qrbill.png",
		"/api/invoices/{id}/qrbill.pdf",
		"/api/qrbill/preview",
		"/api/qrbill/settings",
		"/api/qrbill/references/rf",
		"/api/qrbill/references/qrr",
		"/api/customers",
		"/auth/login",
		"/api/users",
		"/api/company",
	} {
		assert.Contains(t, doc.Paths, path)
	}
	assert.Contains(t, doc.Paths["/api/qrbill/settings"], "put")
}
