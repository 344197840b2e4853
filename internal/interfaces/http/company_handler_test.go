package http_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/qrbill-api/internal/application/dto"
	"github.com/jhoicas/qrbill-api/internal/domain"
)

// ──────────────────────────────────────────────────────────────────────────────
// /api/company
// ──────────────────────────────────────────────────────────────────────────────

func TestGetCompany_LectorConsulta(t *testing.T) {
	svc := &fakeService{}
	resp := call(t, newRouterApp(svc), http.MethodGet, "/api/company", "lector", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.CompanyResponse
	decode(t, resp, &body)
	assert.Equal(t, testCompanyID, body.ID)
	assert.Equal(t, "Muster AG", body.Name)
}

func TestUpdateCompany_AdminActualiza(t *testing.T) {
	svc := &fakeService{}
	resp := call(t, newRouterApp(svc), http.MethodPut, "/api/company", "admin",
		`{"name":"Muster Treuhand AG","iban":"CH56 0483 5012 3456 7800 9"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.NotNil(t, svc.company.Iban)
	assert.Equal(t, "CH56 0483 5012 3456 7800 9", *svc.company.Iban)
	assert.Nil(t, svc.company.City, "los campos ausentes llegan como nil")
}

func TestUpdateCompany_ContableNoPuede(t *testing.T) {
	resp := call(t, newRouterApp(&fakeService{}), http.MethodPut, "/api/company", "contable", `{"name":"X"}`)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestUpdateCompany_IbanInvalido(t *testing.T) {
	svc := &fakeService{err: fmt.Errorf("%w: IBAN", domain.ErrInvalidInput)}
	resp := call(t, newRouterApp(svc), http.MethodPut, "/api/company", "admin", `{"name":"X"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
