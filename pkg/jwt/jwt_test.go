package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/qrbill-api/pkg/jwt"
)

const (
	secret    = "secreto-de-prueba"
	userID    = "00000000-0000-0000-0000-0000000000a1"
	companyID = "00000000-0000-0000-0000-0000000000c1"
)

func TestGenerateYParse_EmpresaYRol(t *testing.T) {
	tok, err := jwt.Generate(secret, userID, companyID, jwt.RoleContable, "qrbill-api", 30)
	require.NoError(t, err)

	claims, err := jwt.Parse(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID, claims.Subject)
	assert.Equal(t, companyID, claims.CompanyID)
	assert.Equal(t, jwt.RoleContable, claims.Role)
	assert.Equal(t, "qrbill-api", claims.Issuer)
}

func TestParse_Rechazos(t *testing.T) {
	vencido, err := jwt.Generate(secret, userID, companyID, jwt.RoleAdmin, "qrbill-api", -1)
	require.NoError(t, err)
	valido, err := jwt.Generate(secret, userID, companyID, jwt.RoleAdmin, "qrbill-api", 30)
	require.NoError(t, err)

	_, err = jwt.Parse(secret, vencido)
	assert.Error(t, err, "token vencido")

	_, err = jwt.Parse("otro-secreto", valido)
	assert.Error(t, err, "firma con otro secreto")

	_, err = jwt.Parse(secret, "no.es.un.jwt")
	assert.Error(t, err)

	_, err = jwt.Parse("", valido)
	assert.Error(t, err, "secreto vacío")
}

func TestGenerate_SinSecreto(t *testing.T) {
	_, err := jwt.Generate("", userID, companyID, jwt.RoleAdmin, "qrbill-api", 30)
	assert.Error(t, err)
}

func TestValidRole(t *testing.T) {
	for _, r := range []string{jwt.RoleAdmin, jwt.RoleContable, jwt.RoleLector} {
		assert.True(t, jwt.ValidRole(r), r)
	}
	assert.False(t, jwt.ValidRole(""))
	assert.False(t, jwt.ValidRole("Admin"), "los roles se comparan en minúsculas")
	assert.False(t, jwt.ValidRole("superuser"))
}
