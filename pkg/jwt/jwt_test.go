package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/backoffice-api/pkg/jwt"
)

const (
	testSecret  = "test-secret-key-for-unit-tests"
	testUserID  = "00000000-0000-0000-0000-000000000001"
	testStoreID = "00000000-0000-0000-0000-000000000002"
)

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, testStoreID, "bodeguero", "backoffice-test", 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, claims.UserID)
	assert.Equal(t, testStoreID, claims.StoreID)
	assert.Equal(t, "bodeguero", claims.Role)
	assert.Equal(t, "backoffice-test", claims.Issuer)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, testStoreID, "admin", "backoffice-test", -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err)
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, testStoreID, "admin", "backoffice-test", 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret", tok)
	assert.Error(t, err)
}

func TestParse_SinTienda(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "", "admin", "backoffice-test", 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", testUserID, testStoreID, "admin", "x", 60)
	assert.Error(t, err)
}
