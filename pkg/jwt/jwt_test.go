package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/iheb2023-web/Inventaire-IoT/pkg/jwt"
)

const (
	testSecret  = "test-secret-key-for-unit-tests"
	testSubject = "admin@inventaire.local"
	testIssuer  = "inventaire-iot-test"
)

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testSubject, "admin", testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	subject, role, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testSubject, subject)
	assert.Equal(t, "admin", role)
}

func TestParse_TokenExpiradoRetornaError(t *testing.T) {
	// Expiración -1 minuto: el token nace expirado.
	tok, err := pkgjwt.Generate(testSecret, testSubject, "admin", testIssuer, -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrectoRetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testSubject, "admin", testIssuer, 60)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("otro-secret", tok)
	assert.Error(t, err, "firma con otro secret debe rechazarse")
}

func TestParse_TokenMalformadoRetornaError(t *testing.T) {
	_, _, err := pkgjwt.Parse(testSecret, "token.invalido.aqui")
	assert.Error(t, err)
}

func TestGenerate_SecretVacioRetornaError(t *testing.T) {
	_, err := pkgjwt.Generate("", testSubject, "admin", testIssuer, 60)
	assert.Error(t, err)
}
