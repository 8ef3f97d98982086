package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/clairefro/flc-wix/pkg/jwt"
)

const (
	testSecret   = "test-secret-key-for-unit-tests"
	testMemberID = "00000000-0000-0000-0000-000000000001"
	testEmail    = "student@example.com"
)

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testMemberID, testEmail, "member", "flc-test", 60)
	require.NoError(t, err)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testMemberID, claims.MemberID)
	assert.Equal(t, testEmail, claims.Email)
	assert.Equal(t, "member", claims.Role)
	assert.Equal(t, "flc-test", claims.Issuer)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testMemberID, testEmail, "admin", "flc-test", -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testMemberID, testEmail, "admin", "flc-test", 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret", tok)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", testMemberID, testEmail, "member", "flc-test", 60)
	assert.Error(t, err)
}
