package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	InitJWT("test-secret")

	token, err := GenerateAccessToken("admin", "Admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "Admin", claims.Role)
	assert.Equal(t, "pcbang-backend", claims.Issuer)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	InitJWT("first-secret")
	token, err := GenerateAccessToken("admin", "Admin")
	require.NoError(t, err)

	InitJWT("second-secret")
	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	InitJWT("test-secret")
	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)
}
