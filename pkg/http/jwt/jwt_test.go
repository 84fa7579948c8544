package jwt

import (
	"errors"
	"testing"
	"time"

	goJwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenAndParseToken(t *testing.T) {
	secret := []byte("test-secret")

	aToken, rToken, err := GenToken("user-1", secret, 30, 60)
	require.NoError(t, err)
	require.NotEmpty(t, aToken)
	require.NotEmpty(t, rToken)

	claims, err := ParseToken(aToken, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserId)
	assert.Equal(t, issUser, claims.Issuer)
}

func TestParseTokenWrongSecret(t *testing.T) {
	aToken, _, err := GenToken("user-1", []byte("test-secret"), 30, 60)
	require.NoError(t, err)

	_, err = ParseToken(aToken, "other-secret")
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	secret := []byte("test-secret")
	claims := &AuthClaims{
		UserId: "user-1",
		RegisteredClaims: goJwt.RegisteredClaims{
			Issuer:    issUser,
			ExpiresAt: goJwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	expired, err := goJwt.NewWithClaims(goJwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)

	_, err = ParseToken(expired, "test-secret")
	assert.True(t, errors.Is(err, goJwt.ErrTokenExpired))
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := ParseToken("not-a-token", "test-secret")
	assert.Error(t, err)
}
