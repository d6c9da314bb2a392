package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testSecret = "unit-test-secret"

func TestAccessToken_RoundTrip(t *testing.T) {
	token, err := GenerateAccessToken(42, "user@example.com", "Test User", "admin", testSecret, 15)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ValidateAccessToken(token, testSecret)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.AccountID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func TestAccessToken_WrongSecret(t *testing.T) {
	token, err := GenerateAccessToken(1, "user@example.com", "Test User", "user", testSecret, 15)
	assert.NoError(t, err)

	_, err = ValidateAccessToken(token, "a-different-secret")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestAccessToken_Expired(t *testing.T) {
	token, err := GenerateAccessToken(1, "user@example.com", "Test User", "user", testSecret, -1)
	assert.NoError(t, err)

	_, err = ValidateAccessToken(token, testSecret)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestAccessToken_Garbage(t *testing.T) {
	_, err := ValidateAccessToken("not.a.token", testSecret)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestRefreshToken_RoundTrip(t *testing.T) {
	token, err := GenerateRefreshToken(7, "token-id-123", testSecret, 7)
	assert.NoError(t, err)

	claims, err := ValidateRefreshToken(token, testSecret)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), claims.AccountID)
	assert.Equal(t, "token-id-123", claims.TokenID)
}

func TestRefreshToken_NotValidAsAccessToken(t *testing.T) {
	refresh, err := GenerateRefreshToken(7, "token-id-123", testSecret, 7)
	assert.NoError(t, err)

	claims, err := ValidateAccessToken(refresh, testSecret)
	if err == nil {
		// Shape overlaps, but a refresh token carries no identity claims.
		assert.Empty(t, claims.Email)
		assert.Empty(t, claims.Role)
	}
}
