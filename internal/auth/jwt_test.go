package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_GenerateAndParse(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	token, err := svc.Generate("user-123", "ngo")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "ngo", claims.Role)
}

func TestJWTService_Parse_WrongSecret(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)
	other := NewJWTService("other-secret", time.Hour)

	token, err := svc.Generate("user-123", "user")
	require.NoError(t, err)

	_, err = other.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_Parse_Expired(t *testing.T) {
	svc := NewJWTService("test-secret", -time.Minute)

	token, err := svc.Generate("user-123", "user")
	require.NoError(t, err)

	_, err = svc.Parse(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTService_Parse_Garbage(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	_, err := svc.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
