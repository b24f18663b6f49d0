package jwt

import (
	"context"
	"testing"

	"github.com/hrworks/hr-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenClaims(t *testing.T) {
	svc := NewJWTService("test-secret", "1h", "24h")

	token, expiresAt, err := svc.GenerateAccessToken("user-1", "jane@example.com", user.RoleManager)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, int64(0))

	parsed, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	claims, err := parsed.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "jane@example.com", claims["email"])
	assert.Equal(t, "MANAGER", claims["role"])
	assert.Equal(t, "access", claims["type"])
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", "1h", "24h")

	token, jti, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)
	require.NotEmpty(t, jti)

	userID, parsedJTI, err := svc.ParseRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, jti, parsedJTI)

	// Each refresh token carries a distinct session id
	_, jti2, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)
	assert.NotEqual(t, jti, jti2)
}

func TestParseRefreshTokenRejectsAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret", "1h", "24h")

	accessToken, _, err := svc.GenerateAccessToken("user-1", "jane@example.com", user.RoleEmployee)
	require.NoError(t, err)

	_, _, err = svc.ParseRefreshToken(accessToken)
	assert.Error(t, err)
}

func TestParseRefreshTokenRejectsWrongKey(t *testing.T) {
	svc := NewJWTService("test-secret", "1h", "24h")
	other := NewJWTService("other-secret", "1h", "24h")

	token, _, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	_, _, err = other.ParseRefreshToken(token)
	assert.Error(t, err)
}
