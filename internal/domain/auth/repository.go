package auth

import (
	"context"
	"time"
)

// RefreshToken tracks an issued refresh token so logout can revoke a
// single session without touching the others.
type RefreshToken struct {
	ID        string
	UserID    string
	JTI       string
	UserAgent *string
	IPAddress *string
	Revoked   bool
	ExpiresAt time.Time
	CreatedAt time.Time
}

type RefreshTokenRepository interface {
	Create(ctx context.Context, token RefreshToken) error
	GetByJTI(ctx context.Context, jti string) (RefreshToken, error)
	Revoke(ctx context.Context, jti string) error
	RevokeAllForUser(ctx context.Context, userID string) error
	DeleteExpired(ctx context.Context) (int64, error)
}
