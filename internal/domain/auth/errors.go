package auth

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrAccountInactive     = errors.New("account is deactivated")
	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrTokenExpired        = errors.New("token has expired")
	ErrRefreshTokenRevoked = errors.New("refresh token has been revoked")
	ErrUserNotFound        = errors.New("user not found")
	ErrUnauthenticated     = errors.New("authentication required")
	ErrGoogleLoginDisabled = errors.New("google login is not configured")
)
