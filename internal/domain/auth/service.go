package auth

import (
	"context"

	"github.com/hrworks/hr-backend-go/internal/domain/user"
)

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (user.UserResponse, error)
	Login(ctx context.Context, req LoginRequest, session SessionTrackingRequest) (TokenResponse, error)
	LoginWithGoogle(ctx context.Context) (string, error)
	OAuthCallbackGoogle(ctx context.Context, state, code string, session SessionTrackingRequest) (TokenResponse, error)
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)
	Logout(ctx context.Context, req RefreshTokenRequest) error
	Me(ctx context.Context, principal Principal) (user.UserResponse, error)
}
