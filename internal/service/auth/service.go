package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/hrworks/hr-backend-go/internal/domain/auth"
	"github.com/hrworks/hr-backend-go/internal/domain/user"
	"github.com/hrworks/hr-backend-go/internal/pkg/database"
	"github.com/hrworks/hr-backend-go/internal/pkg/jwt"
	"github.com/hrworks/hr-backend-go/internal/pkg/oauth"
	"github.com/hrworks/hr-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db *database.DB
	user.UserRepository
	auth.RefreshTokenRepository
	jwt.Service
	oauth.GoogleService
}

func NewAuthService(
	db *database.DB,
	userRepository user.UserRepository,
	refreshTokenRepository auth.RefreshTokenRepository,
	jwtService jwt.Service,
	googleService oauth.GoogleService,
) auth.AuthService {
	return &AuthServiceImpl{
		db:                     db,
		UserRepository:         userRepository,
		RefreshTokenRepository: refreshTokenRepository,
		Service:                jwtService,
		GoogleService:          googleService,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Register implements auth.AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	if _, err := a.UserRepository.GetByEmail(ctx, req.Email); err == nil {
		return user.UserResponse{}, user.ErrEmailExists
	} else if err != user.ErrUserNotFound {
		return user.UserResponse{}, fmt.Errorf("failed to check email: %w", err)
	}

	if req.EmployeeCode != nil {
		if _, err := a.UserRepository.GetByEmployeeCode(ctx, *req.EmployeeCode); err == nil {
			return user.UserResponse{}, user.ErrEmployeeCodeExists
		} else if err != user.ErrUserNotFound {
			return user.UserResponse{}, fmt.Errorf("failed to check employee code: %w", err)
		}
	}

	role, _ := user.ParseRole(req.Role)

	if req.ManagerID != nil {
		manager, err := a.UserRepository.GetByID(ctx, *req.ManagerID)
		if err != nil {
			return user.UserResponse{}, err
		}
		if !manager.IsManager() {
			return user.UserResponse{}, user.ErrManagerRoleRequired
		}
	}

	hash, err := a.hashPassword(req.Password)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser := user.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: &hash,
		Role:         role,
		EmployeeCode: req.EmployeeCode,
		Department:   req.Department,
		JobTitle:     req.JobTitle,
		ManagerID:    req.ManagerID,
		Active:       true,
	}

	created, err := a.UserRepository.Create(ctx, newUser)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	return user.ToResponse(created), nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest, session auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == user.ErrUserNotFound {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if userData.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if !userData.Active {
		return auth.TokenResponse{}, auth.ErrAccountInactive
	}

	return a.issueTokens(ctx, userData, session)
}

func (a *AuthServiceImpl) issueTokens(ctx context.Context, userData user.User, session auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	var tokenResponse auth.TokenResponse

	err := postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(userData.ID, userData.Email, userData.Role)
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}

		var jti string
		tokenResponse.RefreshToken, jti, tokenResponse.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(userData.ID)
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}

		record := auth.RefreshToken{
			UserID:    userData.ID,
			JTI:       jti,
			ExpiresAt: time.Unix(tokenResponse.RefreshTokenExpiresIn, 0),
		}
		if session.UserAgent != "" {
			record.UserAgent = &session.UserAgent
		}
		if session.IPAddress != "" {
			record.IPAddress = &session.IPAddress
		}

		if err := a.RefreshTokenRepository.Create(txCtx, record); err != nil {
			return fmt.Errorf("failed to save refresh token: %w", err)
		}
		return nil
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return tokenResponse, nil
}

// LoginWithGoogle implements auth.AuthService.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context) (string, error) {
	if a.GoogleService == nil {
		return "", auth.ErrGoogleLoginDisabled
	}

	state := a.GoogleService.GenerateState("web")
	if state == "" {
		return "", fmt.Errorf("failed to generate oauth state")
	}
	return a.GoogleService.RedirectURL(state), nil
}

// OAuthCallbackGoogle implements auth.AuthService.
func (a *AuthServiceImpl) OAuthCallbackGoogle(ctx context.Context, state, code string, session auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	if a.GoogleService == nil {
		return auth.TokenResponse{}, auth.ErrGoogleLoginDisabled
	}
	if state == "" || code == "" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	token, err := a.GoogleService.VerifyToken(ctx, code)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	info, err := a.GoogleService.VerifyUser(ctx, token)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to fetch google user: %w", err)
	}
	if !info.VerifiedEmail {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	userData, err := a.UserRepository.GetByEmail(ctx, info.Email)
	if err != nil {
		if err == user.ErrUserNotFound {
			// Google login never provisions accounts; HR creates them.
			return auth.TokenResponse{}, auth.ErrUserNotFound
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !userData.Active {
		return auth.TokenResponse{}, auth.ErrAccountInactive
	}

	return a.issueTokens(ctx, userData, session)
}

// RefreshToken implements auth.AuthService.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AccessTokenResponse{}, err
	}

	userID, jti, err := a.Service.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	record, err := a.RefreshTokenRepository.GetByJTI(ctx, jti)
	if err != nil {
		return auth.AccessTokenResponse{}, err
	}
	if record.Revoked {
		return auth.AccessTokenResponse{}, auth.ErrRefreshTokenRevoked
	}
	if record.UserID != userID || time.Now().After(record.ExpiresAt) {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if err == user.ErrUserNotFound {
			return auth.AccessTokenResponse{}, auth.ErrUserNotFound
		}
		return auth.AccessTokenResponse{}, err
	}
	if !userData.Active {
		return auth.AccessTokenResponse{}, auth.ErrAccountInactive
	}

	var response auth.AccessTokenResponse
	response.AccessToken, response.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(userData.ID, userData.Email, userData.Role)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return response, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, req auth.RefreshTokenRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	_, jti, err := a.Service.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		return auth.ErrInvalidToken
	}

	if err := a.RefreshTokenRepository.Revoke(ctx, jti); err != nil {
		// Revoking an already-revoked session is a no-op for the caller.
		if err == auth.ErrRefreshTokenRevoked {
			return nil
		}
		return err
	}

	return nil
}

// Me implements auth.AuthService.
func (a *AuthServiceImpl) Me(ctx context.Context, principal auth.Principal) (user.UserResponse, error) {
	userData, err := a.UserRepository.GetByID(ctx, principal.ID)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(userData), nil
}
