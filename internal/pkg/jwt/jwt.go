package jwt

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/hrworks/hr-backend-go/internal/domain/user"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

type Service interface {
	GenerateAccessToken(userID string, email string, role user.Role) (token string, expiresAt int64, err error)
	GenerateRefreshToken(userID string) (token string, jti string, expiresAt int64, err error)
	ParseRefreshToken(token string) (userID string, jti string, err error)
	JWTAuth() *jwtauth.JWTAuth
	RefreshTokenCookie(token string, expiresAt int64) *http.Cookie
}

type JWTService struct {
	secretKey                  string
	accessTokenExpirationTime  string
	refreshTokenExpirationTime string
	tokenAuth                  *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string, refreshTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                  secretKey,
		accessTokenExpirationTime:  accessTokenExpirationTime,
		refreshTokenExpirationTime: refreshTokenExpirationTime,
		tokenAuth:                  jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(userID string, email string, role user.Role) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"user_id": userID,
		"email":   email,
		"role":    string(role),
		"type":    "access",
		"exp":     expiresAt,
	})
	return tokenString, expiresAt, err
}

func (j *JWTService) GenerateRefreshToken(userID string) (token string, jti string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.refreshTokenExpirationTime)
	if err != nil {
		return "", "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	// jti makes every refresh token unique so revocation targets a
	// single session, not all of the user's sessions.
	jti = uuid.New().String()
	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"user_id": userID,
		"jti":     jti,
		"exp":     expiresAt,
		"type":    "refresh",
	})
	return tokenString, jti, expiresAt, err
}

// ParseRefreshToken verifies the signature and expiry of a refresh
// token and extracts its subject and session id.
func (j *JWTService) ParseRefreshToken(token string) (userID string, jti string, err error) {
	parsed, err := j.tokenAuth.Decode(token)
	if err != nil {
		return "", "", err
	}
	if err := jwt.Validate(parsed, jwt.WithAcceptableSkew(30*time.Second)); err != nil {
		return "", "", err
	}

	claims, err := parsed.AsMap(context.Background())
	if err != nil {
		return "", "", err
	}

	tokenType, _ := claims["type"].(string)
	if tokenType != "refresh" {
		return "", "", errors.New("not a refresh token")
	}

	userID, _ = claims["user_id"].(string)
	jti, _ = claims["jti"].(string)
	if userID == "" || jti == "" {
		return "", "", errors.New("refresh token missing claims")
	}

	return userID, jti, nil
}

func (j *JWTService) RefreshTokenCookie(token string, expiresAt int64) *http.Cookie {
	return &http.Cookie{
		Name:     "refresh_token",
		Value:    token,
		Path:     "/api/v1/auth",
		Expires:  time.Unix(expiresAt, 0),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteStrictMode,
	}
}
