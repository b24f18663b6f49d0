package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/hrworks/hr-backend-go/internal/domain/auth"
	"github.com/hrworks/hr-backend-go/internal/handler/http/middleware"
	"github.com/hrworks/hr-backend-go/internal/handler/http/response"
	"github.com/hrworks/hr-backend-go/internal/pkg/jwt"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	LoginWithGoogle(w http.ResponseWriter, r *http.Request)
	OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	RefreshToken(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	jwtService  jwt.Service
	authService auth.AuthService
	frontendURL string
}

func NewAuthHandler(jwtService jwt.Service, authService auth.AuthService, frontendURL string) AuthHandler {
	return &AuthHandlerImpl{
		jwtService:  jwtService,
		authService: authService,
		frontendURL: frontendURL,
	}
}

// Register implements AuthHandler.
func (a *AuthHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var registerReq auth.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&registerReq); err != nil {
		slog.Error("Register decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := registerReq.Validate(); err != nil {
		slog.Error("Register validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	userResponse, err := a.authService.Register(r.Context(), registerReq)
	if err != nil {
		slog.Error("Register service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("User registered successfully", "user_id", userResponse.ID)
	response.Created(w, "User registered successfully", userResponse)
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := loginReq.Validate(); err != nil {
		slog.Error("Login validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	var sessionTrackReq auth.SessionTrackingRequest
	sessionTrackReq.IPAddress = r.RemoteAddr
	sessionTrackReq.UserAgent = r.UserAgent()
	tokenResponse, err := a.authService.Login(r.Context(), loginReq, sessionTrackReq)
	if err != nil {
		slog.Error("Login service error", "error", err)
		response.HandleError(w, err)
		return
	}

	refreshTokenCookie := a.jwtService.RefreshTokenCookie(tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn)
	http.SetCookie(w, refreshTokenCookie)
	slog.Info("User logged in successfully")
	response.SuccessWithMessage(w, "User logged in successfully", tokenResponse)
}

// LoginWithGoogle implements AuthHandler.
func (a *AuthHandlerImpl) LoginWithGoogle(w http.ResponseWriter, r *http.Request) {
	redirectURL, err := a.authService.LoginWithGoogle(r.Context())
	if err != nil {
		slog.Error("LoginWithGoogle service error", "error", err)
		response.HandleError(w, err)
		return
	}

	http.Redirect(w, r, redirectURL, http.StatusTemporaryRedirect)
}

// OAuthCallbackGoogle implements AuthHandler.
func (a *AuthHandlerImpl) OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request) {
	state := r.URL.Query().Get("state")
	code := r.URL.Query().Get("code")

	var sessionTrackReq auth.SessionTrackingRequest
	sessionTrackReq.IPAddress = r.RemoteAddr
	sessionTrackReq.UserAgent = r.UserAgent()

	tokenResponse, err := a.authService.OAuthCallbackGoogle(r.Context(), state, code, sessionTrackReq)
	if err != nil {
		slog.Error("OAuthCallbackGoogle service error", "error", err)
		failureURL := fmt.Sprintf("%s/login?error=%s", a.frontendURL, url.QueryEscape("google_login_failed"))
		http.Redirect(w, r, failureURL, http.StatusTemporaryRedirect)
		return
	}

	refreshTokenCookie := a.jwtService.RefreshTokenCookie(tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn)
	http.SetCookie(w, refreshTokenCookie)

	successURL := fmt.Sprintf("%s/login/success?access_token=%s", a.frontendURL, url.QueryEscape(tokenResponse.AccessToken))
	http.Redirect(w, r, successURL, http.StatusTemporaryRedirect)
}

// RefreshToken implements AuthHandler. The token comes from the cookie
// set at login, with a JSON body fallback for non-browser clients.
func (a *AuthHandlerImpl) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var refreshReq auth.RefreshTokenRequest

	if cookie, err := r.Cookie("refresh_token"); err == nil {
		refreshReq.RefreshToken = cookie.Value
	} else {
		if err := json.NewDecoder(r.Body).Decode(&refreshReq); err != nil {
			slog.Error("RefreshToken decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	if err := refreshReq.Validate(); err != nil {
		slog.Error("RefreshToken validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	accessTokenResponse, err := a.authService.RefreshToken(r.Context(), refreshReq)
	if err != nil {
		slog.Error("RefreshToken service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, accessTokenResponse)
}

// Logout implements AuthHandler.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	var refreshReq auth.RefreshTokenRequest

	if cookie, err := r.Cookie("refresh_token"); err == nil {
		refreshReq.RefreshToken = cookie.Value
	} else {
		if err := json.NewDecoder(r.Body).Decode(&refreshReq); err != nil {
			slog.Error("Logout decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	if err := a.authService.Logout(r.Context(), refreshReq); err != nil {
		slog.Error("Logout service error", "error", err)
		response.HandleError(w, err)
		return
	}

	expiredCookie := a.jwtService.RefreshTokenCookie("", 0)
	http.SetCookie(w, expiredCookie)
	response.SuccessWithMessage(w, "Logged out successfully", nil)
}

// Me implements AuthHandler.
func (a *AuthHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	userResponse, err := a.authService.Me(r.Context(), principal)
	if err != nil {
		slog.Error("Me service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, userResponse)
}
