package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/hrworks/hr-backend-go/internal/domain/auth"
	"github.com/hrworks/hr-backend-go/internal/domain/user"
	"github.com/hrworks/hr-backend-go/internal/handler/http/response"
)

func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// PrincipalFromContext extracts the acting principal from verified
// token claims. Handlers call this after AuthRequired has run.
func PrincipalFromContext(r *http.Request) (auth.Principal, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return auth.Principal{}, auth.ErrUnauthenticated
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return auth.Principal{}, auth.ErrInvalidToken
	}

	roleStr, ok := claims["role"].(string)
	if !ok {
		return auth.Principal{}, auth.ErrInvalidToken
	}
	role, ok := user.ParseRole(roleStr)
	if !ok {
		return auth.Principal{}, auth.ErrInvalidToken
	}

	return auth.Principal{ID: userID, Role: role}, nil
}
