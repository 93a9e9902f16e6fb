package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/stafftrack/activity-backend-go/internal/domain/user"
	"github.com/stafftrack/activity-backend-go/internal/handler/http/response"
	"github.com/stafftrack/activity-backend-go/internal/pkg/jwt"
)

type contextKey string

const sessionKey contextKey = "session"

// AuthRequired verifies the JWT access token and stores the resolved
// session in the request context.
func AuthRequired(jwtService jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				response.Unauthorized(w, "Invalid or missing token")
				return
			}

			tokenType, _ := claims["type"].(string)
			if tokenType != "access" {
				response.Unauthorized(w, "Invalid token type")
				return
			}

			if jwtService.IsTokenRevoked(jwtauth.TokenFromHeader(r)) {
				response.Unauthorized(w, "Token has been revoked")
				return
			}

			session, err := sessionFromClaims(claims)
			if err != nil {
				response.Unauthorized(w, "Invalid token claims")
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sessionFromClaims(claims map[string]any) (user.Session, error) {
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return user.Session{}, jwtauth.ErrUnauthorized
	}

	role, _ := claims["role"].(string)

	var employeeID int64
	if raw, ok := claims["employee_id"]; ok {
		switch v := raw.(type) {
		case float64:
			employeeID = int64(v)
		case int64:
			employeeID = v
		}
	}

	return user.Session{
		UserID:     userID,
		EmployeeID: employeeID,
		Role:       user.ParseRole(role),
	}, nil
}

// SessionFromContext returns the authenticated session placed by
// AuthRequired. The boolean is false on routes that skip the middleware.
func SessionFromContext(ctx context.Context) (user.Session, bool) {
	session, ok := ctx.Value(sessionKey).(user.Session)
	return session, ok
}
