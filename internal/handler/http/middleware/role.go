package middleware

import (
	"net/http"

	"github.com/stafftrack/activity-backend-go/internal/domain/user"
	"github.com/stafftrack/activity-backend-go/internal/handler/http/response"
)

// HROnly restricts a route group to sessions with the hr role.
func HROnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := SessionFromContext(r.Context())
		if !ok {
			response.Unauthorized(w, "Authentication required")
			return
		}

		if session.Role != user.RoleHR {
			response.Forbidden(w, user.ErrHRAccessRequired.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}
