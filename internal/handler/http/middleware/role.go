package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/worklog-hq/timesheet-backend-go/internal/domain/user"
	"github.com/worklog-hq/timesheet-backend-go/internal/handler/http/response"
)

// IsManager reports whether the verified token carries the manager role.
func IsManager(r *http.Request) bool {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return false
	}
	roleStr, ok := claims["role"].(string)
	return ok && user.Role(roleStr) == user.RoleManager
}

// RequireManager requires manager role
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrManagerAccessRequired)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, user.ErrManagerAccessRequired)
			return
		}

		if user.Role(roleStr) != user.RoleManager {
			response.HandleError(w, user.ErrManagerAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
