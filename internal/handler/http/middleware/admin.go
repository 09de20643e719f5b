package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/simpeg-app/tukin-backend-go/internal/handler/http/response"
)

// AdminOnly restricts report generation and other mutating operations to
// back-office administrators.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, "Missing or invalid token")
			return
		}

		admin, ok := claims["is_admin"].(bool)
		if !admin || !ok {
			response.Forbidden(w, "Admin privilege required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
