package middleware

import (
	"net/http"
	"strings"

	"github.com/shashiranjanraj/ridewithme/pkg/auth"
	"github.com/shashiranjanraj/ridewithme/pkg/response"
)

// Auth validates the bearer token and stores its claims in the request
// context. Handlers behind it read the caller via auth.ClaimsFromCtx.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

		if token == "" {
			response.Unauthorized(w)
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			response.Error(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.WithClaims(r.Context(), claims)))
	})
}
