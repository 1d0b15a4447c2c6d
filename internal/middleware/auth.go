package middleware

import (
	"net/http"
	"strings"

	"canteen-be/internal/admin"
	"canteen-be/internal/utils"
)

// Auth extracts and verifies the bearer credential. On any failure the
// request continues with no identity attached; handlers that require an
// admin reject it there. Never a terminal response here.
func Auth(tokens *admin.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := tokens.Parse(strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := utils.WithAdmin(r.Context(), claims.AdminID, claims.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
