package middleware

import (
	"net/http"

	"atelier-be/internal/auth"
	"atelier-be/internal/user"
	"atelier-be/internal/utils"
)

// AuthMiddleware resolves the session token into a user context.
// Anonymous requests pass through untouched; handlers that require an
// identity check the context themselves.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := auth.ExtractAccessToken(r)
		if tokenStr == "" {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := user.ParseJWT(tokenStr)
		if err != nil {
			// Expired or tampered token: treat as anonymous.
			next.ServeHTTP(w, r)
			return
		}

		ctx := utils.SetUserContext(r.Context(), claims.UserID, claims.Email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
