package rest

import (
	"net/http"
	"strings"

	"housing-dashboard-service/internal/contextkeys"
	"housing-dashboard-service/internal/core/port"
)

// AuthMiddleware извлекает bearer-токен из заголовка Authorization,
// проверяет подпись и кладет токен вместе с user_id в контекст запроса.
// Дальше токен уходит на backend как есть.
func AuthMiddleware(tokens port.TokenServicePort) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				WriteJSONError(w, http.StatusUnauthorized, "Authorization header is missing")
				return
			}

			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				WriteJSONError(w, http.StatusUnauthorized, "Authorization header must be a bearer token")
				return
			}

			claims, err := tokens.ValidateToken(r.Context(), token)
			if err != nil {
				WriteJSONError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			ctx := r.Context()
			ctx = contextkeys.ContextWithAuthToken(ctx, token)
			ctx = contextkeys.ContextWithUserID(ctx, claims.UserID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
