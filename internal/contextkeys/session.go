package contextkeys

import (
	"context"
)

type authTokenKeyType struct{}
type userIDKeyType struct{}

var (
	authTokenKey = authTokenKeyType{}
	userIDKey    = userIDKeyType{}
)

// ContextWithAuthToken помещает bearer-токен в контекст запроса.
// Токен для нас непрозрачен: мы его только переносим на вызовы backend.
func ContextWithAuthToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, authTokenKey, token)
}

// AuthTokenFromContext извлекает токен. Пустая строка - токена нет.
func AuthTokenFromContext(ctx context.Context) string {
	if token, ok := ctx.Value(authTokenKey).(string); ok {
		return token
	}
	return ""
}

// ContextWithUserID помещает идентификатор пользователя в контекст.
func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext извлекает идентификатор пользователя.
func UserIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(userIDKey).(string); ok {
		return id
	}
	return ""
}
