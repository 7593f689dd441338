package port

import (
	"context"

	"housing-dashboard-service/internal/core/domain"
)

// TokenServicePort - локальная проверка bearer-токена без похода
// в сервис аутентификации.
type TokenServicePort interface {
	ValidateToken(ctx context.Context, token string) (*domain.Claims, error)
}
