package port

import (
	"context"

	"housing-dashboard-service/internal/core/domain"
)

// SessionStorePort - явное сессионное хранилище, замена ad-hoc чтения
// browser storage из каждого компонента. Создается один раз в composition
// root и передается явно. Политика - last writer wins, без версионирования.
type SessionStorePort interface {
	// SaveSession сохраняет токен и идентификатор пользователя, выставляет флаг аутентификации.
	SaveSession(ctx context.Context, userID, token string) error

	// Token возвращает сохраненный токен. Пустая строка - токена нет.
	Token(ctx context.Context, userID string) (string, error)

	// IsAuthenticated - выставлялся ли флаг для пользователя.
	IsAuthenticated(ctx context.Context, userID string) (bool, error)

	// SaveProfile кэширует JSON-блоб профиля.
	SaveProfile(ctx context.Context, userID string, profile *domain.UserProfile) error

	// Profile возвращает кэшированный профиль или domain.ErrNotFound.
	Profile(ctx context.Context, userID string) (*domain.UserProfile, error)

	// Clear удаляет все ключи сессии пользователя.
	Clear(ctx context.Context, userID string) error
}
