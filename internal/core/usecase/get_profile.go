package usecase

import (
	"context"

	"housing-dashboard-service/internal/contextkeys"
	"housing-dashboard-service/internal/core/domain"
	"housing-dashboard-service/internal/core/port"
)

// GetProfileUseCase читает профиль из сессионного кэша. Профиль кладется
// туда при логине и при каждом успешном обновлении; отдельного
// get-эндпоинта у backend нет.
type GetProfileUseCase struct {
	sessions port.SessionStorePort
}

func NewGetProfileUseCase(sessions port.SessionStorePort) *GetProfileUseCase {
	return &GetProfileUseCase{sessions: sessions}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, userID string) (*domain.UserProfile, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetProfile",
		"user_id":  userID,
	})

	profile, err := uc.sessions.Profile(ctx, userID)
	if err != nil {
		ucLogger.Warn("Profile is not cached", port.Fields{"error": err.Error()})
		return nil, err
	}
	return profile, nil
}
