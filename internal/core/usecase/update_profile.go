package usecase

import (
	"context"
	"strings"

	"housing-dashboard-service/internal/contextkeys"
	"housing-dashboard-service/internal/core/domain"
	"housing-dashboard-service/internal/core/port"
)

// UpdateProfileUseCase отправляет измененный профиль на backend и
// обновляет сессионный кэш ответом сервера.
type UpdateProfileUseCase struct {
	backend  port.ProfileBackendPort
	sessions port.SessionStorePort
}

func NewUpdateProfileUseCase(backend port.ProfileBackendPort, sessions port.SessionStorePort) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{backend: backend, sessions: sessions}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, userID string, profile domain.UserProfile) (*domain.UserProfile, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "UpdateProfile",
		"user_id":  userID,
	})

	ucLogger.Info("Use case started", nil)

	errs := domain.NewValidationError()
	if strings.TrimSpace(profile.Name) == "" {
		errs.Add("name", "name is required")
	}
	validateEmail(errs, "email", profile.Email)
	if errs.HasErrors() {
		ucLogger.Warn("Form validation failed", port.Fields{"error": errs.Error()})
		return nil, errs
	}

	token, err := uc.sessions.Token(ctx, userID)
	if err != nil {
		return nil, err
	}
	if token == "" {
		ucLogger.Warn("Session token is missing", nil)
		return nil, domain.ErrSessionMissing
	}
	ctx = contextkeys.ContextWithAuthToken(ctx, token)

	profile.ID = userID
	updated, err := uc.backend.Update(ctx, &profile)
	if err != nil {
		ucLogger.Error("Backend returned an error", err, nil)
		return nil, err
	}

	if err := uc.sessions.SaveProfile(ctx, userID, updated); err != nil {
		// Кэш обновить не удалось, но запись на backend прошла.
		// Отдаем успех, следующий логин перезапишет кэш.
		ucLogger.Warn("Failed to refresh cached profile", port.Fields{"error": err.Error()})
	}

	ucLogger.Info("Use case finished successfully", nil)
	return updated, nil
}
