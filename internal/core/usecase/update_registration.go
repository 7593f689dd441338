package usecase

import (
	"context"

	"housing-dashboard-service/internal/constants"
	"housing-dashboard-service/internal/contextkeys"
	"housing-dashboard-service/internal/core/domain"
	"housing-dashboard-service/internal/core/port"
)

// UpdateRegistrationUseCase - редактирование существующей заявки.
// Уже загруженные фотографии (form.Photos) сохраняются как есть вместе
// с их отображаемыми именами, новые вложения дозагружаются в хранилище.
type UpdateRegistrationUseCase struct {
	backend  port.RegistrationBackendPort
	sessions port.SessionStorePort
	storage  port.ObjectStoragePort
	gate     *submitGate
}

func NewUpdateRegistrationUseCase(
	backend port.RegistrationBackendPort,
	sessions port.SessionStorePort,
	storage port.ObjectStoragePort,
) *UpdateRegistrationUseCase {
	return &UpdateRegistrationUseCase{
		backend:  backend,
		sessions: sessions,
		storage:  storage,
		gate:     newSubmitGate(),
	}
}

func (uc *UpdateRegistrationUseCase) Execute(ctx context.Context, userID, registrationID string, form domain.RegistrationForm) (*domain.Registration, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":        "UpdateRegistration",
		"user_id":         userID,
		"registration_id": registrationID,
	})

	ucLogger.Info("Use case started", nil)

	if err := validateRegistrationForm(&form); err != nil {
		ucLogger.Warn("Form validation failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	gateKey := "registration:" + userID + ":" + registrationID
	if err := uc.gate.begin(gateKey); err != nil {
		ucLogger.Warn("Duplicate submission rejected", nil)
		return nil, err
	}
	defer uc.gate.end(gateKey)

	token, err := uc.sessions.Token(ctx, userID)
	if err != nil {
		return nil, err
	}
	if token == "" {
		ucLogger.Warn("Session token is missing", nil)
		return nil, domain.ErrSessionMissing
	}
	ctx = contextkeys.ContextWithAuthToken(ctx, token)

	photos := make([]domain.Photo, 0, len(form.Photos)+len(form.PendingPhotos))
	photos = append(photos, form.Photos...)
	for _, pending := range form.PendingPhotos {
		url, err := uc.storage.Upload(ctx, constants.StorageCategoryRegistrations, pending.FileName, pending.Content)
		if err != nil {
			ucLogger.Error("Photo upload failed", err, nil)
			return nil, err
		}
		photos = append(photos, domain.Photo{URL: url, Name: pending.FileName})
	}

	reg := registrationFromForm(userID, &form, photos)
	updated, err := uc.backend.Update(ctx, registrationID, reg)
	if err != nil {
		ucLogger.Error("Backend returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return updated, nil
}
