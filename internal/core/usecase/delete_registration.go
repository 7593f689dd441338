package usecase

import (
	"context"

	"housing-dashboard-service/internal/contextkeys"
	"housing-dashboard-service/internal/core/domain"
	"housing-dashboard-service/internal/core/port"
)

// DeleteRegistrationUseCase - удаление заявки. Деструктивная операция,
// без явного подтверждения не выполняется.
type DeleteRegistrationUseCase struct {
	backend  port.RegistrationBackendPort
	sessions port.SessionStorePort
}

func NewDeleteRegistrationUseCase(backend port.RegistrationBackendPort, sessions port.SessionStorePort) *DeleteRegistrationUseCase {
	return &DeleteRegistrationUseCase{backend: backend, sessions: sessions}
}

func (uc *DeleteRegistrationUseCase) Execute(ctx context.Context, userID, registrationID string, confirmed bool) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":        "DeleteRegistration",
		"user_id":         userID,
		"registration_id": registrationID,
	})

	if !confirmed {
		ucLogger.Warn("Delete requested without confirmation", nil)
		return domain.ErrConfirmationMissing
	}

	token, err := uc.sessions.Token(ctx, userID)
	if err != nil {
		return err
	}
	if token == "" {
		ucLogger.Warn("Session token is missing", nil)
		return domain.ErrSessionMissing
	}
	ctx = contextkeys.ContextWithAuthToken(ctx, token)

	if err := uc.backend.Delete(ctx, registrationID); err != nil {
		ucLogger.Error("Backend returned an error", err, nil)
		return err
	}

	ucLogger.Info("Registration deleted", nil)
	return nil
}
