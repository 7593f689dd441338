package usecase

import (
	"context"
	"time"

	"housing-dashboard-service/internal/contextkeys"
	"housing-dashboard-service/internal/core/domain"
	"housing-dashboard-service/internal/core/port"
)

// TransferOwnershipUseCase - переоформление права собственности.
// Продажная часть (цены, дата) опциональна, но если присутствует,
// к ней применяются те же правила, что и к обычной продаже.
type TransferOwnershipUseCase struct {
	backend  port.SaleBackendPort
	sessions port.SessionStorePort
	gate     *submitGate
	now      func() time.Time
}

func NewTransferOwnershipUseCase(backend port.SaleBackendPort, sessions port.SessionStorePort) *TransferOwnershipUseCase {
	return &TransferOwnershipUseCase{
		backend:  backend,
		sessions: sessions,
		gate:     newSubmitGate(),
		now:      time.Now,
	}
}

func (uc *TransferOwnershipUseCase) Execute(ctx context.Context, userID string, form domain.TransferForm) (*domain.Transfer, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":        "TransferOwnership",
		"user_id":         userID,
		"registration_id": form.RegistrationID,
	})

	ucLogger.Info("Use case started", nil)

	if err := validateTransferForm(&form, uc.now()); err != nil {
		ucLogger.Warn("Form validation failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	gateKey := "transfer:" + userID
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

	transfer := &domain.Transfer{
		RegistrationID: form.RegistrationID,
		CurrentOwner:   form.CurrentOwner,
		NewOwner:       form.NewOwner,
		ListedPrice:    form.ListedPrice,
		SoldPrice:      form.SoldPrice,
		DateSold:       form.DateSold,
		Reason:         form.Reason,
	}

	created, err := uc.backend.CreateTransfer(ctx, transfer)
	if err != nil {
		ucLogger.Error("Backend returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"transfer_id": created.ID})
	return created, nil
}
