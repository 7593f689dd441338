package usecase

import (
	"context"
	"time"

	"housing-dashboard-service/internal/constants"
	"housing-dashboard-service/internal/contextkeys"
	"housing-dashboard-service/internal/core/domain"
	"housing-dashboard-service/internal/core/port"
)

// RecordSaleUseCase - фиксация факта продажи по существующей регистрации.
// Цены и дата проверяются до любого сетевого вызова.
type RecordSaleUseCase struct {
	backend  port.SaleBackendPort
	sessions port.SessionStorePort
	storage  port.ObjectStoragePort
	gate     *submitGate
	now      func() time.Time
}

func NewRecordSaleUseCase(
	backend port.SaleBackendPort,
	sessions port.SessionStorePort,
	storage port.ObjectStoragePort,
) *RecordSaleUseCase {
	return &RecordSaleUseCase{
		backend:  backend,
		sessions: sessions,
		storage:  storage,
		gate:     newSubmitGate(),
		now:      time.Now,
	}
}

func (uc *RecordSaleUseCase) Execute(ctx context.Context, userID string, form domain.SaleForm) (*domain.Sale, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":        "RecordSale",
		"user_id":         userID,
		"registration_id": form.RegistrationID,
	})

	ucLogger.Info("Use case started", nil)

	if err := validateSaleForm(&form, uc.now()); err != nil {
		ucLogger.Warn("Form validation failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	gateKey := "sale:" + userID
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
		url, err := uc.storage.Upload(ctx, constants.StorageCategorySales, pending.FileName, pending.Content)
		if err != nil {
			ucLogger.Error("Photo upload failed", err, nil)
			return nil, err
		}
		photos = append(photos, domain.Photo{URL: url, Name: pending.FileName})
	}

	sale := &domain.Sale{
		RegistrationID: form.RegistrationID,
		Seller:         form.Seller,
		Buyer:          form.Buyer,
		ListedPrice:    form.ListedPrice,
		SoldPrice:      form.SoldPrice,
		DateSold:       form.DateSold,
		Photos:         photos,
	}

	created, err := uc.backend.Create(ctx, sale)
	if err != nil {
		ucLogger.Error("Backend returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"sale_id": created.ID})
	return created, nil
}
