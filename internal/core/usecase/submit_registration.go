package usecase

import (
	"context"

	"housing-dashboard-service/internal/constants"
	"housing-dashboard-service/internal/contextkeys"
	"housing-dashboard-service/internal/core/domain"
	"housing-dashboard-service/internal/core/port"
)

// SubmitRegistrationUseCase - отправка новой заявки на регистрацию жилья.
// Порядок жесткий: валидация формы, проверка сессии, загрузка вложений,
// и только потом создание записи. Любой сбой до create означает, что
// на backend ничего не ушло.
type SubmitRegistrationUseCase struct {
	backend  port.RegistrationBackendPort
	sessions port.SessionStorePort
	storage  port.ObjectStoragePort
	gate     *submitGate
}

func NewSubmitRegistrationUseCase(
	backend port.RegistrationBackendPort,
	sessions port.SessionStorePort,
	storage port.ObjectStoragePort,
) *SubmitRegistrationUseCase {
	return &SubmitRegistrationUseCase{
		backend:  backend,
		sessions: sessions,
		storage:  storage,
		gate:     newSubmitGate(),
	}
}

func (uc *SubmitRegistrationUseCase) Execute(ctx context.Context, userID string, form domain.RegistrationForm) (*domain.Registration, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SubmitRegistration",
		"user_id":  userID,
	})

	ucLogger.Info("Use case started", nil)

	if err := validateRegistrationForm(&form); err != nil {
		ucLogger.Warn("Form validation failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	gateKey := "registration:" + userID
	if err := uc.gate.begin(gateKey); err != nil {
		ucLogger.Warn("Duplicate submission rejected", nil)
		return nil, err
	}
	defer uc.gate.end(gateKey)

	ctx, err := uc.authorizedContext(ctx, userID)
	if err != nil {
		ucLogger.Warn("Session token is missing", nil)
		return nil, err
	}

	photos, err := uc.uploadPendingPhotos(ctx, form)
	if err != nil {
		ucLogger.Error("Photo upload failed", err, nil)
		return nil, err
	}

	reg := registrationFromForm(userID, &form, photos)
	created, err := uc.backend.Create(ctx, reg)
	if err != nil {
		ucLogger.Error("Backend returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"registration_id": created.ID})
	return created, nil
}

// authorizedContext резолвит токен из сессионного хранилища и кладет его
// в контекст для backend-клиента. Пустой токен - сессия истекла.
func (uc *SubmitRegistrationUseCase) authorizedContext(ctx context.Context, userID string) (context.Context, error) {
	token, err := uc.sessions.Token(ctx, userID)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, domain.ErrSessionMissing
	}
	return contextkeys.ContextWithAuthToken(ctx, token), nil
}

// uploadPendingPhotos заливает локальные вложения по одному, в порядке
// выбора пользователем. Итоговый список: уже существующие фото (с их
// отображаемыми именами), затем свежезагруженные.
func (uc *SubmitRegistrationUseCase) uploadPendingPhotos(ctx context.Context, form domain.RegistrationForm) ([]domain.Photo, error) {
	photos := make([]domain.Photo, 0, len(form.Photos)+len(form.PendingPhotos))
	photos = append(photos, form.Photos...)

	for _, pending := range form.PendingPhotos {
		url, err := uc.storage.Upload(ctx, constants.StorageCategoryRegistrations, pending.FileName, pending.Content)
		if err != nil {
			return nil, err
		}
		photos = append(photos, domain.Photo{URL: url, Name: pending.FileName})
	}
	return photos, nil
}

func registrationFromForm(userID string, form *domain.RegistrationForm, photos []domain.Photo) *domain.Registration {
	return &domain.Registration{
		UserID:       userID,
		PropertyType: form.PropertyType,
		Address:      form.Address,
		Region:       form.Region,
		Price:        form.Price,
		Bedrooms:     form.Bedrooms,
		Bathrooms:    form.Bathrooms,
		Area:         form.Area,
		Coordinates:  form.Coordinates,
		Owner:        form.Owner,
		Amenities:    form.Amenities,
		Description:  form.Description,
		Photos:       photos,
		Status:       domain.RegistrationStatusPending,
	}
}
