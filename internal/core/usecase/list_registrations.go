package usecase

import (
	"context"

	"housing-dashboard-service/internal/contextkeys"
	"housing-dashboard-service/internal/core/domain"
	"housing-dashboard-service/internal/core/port"
)

type ListRegistrationsUseCase struct {
	backend port.RegistrationBackendPort
}

func NewListRegistrationsUseCase(backend port.RegistrationBackendPort) *ListRegistrationsUseCase {
	return &ListRegistrationsUseCase{backend: backend}
}

// Execute возвращает заявки. Непустой ownedBy - только заявки этого
// пользователя, иначе полный список.
func (uc *ListRegistrationsUseCase) Execute(ctx context.Context, ownedBy string) ([]domain.Registration, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ListRegistrations",
		"owned_by": ownedBy,
	})

	ucLogger.Info("Use case started", nil)

	var (
		regs []domain.Registration
		err  error
	)
	if ownedBy != "" {
		regs, err = uc.backend.GetByUser(ctx, ownedBy)
	} else {
		regs, err = uc.backend.GetAll(ctx)
	}
	if err != nil {
		ucLogger.Error("Backend returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"total": len(regs)})
	return regs, nil
}
