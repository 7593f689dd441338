package usecases_port

import (
	"context"

	"housing-dashboard-service/internal/core/domain"
)

type SubmitRegistrationUseCase interface {
	Execute(ctx context.Context, userID string, form domain.RegistrationForm) (*domain.Registration, error)
}

type UpdateRegistrationUseCase interface {
	Execute(ctx context.Context, userID, registrationID string, form domain.RegistrationForm) (*domain.Registration, error)
}

type DeleteRegistrationUseCase interface {
	// confirmed - явное подтверждение деструктивной операции.
	Execute(ctx context.Context, userID, registrationID string, confirmed bool) error
}

type ListRegistrationsUseCase interface {
	Execute(ctx context.Context, ownedBy string) ([]domain.Registration, error)
}
