package usecases_port

import (
	"context"

	"housing-dashboard-service/internal/core/domain"
)

type GetProfileUseCase interface {
	Execute(ctx context.Context, userID string) (*domain.UserProfile, error)
}

type UpdateProfileUseCase interface {
	Execute(ctx context.Context, userID string, profile domain.UserProfile) (*domain.UserProfile, error)
}
