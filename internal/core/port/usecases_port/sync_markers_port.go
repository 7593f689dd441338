package usecases_port

import (
	"context"

	"housing-dashboard-service/internal/core/domain"
)

type SyncMarkersUseCase interface {
	Execute(ctx context.Context, properties []domain.Property) ([]domain.Marker, error)
}
