package usecases_port

import (
	"context"

	"housing-dashboard-service/internal/core/domain"
)

type ListPropertiesUseCase interface {
	Execute(ctx context.Context, ownedBy string, filters domain.PropertyFilters) ([]domain.Property, error)
}
