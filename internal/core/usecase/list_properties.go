package usecase

import (
	"context"

	"housing-dashboard-service/internal/contextkeys"
	"housing-dashboard-service/internal/core/domain"
	"housing-dashboard-service/internal/core/port"
)

type ListPropertiesUseCase struct {
	backend port.PropertyBackendPort
}

func NewListPropertiesUseCase(backend port.PropertyBackendPort) *ListPropertiesUseCase {
	return &ListPropertiesUseCase{backend: backend}
}

// Execute загружает листинги и применяет фильтры на нашей стороне.
// Backend фильтрацию не поддерживает, поэтому весь список приходит целиком.
// Непустой ownedBy ограничивает выборку объектами пользователя.
func (uc *ListPropertiesUseCase) Execute(ctx context.Context, ownedBy string, filters domain.PropertyFilters) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ListProperties",
		"filters":  filters,
	})

	ucLogger.Info("Use case started", nil)

	var properties []domain.Property
	var err error
	if ownedBy != "" {
		properties, err = uc.backend.GetByUser(ctx, ownedBy)
	} else {
		properties, err = uc.backend.GetAll(ctx)
	}
	if err != nil {
		ucLogger.Error("Backend returned an error", err, nil)
		return nil, err
	}

	filtered := FilterProperties(properties, filters)

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_fetched": len(properties),
		"total_matched": len(filtered),
	})
	return filtered, nil
}

// FilterProperties - чистая функция фильтрации. Порядок входного списка
// сохраняется, сам список не мутируется: повторное применение тех же
// фильтров дает тот же результат.
func FilterProperties(properties []domain.Property, filters domain.PropertyFilters) []domain.Property {
	if filters.IsZero() {
		return properties
	}
	result := make([]domain.Property, 0, len(properties))
	for i := range properties {
		if filters.Matches(&properties[i]) {
			result = append(result, properties[i])
		}
	}
	return result
}
