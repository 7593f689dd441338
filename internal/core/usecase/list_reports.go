package usecase

import (
	"context"

	"housing-dashboard-service/internal/contextkeys"
	"housing-dashboard-service/internal/core/domain"
	"housing-dashboard-service/internal/core/port"
)

type ListReportsUseCase struct {
	backend port.ReportBackendPort
}

func NewListReportsUseCase(backend port.ReportBackendPort) *ListReportsUseCase {
	return &ListReportsUseCase{backend: backend}
}

// Execute загружает отчеты и применяет фильтры по категории и поиску.
func (uc *ListReportsUseCase) Execute(ctx context.Context, filters domain.ReportFilters) ([]domain.Report, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ListReports",
		"filters":  filters,
	})

	ucLogger.Info("Use case started", nil)

	reports, err := uc.backend.GetAll(ctx)
	if err != nil {
		ucLogger.Error("Backend returned an error", err, nil)
		return nil, err
	}

	filtered := make([]domain.Report, 0, len(reports))
	for i := range reports {
		if filters.Matches(&reports[i]) {
			filtered = append(filtered, reports[i])
		}
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_fetched": len(reports),
		"total_matched": len(filtered),
	})
	return filtered, nil
}
