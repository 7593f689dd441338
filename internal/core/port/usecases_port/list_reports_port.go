package usecases_port

import (
	"context"

	"housing-dashboard-service/internal/core/domain"
)

type ListReportsUseCase interface {
	Execute(ctx context.Context, filters domain.ReportFilters) ([]domain.Report, error)
}
