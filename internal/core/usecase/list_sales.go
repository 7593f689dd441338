package usecase

import (
	"context"

	"housing-dashboard-service/internal/contextkeys"
	"housing-dashboard-service/internal/core/domain"
	"housing-dashboard-service/internal/core/port"
)

type ListSalesUseCase struct {
	backend port.SaleBackendPort
}

func NewListSalesUseCase(backend port.SaleBackendPort) *ListSalesUseCase {
	return &ListSalesUseCase{backend: backend}
}

// Execute возвращает записи о продажах. Загруженный список отдается
// наружу целиком: страница продаж строится из него, а не из заглушки.
func (uc *ListSalesUseCase) Execute(ctx context.Context, ownedBy string) ([]domain.Sale, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ListSales",
		"owned_by": ownedBy,
	})

	ucLogger.Info("Use case started", nil)

	var (
		sales []domain.Sale
		err   error
	)
	if ownedBy != "" {
		sales, err = uc.backend.GetByUser(ctx, ownedBy)
	} else {
		sales, err = uc.backend.GetAll(ctx)
	}
	if err != nil {
		ucLogger.Error("Backend returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"total": len(sales)})
	return sales, nil
}
