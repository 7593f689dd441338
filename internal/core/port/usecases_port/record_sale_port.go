package usecases_port

import (
	"context"

	"housing-dashboard-service/internal/core/domain"
)

type RecordSaleUseCase interface {
	Execute(ctx context.Context, userID string, form domain.SaleForm) (*domain.Sale, error)
}

type ListSalesUseCase interface {
	Execute(ctx context.Context, ownedBy string) ([]domain.Sale, error)
}

type TransferOwnershipUseCase interface {
	Execute(ctx context.Context, userID string, form domain.TransferForm) (*domain.Transfer, error)
}
