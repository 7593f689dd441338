package port

import (
	"context"

	"housing-dashboard-service/internal/core/domain"
)

// Порты клиентов удаленного REST backend. По одному саб-клиенту на группу
// ресурсов; ядро не знает ни про envelope-форматы, ни про bearer-токены -
// это забота адаптера.

// PropertyBackendPort - контракт клиента группы ресурсов properties.
type PropertyBackendPort interface {
	GetAll(ctx context.Context) ([]domain.Property, error)
	GetByUser(ctx context.Context, userID string) ([]domain.Property, error)
}

// RegistrationBackendPort - контракт клиента группы housing registrations.
type RegistrationBackendPort interface {
	GetAll(ctx context.Context) ([]domain.Registration, error)
	GetByUser(ctx context.Context, userID string) ([]domain.Registration, error)
	Create(ctx context.Context, reg *domain.Registration) (*domain.Registration, error)
	Update(ctx context.Context, id string, reg *domain.Registration) (*domain.Registration, error)
	Delete(ctx context.Context, id string) error
}

// SaleBackendPort - контракт клиента группы property sales.
type SaleBackendPort interface {
	GetAll(ctx context.Context) ([]domain.Sale, error)
	GetByUser(ctx context.Context, userID string) ([]domain.Sale, error)
	Create(ctx context.Context, sale *domain.Sale) (*domain.Sale, error)
	CreateTransfer(ctx context.Context, transfer *domain.Transfer) (*domain.Transfer, error)
}

// ReportBackendPort - контракт клиента группы reports. Только чтение.
type ReportBackendPort interface {
	GetAll(ctx context.Context) ([]domain.Report, error)
}

// ProfileBackendPort - обновление профиля пользователя на backend.
type ProfileBackendPort interface {
	Update(ctx context.Context, profile *domain.UserProfile) (*domain.UserProfile, error)
}
