package port

import (
	"housing-dashboard-service/internal/core/domain"
)

// MapServicePort - инжектируемый интерфейс картографического сервиса.
// Синхронизатор маркеров работает только через этот набор возможностей,
// поэтому его логика тестируется без реального движка рендеринга.
type MapServicePort interface {
	// Ready сообщает, загружена ли карта. Пока false - синхронизатор no-op.
	Ready() bool

	AddMarker(marker domain.Marker) error
	RemoveMarker(id string) error

	// FitBounds анимирует вьюпорт под рамку с фиксированным отступом.
	FitBounds(bounds domain.Bounds, padding float64) error

	AddTileLayer(urlTemplate string) error
}
