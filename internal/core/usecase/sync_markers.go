package usecase

import (
	"context"
	"sort"
	"sync"

	"housing-dashboard-service/internal/contextkeys"
	"housing-dashboard-service/internal/core/domain"
	"housing-dashboard-service/internal/core/port"
)

// SyncMarkersUseCase приводит маркеры на карте в соответствие с
// отфильтрованным списком объектов. Хранит набор управляемых ID между
// вызовами: при сужении списка лишние маркеры снимаются, утечек нет.
type SyncMarkersUseCase struct {
	mapService port.MapServicePort
	padding    float64

	mu      sync.Mutex
	tracked map[string]domain.Marker
}

func NewSyncMarkersUseCase(mapService port.MapServicePort, padding float64) *SyncMarkersUseCase {
	return &SyncMarkersUseCase{
		mapService: mapService,
		padding:    padding,
		tracked:    make(map[string]domain.Marker),
	}
}

// Execute выполняет один цикл сверки. Объекты без координат пропускаются
// молча. Пока карта не готова - no-op, состояние не трогаем, при следующем
// вызове сверка отработает полностью.
func (uc *SyncMarkersUseCase) Execute(ctx context.Context, properties []domain.Property) ([]domain.Marker, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SyncMarkers",
		"input":    len(properties),
	})

	if !uc.mapService.Ready() {
		ucLogger.Warn("Map service is not ready, skipping sync", nil)
		return nil, nil
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	desired := make(map[string]domain.Marker, len(properties))
	for i := range properties {
		p := &properties[i]
		if !p.HasCoordinates() {
			continue
		}
		marker := domain.MarkerFromProperty(p)
		desired[marker.ID] = marker
	}

	// Шаг 1: снимаем маркеры, которых больше нет в списке
	for id := range uc.tracked {
		if _, keep := desired[id]; !keep {
			if err := uc.mapService.RemoveMarker(id); err != nil {
				ucLogger.Error("Failed to remove marker", err, port.Fields{"marker_id": id})
				return nil, err
			}
			delete(uc.tracked, id)
		}
	}

	// Шаг 2: добавляем новые и обновляем изменившиеся
	for id, marker := range desired {
		previous, exists := uc.tracked[id]
		if exists && previous == marker {
			continue
		}
		if exists {
			if err := uc.mapService.RemoveMarker(id); err != nil {
				ucLogger.Error("Failed to replace marker", err, port.Fields{"marker_id": id})
				return nil, err
			}
		}
		if err := uc.mapService.AddMarker(marker); err != nil {
			ucLogger.Error("Failed to add marker", err, port.Fields{"marker_id": id})
			return nil, err
		}
		uc.tracked[id] = marker
	}

	// Шаг 3: подгоняем вьюпорт под оставшиеся маркеры.
	// Пустой набор рамку не трогает, карта остается где была.
	markers := make([]domain.Marker, 0, len(uc.tracked))
	for _, marker := range uc.tracked {
		markers = append(markers, marker)
	}
	sort.Slice(markers, func(i, j int) bool { return markers[i].ID < markers[j].ID })

	if len(markers) > 0 {
		bounds := domain.NewBounds(markers[0].Coordinates)
		for _, marker := range markers[1:] {
			bounds.Extend(marker.Coordinates)
		}
		if err := uc.mapService.FitBounds(bounds, uc.padding); err != nil {
			ucLogger.Error("Failed to fit bounds", err, nil)
			return nil, err
		}
	}

	ucLogger.Info("Markers synchronized", port.Fields{"active_markers": len(markers)})
	return markers, nil
}
