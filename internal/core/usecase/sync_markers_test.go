package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"housing-dashboard-service/internal/core/domain"
)

// fakeMapService записывает вызовы, чтобы проверять протокол сверки.
type fakeMapService struct {
	ready      bool
	markers    map[string]domain.Marker
	addCalls   int
	fitCalls   int
	lastBounds domain.Bounds
	lastPad    float64
}

func newFakeMapService(ready bool) *fakeMapService {
	return &fakeMapService{ready: ready, markers: make(map[string]domain.Marker)}
}

func (f *fakeMapService) Ready() bool { return f.ready }

func (f *fakeMapService) AddMarker(marker domain.Marker) error {
	f.markers[marker.ID] = marker
	f.addCalls++
	return nil
}

func (f *fakeMapService) RemoveMarker(id string) error {
	delete(f.markers, id)
	return nil
}

func (f *fakeMapService) FitBounds(bounds domain.Bounds, padding float64) error {
	f.fitCalls++
	f.lastBounds = bounds
	f.lastPad = padding
	return nil
}

func (f *fakeMapService) AddTileLayer(urlTemplate string) error { return nil }

func propertyAt(id string, lat, lng float64) domain.Property {
	return domain.Property{
		ID:          id,
		Title:       "Property " + id,
		Type:        domain.PropertyTypeHouse,
		Coordinates: &domain.Coordinates{Latitude: lat, Longitude: lng},
	}
}

func TestSyncMarkers_AddsOnlyPropertiesWithCoordinates(t *testing.T) {
	mapSvc := newFakeMapService(true)
	uc := NewSyncMarkersUseCase(mapSvc, 0.1)

	noCoords := domain.Property{ID: "p3", Title: "No location"}
	markers, err := uc.Execute(context.Background(), []domain.Property{
		propertyAt("p1", 50.45, 30.52),
		propertyAt("p2", 50.46, 30.53),
		noCoords,
	})

	require.NoError(t, err)
	assert.Len(t, markers, 2)
	assert.Len(t, mapSvc.markers, 2)
	assert.NotContains(t, mapSvc.markers, "p3")
}

func TestSyncMarkers_ShrinkingListRemovesStaleMarkers(t *testing.T) {
	mapSvc := newFakeMapService(true)
	uc := NewSyncMarkersUseCase(mapSvc, 0.1)

	full := []domain.Property{
		propertyAt("p1", 50.45, 30.52),
		propertyAt("p2", 50.46, 30.53),
		propertyAt("p3", 50.47, 30.54),
	}
	_, err := uc.Execute(context.Background(), full)
	require.NoError(t, err)
	require.Len(t, mapSvc.markers, 3)

	markers, err := uc.Execute(context.Background(), full[:1])
	require.NoError(t, err)

	assert.Len(t, markers, 1)
	assert.Len(t, mapSvc.markers, 1, "stale markers must be removed, no leaks")
	assert.Contains(t, mapSvc.markers, "p1")
}

func TestSyncMarkers_NotReadyIsNoOp(t *testing.T) {
	mapSvc := newFakeMapService(false)
	uc := NewSyncMarkersUseCase(mapSvc, 0.1)

	markers, err := uc.Execute(context.Background(), []domain.Property{propertyAt("p1", 50.45, 30.52)})

	require.NoError(t, err)
	assert.Nil(t, markers)
	assert.Empty(t, mapSvc.markers)
	assert.Zero(t, mapSvc.fitCalls)
}

func TestSyncMarkers_FitsBoundsAroundMarkers(t *testing.T) {
	mapSvc := newFakeMapService(true)
	uc := NewSyncMarkersUseCase(mapSvc, 0.25)

	_, err := uc.Execute(context.Background(), []domain.Property{
		propertyAt("p1", 50.0, 30.0),
		propertyAt("p2", 51.0, 31.0),
	})
	require.NoError(t, err)

	require.Equal(t, 1, mapSvc.fitCalls)
	assert.Equal(t, 0.25, mapSvc.lastPad)
	assert.Equal(t, 50.0, mapSvc.lastBounds.MinLat)
	assert.Equal(t, 51.0, mapSvc.lastBounds.MaxLat)
	assert.Equal(t, 30.0, mapSvc.lastBounds.MinLng)
	assert.Equal(t, 31.0, mapSvc.lastBounds.MaxLng)
}

func TestSyncMarkers_EmptyListDoesNotTouchViewport(t *testing.T) {
	mapSvc := newFakeMapService(true)
	uc := NewSyncMarkersUseCase(mapSvc, 0.1)

	_, err := uc.Execute(context.Background(), []domain.Property{propertyAt("p1", 50.0, 30.0)})
	require.NoError(t, err)
	require.Equal(t, 1, mapSvc.fitCalls)

	markers, err := uc.Execute(context.Background(), nil)
	require.NoError(t, err)

	assert.Empty(t, markers)
	assert.Empty(t, mapSvc.markers)
	assert.Equal(t, 1, mapSvc.fitCalls, "empty set must not move the viewport")
}

func TestSyncMarkers_RerunIsIdempotent(t *testing.T) {
	mapSvc := newFakeMapService(true)
	uc := NewSyncMarkersUseCase(mapSvc, 0.1)

	props := []domain.Property{propertyAt("p1", 50.0, 30.0)}

	_, err := uc.Execute(context.Background(), props)
	require.NoError(t, err)
	addsAfterFirst := mapSvc.addCalls

	_, err = uc.Execute(context.Background(), props)
	require.NoError(t, err)

	assert.Equal(t, addsAfterFirst, mapSvc.addCalls, "unchanged markers are not re-added")
}

func TestClusterMarkers(t *testing.T) {
	markers := []domain.Marker{
		{ID: "a", Coordinates: domain.Coordinates{Latitude: 50.4501, Longitude: 30.5234}},
		{ID: "b", Coordinates: domain.Coordinates{Latitude: 50.4502, Longitude: 30.5235}},
		{ID: "c", Coordinates: domain.Coordinates{Latitude: -33.8688, Longitude: 151.2093}},
	}

	clusters := ClusterMarkers(markers, 5)

	require.Len(t, clusters, 2)
	var big domain.MarkerCluster
	for _, c := range clusters {
		if c.Count == 2 {
			big = c
		}
	}
	require.Equal(t, 2, big.Count)
	assert.Equal(t, []string{"a", "b"}, big.MarkerIDs)
	assert.InDelta(t, 50.45015, big.Center.Latitude, 0.0001)
}
