package geojson

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"housing-dashboard-service/internal/core/domain"
)

func TestMapService_ReadyGate(t *testing.T) {
	svc := NewMapService()
	assert.False(t, svc.Ready())

	svc.SetReady(true)
	assert.True(t, svc.Ready())
}

func TestMapService_MarkerLifecycle(t *testing.T) {
	svc := NewMapService()
	svc.SetReady(true)

	marker := domain.Marker{
		ID:          "p1",
		Coordinates: domain.Coordinates{Latitude: 50.45, Longitude: 30.52},
		Icon:        "home",
	}

	require.NoError(t, svc.AddMarker(marker))
	assert.Equal(t, 1, svc.MarkerCount())

	require.NoError(t, svc.RemoveMarker("p1"))
	assert.Equal(t, 0, svc.MarkerCount())
}

func TestMapService_FeatureCollection(t *testing.T) {
	svc := NewMapService()
	svc.SetReady(true)

	require.NoError(t, svc.AddMarker(domain.Marker{
		ID:          "p2",
		Coordinates: domain.Coordinates{Latitude: 51.0, Longitude: 31.0},
		Icon:        "building",
		Popup:       domain.MarkerPopup{Title: "Apartment", PriceLabel: "$250,000"},
	}))
	require.NoError(t, svc.AddMarker(domain.Marker{
		ID:          "p1",
		Coordinates: domain.Coordinates{Latitude: 50.45, Longitude: 30.52},
		Icon:        "home",
		Popup:       domain.MarkerPopup{Title: "House", PriceLabel: "$450,000"},
	}))
	require.NoError(t, svc.FitBounds(domain.Bounds{MinLat: 50.45, MinLng: 30.52, MaxLat: 51.0, MaxLng: 31.0}, 0.1))

	raw, err := svc.FeatureCollection()
	require.NoError(t, err)

	var fc struct {
		Type     string `json:"type"`
		Features []struct {
			Geometry struct {
				Coordinates []float64 `json:"coordinates"`
			} `json:"geometry"`
			Properties map[string]interface{} `json:"properties"`
		} `json:"features"`
		Viewport *struct {
			MinLat  float64 `json:"minLat"`
			Padding float64 `json:"padding"`
		} `json:"viewport"`
	}
	require.NoError(t, json.Unmarshal(raw, &fc))

	assert.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, 2)

	// Стабильный порядок по ID, координаты в порядке [lng, lat]
	assert.Equal(t, "p1", fc.Features[0].Properties["id"])
	assert.Equal(t, []float64{30.52, 50.45}, fc.Features[0].Geometry.Coordinates)
	assert.Equal(t, "$450,000", fc.Features[0].Properties["price"])

	require.NotNil(t, fc.Viewport)
	assert.Equal(t, 50.45, fc.Viewport.MinLat)
	assert.Equal(t, 0.1, fc.Viewport.Padding)
}
