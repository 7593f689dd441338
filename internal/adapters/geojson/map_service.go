package geojson

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"housing-dashboard-service/internal/core/domain"
)

// MapService - реализация MapServicePort, которая вместо рендеринга
// накапливает состояние карты и умеет отдавать его как GeoJSON
// FeatureCollection. Браузерная часть скармливает этот GeoJSON
// тайловой библиотеке без собственной логики.
type MapService struct {
	mu sync.Mutex

	ready      bool
	markers    map[string]domain.Marker
	viewport   *fittedViewport
	tileLayers []string
}

type fittedViewport struct {
	Bounds  domain.Bounds
	Padding float64
}

// NewMapService создает сервис в состоянии "не готов": готовность
// выставляется явно после подключения тайлового слоя.
func NewMapService() *MapService {
	return &MapService{
		markers: make(map[string]domain.Marker),
	}
}

// SetReady управляет готовностью. Пока карта "не загружена",
// синхронизатор обязан быть no-op.
func (m *MapService) SetReady(ready bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ready = ready
}

func (m *MapService) Ready() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ready
}

func (m *MapService) AddMarker(marker domain.Marker) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if marker.ID == "" {
		return fmt.Errorf("map service: marker id is required")
	}
	m.markers[marker.ID] = marker
	return nil
}

func (m *MapService) RemoveMarker(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.markers, id)
	return nil
}

func (m *MapService) FitBounds(bounds domain.Bounds, padding float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.viewport = &fittedViewport{Bounds: bounds, Padding: padding}
	return nil
}

func (m *MapService) AddTileLayer(urlTemplate string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tileLayers = append(m.tileLayers, urlTemplate)
	return nil
}

// MarkerCount - количество маркеров на карте.
func (m *MapService) MarkerCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.markers)
}

// geoJSON-структуры. Координаты в порядке [lng, lat], как требует стандарт.
type feature struct {
	Type       string                 `json:"type"`
	Geometry   geometry               `json:"geometry"`
	Properties map[string]interface{} `json:"properties"`
}

type geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

type featureCollection struct {
	Type     string    `json:"type"`
	Features []feature `json:"features"`

	// Расширения за пределами стандарта - в bbox и properties верхнего уровня
	// не лезем, дополнительную информацию несем отдельным полем.
	Viewport *viewportJSON `json:"viewport,omitempty"`
}

type viewportJSON struct {
	MinLat  float64 `json:"minLat"`
	MinLng  float64 `json:"minLng"`
	MaxLat  float64 `json:"maxLat"`
	MaxLng  float64 `json:"maxLng"`
	Padding float64 `json:"padding"`
}

// FeatureCollection сериализует текущее состояние карты.
// Маркеры отдаются в стабильном порядке (по ID).
func (m *MapService) FeatureCollection() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]string, 0, len(m.markers))
	for id := range m.markers {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fc := featureCollection{
		Type:     "FeatureCollection",
		Features: make([]feature, 0, len(ids)),
	}
	for _, id := range ids {
		marker := m.markers[id]
		fc.Features = append(fc.Features, feature{
			Type: "Feature",
			Geometry: geometry{
				Type:        "Point",
				Coordinates: []float64{marker.Coordinates.Longitude, marker.Coordinates.Latitude},
			},
			Properties: map[string]interface{}{
				"id":          marker.ID,
				"icon":        marker.Icon,
				"title":       marker.Popup.Title,
				"price":       marker.Popup.PriceLabel,
				"summary":     marker.Popup.Summary,
				"description": marker.Popup.Description,
				"thumbnail":   marker.Popup.Thumbnail,
			},
		})
	}

	if m.viewport != nil {
		fc.Viewport = &viewportJSON{
			MinLat:  m.viewport.Bounds.MinLat,
			MinLng:  m.viewport.Bounds.MinLng,
			MaxLat:  m.viewport.Bounds.MaxLat,
			MaxLng:  m.viewport.Bounds.MaxLng,
			Padding: m.viewport.Padding,
		}
	}

	return json.Marshal(fc)
}
