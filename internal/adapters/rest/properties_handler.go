package rest

import (
	"net/http"
	"strconv"

	"housing-dashboard-service/internal/contextkeys"
	"housing-dashboard-service/internal/core/domain"
	"housing-dashboard-service/internal/core/port"
	"housing-dashboard-service/internal/core/port/usecases_port"
	"housing-dashboard-service/internal/core/usecase"
)

// markerView отдает текущее состояние карты в виде GeoJSON.
type markerView interface {
	FeatureCollection() ([]byte, error)
}

type PropertiesHandler struct {
	listUC  usecases_port.ListPropertiesUseCase
	syncUC  usecases_port.SyncMarkersUseCase
	mapView markerView
}

func NewPropertiesHandler(listUC usecases_port.ListPropertiesUseCase, syncUC usecases_port.SyncMarkersUseCase, mapView markerView) *PropertiesHandler {
	return &PropertiesHandler{listUC: listUC, syncUC: syncUC, mapView: mapView}
}

// filtersFromQuery собирает PropertyFilters из query-параметров.
// Отсутствующий параметр - отсутствующий фильтр.
func filtersFromQuery(r *http.Request) domain.PropertyFilters {
	q := r.URL.Query()
	return domain.PropertyFilters{
		Search:     q.Get("search"),
		Status:     q.Get("status"),
		Type:       q.Get("type"),
		Region:     q.Get("region"),
		PriceRange: q.Get("priceRange"),
		Bedrooms:   q.Get("bedrooms"),
	}
}

// ListProperties обрабатывает GET /api/v1/properties
func (h *PropertiesHandler) ListProperties(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListProperties"})

	ownedBy := ""
	if r.URL.Query().Get("mine") == "true" {
		ownedBy = contextkeys.UserIDFromContext(r.Context())
	}

	filters := filtersFromQuery(r)
	properties, err := h.listUC.Execute(r.Context(), ownedBy, filters)
	if err != nil {
		logger.Error("List properties use case failed", err, nil)
		RespondWithDomainError(w, err)
		return
	}

	// Пустой результат - валидный ответ, отдаем пустой массив
	response := make([]PropertyResponse, 0, len(properties))
	for i := range properties {
		response = append(response, propertyToResponse(&properties[i]))
	}
	RespondWithJSON(w, http.StatusOK, response)
}

// GetMarkers обрабатывает GET /api/v1/properties/markers.
// Прогоняет отфильтрованный список через синхронизатор и возвращает
// либо GeoJSON-слой карты, либо агрегированные кластеры (?cluster=N).
func (h *PropertiesHandler) GetMarkers(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetMarkers"})

	filters := filtersFromQuery(r)
	properties, err := h.listUC.Execute(r.Context(), "", filters)
	if err != nil {
		logger.Error("List properties use case failed", err, nil)
		RespondWithDomainError(w, err)
		return
	}

	markers, err := h.syncUC.Execute(r.Context(), properties)
	if err != nil {
		logger.Error("Sync markers use case failed", err, nil)
		RespondWithDomainError(w, err)
		return
	}

	if clusterParam := r.URL.Query().Get("cluster"); clusterParam != "" {
		precision, err := strconv.Atoi(clusterParam)
		if err != nil || precision < 1 || precision > 12 {
			WriteJSONError(w, http.StatusBadRequest, "cluster must be a geohash precision between 1 and 12")
			return
		}

		clusters := usecase.ClusterMarkers(markers, uint(precision))
		response := make([]MarkerClusterResponse, 0, len(clusters))
		for _, cluster := range clusters {
			response = append(response, MarkerClusterResponse{
				Geohash: cluster.Geohash,
				Count:   cluster.Count,
				Center: CoordinatesDTO{
					Latitude:  cluster.Center.Latitude,
					Longitude: cluster.Center.Longitude,
				},
				MarkerIDs: cluster.MarkerIDs,
			})
		}
		RespondWithJSON(w, http.StatusOK, response)
		return
	}

	collection, err := h.mapView.FeatureCollection()
	if err != nil {
		logger.Error("Failed to serialize feature collection", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to build map layer")
		return
	}

	w.Header().Set("Content-Type", "application/geo+json")
	w.WriteHeader(http.StatusOK)
	w.Write(collection)
}
