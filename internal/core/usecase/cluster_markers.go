package usecase

import (
	"sort"

	"github.com/mmcloughlin/geohash"

	"housing-dashboard-service/internal/core/domain"
)

// ClusterMarkers группирует маркеры по geohash-ячейкам заданной точности.
// На мелких зумах выдавать сотни пинов бессмысленно, клиент просит
// агрегированный слой. Результат отсортирован по geohash - детерминирован
// для одного и того же входа.
func ClusterMarkers(markers []domain.Marker, precision uint) []domain.MarkerCluster {
	if precision == 0 {
		precision = 5
	}

	cells := make(map[string][]domain.Marker)
	for _, marker := range markers {
		cell := geohash.EncodeWithPrecision(marker.Coordinates.Latitude, marker.Coordinates.Longitude, precision)
		cells[cell] = append(cells[cell], marker)
	}

	clusters := make([]domain.MarkerCluster, 0, len(cells))
	for cell, members := range cells {
		var sumLat, sumLng float64
		ids := make([]string, 0, len(members))
		for _, m := range members {
			sumLat += m.Coordinates.Latitude
			sumLng += m.Coordinates.Longitude
			ids = append(ids, m.ID)
		}
		sort.Strings(ids)

		clusters = append(clusters, domain.MarkerCluster{
			Geohash: cell,
			Count:   len(members),
			Center: domain.Coordinates{
				Latitude:  sumLat / float64(len(members)),
				Longitude: sumLng / float64(len(members)),
			},
			MarkerIDs: ids,
		})
	}

	sort.Slice(clusters, func(i, j int) bool { return clusters[i].Geohash < clusters[j].Geohash })
	return clusters
}
