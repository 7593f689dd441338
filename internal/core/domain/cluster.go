package domain

// MarkerCluster - группа маркеров, попавших в одну geohash-ячейку.
// Center - центроид координат группы, не центр ячейки.
type MarkerCluster struct {
	Geohash   string
	Count     int
	Center    Coordinates
	MarkerIDs []string
}
