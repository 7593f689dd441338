package domain

import (
	"fmt"
)

// MarkerPopup - содержимое всплывающей карточки маркера.
type MarkerPopup struct {
	Title       string
	PriceLabel  string
	Summary     string // кровати/ванные/площадь одной строкой
	Description string
	Thumbnail   string
}

// Marker - пин на карте. ID совпадает с ID объекта, Icon подбирается по типу.
type Marker struct {
	ID          string
	Coordinates Coordinates
	Icon        string
	Popup       MarkerPopup
}

// Bounds - ограничивающий прямоугольник набора маркеров.
type Bounds struct {
	MinLat float64
	MinLng float64
	MaxLat float64
	MaxLng float64
}

// Extend расширяет рамку так, чтобы она включала точку.
func (b *Bounds) Extend(c Coordinates) {
	if c.Latitude < b.MinLat {
		b.MinLat = c.Latitude
	}
	if c.Latitude > b.MaxLat {
		b.MaxLat = c.Latitude
	}
	if c.Longitude < b.MinLng {
		b.MinLng = c.Longitude
	}
	if c.Longitude > b.MaxLng {
		b.MaxLng = c.Longitude
	}
}

// NewBounds - рамка, стянутая в точку.
func NewBounds(c Coordinates) Bounds {
	return Bounds{MinLat: c.Latitude, MaxLat: c.Latitude, MinLng: c.Longitude, MaxLng: c.Longitude}
}

// markerIcons - глифы иконок по типу объекта.
var markerIcons = map[string]string{
	PropertyTypeHouse:      "home",
	PropertyTypeApartment:  "building",
	PropertyTypeVilla:      "castle",
	PropertyTypeCondo:      "city",
	PropertyTypeCommercial: "briefcase",
	PropertyTypeLand:       "map-pin",
}

// MarkerIconFor возвращает глиф для типа объекта; для неизвестного типа - общий пин.
func MarkerIconFor(propertyType string) string {
	if icon, ok := markerIcons[propertyType]; ok {
		return icon
	}
	return "map-pin"
}

// MarkerFromProperty строит маркер с попапом из карточки объекта.
// Вызывающий обязан убедиться, что координаты присутствуют.
func MarkerFromProperty(p *Property) Marker {
	thumbnail := ""
	if len(p.Images) > 0 {
		thumbnail = p.Images[0]
	}
	return Marker{
		ID:          p.ID,
		Coordinates: *p.Coordinates,
		Icon:        MarkerIconFor(p.Type),
		Popup: MarkerPopup{
			Title:       p.Title,
			PriceLabel:  FormatPrice(p.Price),
			Summary:     fmt.Sprintf("%d bd | %d ba | %.0f sqm", p.Bedrooms, p.Bathrooms, p.Area),
			Description: p.Description,
			Thumbnail:   thumbnail,
		},
	}
}

// FormatPrice - "$450,000" с разделителями тысяч.
func FormatPrice(price float64) string {
	n := int64(price)
	if n < 1000 {
		return fmt.Sprintf("$%d", n)
	}
	var parts []string
	for n > 0 {
		if n >= 1000 {
			parts = append([]string{fmt.Sprintf("%03d", n%1000)}, parts...)
		} else {
			parts = append([]string{fmt.Sprintf("%d", n%1000)}, parts...)
		}
		n /= 1000
	}
	out := parts[0]
	for _, p := range parts[1:] {
		out += "," + p
	}
	return "$" + out
}
