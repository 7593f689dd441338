package domain

import (
	"time"
)

// Статусы жизненного цикла объекта.
// Набор зависит от контекста страницы: листинг использует available/pending/rented,
// продажи - available/sold/transferred.
const (
	PropertyStatusAvailable   = "available"
	PropertyStatusPending     = "pending"
	PropertyStatusRented      = "rented"
	PropertyStatusSold        = "sold"
	PropertyStatusTransferred = "transferred"
)

// Типы (классификация) объектов - фиксированный словарь.
const (
	PropertyTypeHouse      = "house"
	PropertyTypeApartment  = "apartment"
	PropertyTypeVilla      = "villa"
	PropertyTypeCondo      = "condo"
	PropertyTypeCommercial = "commercial"
	PropertyTypeLand       = "land"
)

// Coordinates - пара координат. Инвариант: либо обе координаты присутствуют
// и числовые, либо пары нет вовсе (Property.Coordinates == nil).
// Объекты без координат никогда не рисуются на карте с "дефолтной" позицией.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Property - карточка объекта недвижимости, приходящая из backend.
// Все копии эфемерны: сервис не хранит их между запросами.
type Property struct {
	ID          string
	Title       string
	Address     string
	Coordinates *Coordinates
	Price       float64
	Bedrooms    int
	Bathrooms   int
	Area        float64
	Type        string
	Status      string
	Images      []string
	Rating      float64
	Description string
	Region      string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasCoordinates сообщает, можно ли объект наносить на карту.
func (p *Property) HasCoordinates() bool {
	return p.Coordinates != nil
}
