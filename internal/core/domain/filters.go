package domain

import (
	"strings"
)

// PropertyFilters - набор активных предикатов для списка объектов.
// Пустое значение любого поля означает "фильтр не задан".
// Итоговый результат - логическое И всех активных предикатов.
type PropertyFilters struct {
	// Свободный текстовый поиск: регистронезависимое вхождение подстроки
	// в заголовок или адрес.
	Search string

	Status string
	Type   string
	Region string

	// PriceRange - бакет вида "0-300k", "300k-600k", "600k+".
	// Нижняя граница включительно; открытый сверху бакет не ограничен.
	PriceRange string

	// Bedrooms - "1".."3" точное совпадение, "4+" означает >= 4.
	Bedrooms string
}

// IsZero - ни один фильтр не активен.
func (f PropertyFilters) IsZero() bool {
	return f == PropertyFilters{}
}

// Matches проверяет объект против всех активных предикатов.
// Объект, у которого отсутствует поле, требуемое активным фильтром,
// считается НЕ прошедшим (никогда не проходит "по умолчанию").
func (f PropertyFilters) Matches(p *Property) bool {
	if !matchesSearch(f.Search, p.Title, p.Address) {
		return false
	}
	if f.Status != "" && !strings.EqualFold(p.Status, f.Status) {
		return false
	}
	if f.Type != "" && !strings.EqualFold(p.Type, f.Type) {
		return false
	}
	if f.Region != "" && !strings.EqualFold(p.Region, f.Region) {
		return false
	}
	if f.PriceRange != "" {
		lo, hi, ok := PriceBucketBounds(f.PriceRange)
		if !ok {
			return false // неизвестный бакет не матчит ничего
		}
		if p.Price < lo {
			return false
		}
		if hi > 0 && p.Price > hi {
			return false
		}
	}
	if f.Bedrooms != "" && !matchesBedrooms(f.Bedrooms, p.Bedrooms) {
		return false
	}
	return true
}

// PriceBucketBounds разбирает бакет цены. hi == 0 означает "без верхней границы".
func PriceBucketBounds(bucket string) (lo, hi float64, ok bool) {
	switch bucket {
	case "0-300k":
		return 0, 300_000, true
	case "300k-600k":
		return 300_000, 600_000, true
	case "600k-1m":
		return 600_000, 1_000_000, true
	case "600k+":
		return 600_000, 0, true
	case "1m+":
		return 1_000_000, 0, true
	}
	return 0, 0, false
}

func matchesBedrooms(filter string, bedrooms int) bool {
	// "4+" - открытый сверху бакет: нижняя граница включительно, верхней нет.
	if strings.HasSuffix(filter, "+") {
		min := parseSmallInt(strings.TrimSuffix(filter, "+"))
		if min < 0 {
			return false
		}
		return bedrooms >= min
	}
	exact := parseSmallInt(filter)
	if exact < 0 {
		return false
	}
	return bedrooms == exact
}

func matchesSearch(term string, fields ...string) bool {
	term = strings.TrimSpace(term)
	if term == "" {
		return true
	}
	lower := strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), lower) {
			return true
		}
	}
	return false
}

// parseSmallInt - без strconv, чтобы не тащить обработку ошибок наверх:
// отрицательное значение означает "не число".
func parseSmallInt(s string) int {
	if s == "" {
		return -1
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return -1
		}
		n = n*10 + int(r-'0')
	}
	return n
}

// ReportFilters - предикаты для списка отчетов.
type ReportFilters struct {
	// Поиск по заголовку и описанию.
	Search   string
	Category string
}

// Matches - та же семантика AND, что и у PropertyFilters.
func (f ReportFilters) Matches(r *Report) bool {
	if !matchesSearch(f.Search, r.Title, r.Description) {
		return false
	}
	if f.Category != "" && !strings.EqualFold(r.Category, f.Category) {
		return false
	}
	return true
}
