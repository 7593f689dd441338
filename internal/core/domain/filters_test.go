package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeProperty(id, title, status, ptype, region string, price float64, bedrooms int) Property {
	return Property{
		ID:       id,
		Title:    title,
		Address:  "12 Main Street",
		Status:   status,
		Type:     ptype,
		Region:   region,
		Price:    price,
		Bedrooms: bedrooms,
	}
}

func TestPropertyFilters_Matches(t *testing.T) {
	tests := []struct {
		name     string
		filters  PropertyFilters
		property Property
		want     bool
	}{
		{
			name:     "no active filters matches everything",
			filters:  PropertyFilters{},
			property: makeProperty("1", "Sunset Villa", "available", "villa", "north", 450000, 3),
			want:     true,
		},
		{
			name:     "search matches title case-insensitively",
			filters:  PropertyFilters{Search: "villa"},
			property: makeProperty("1", "Sunset Villa", "available", "villa", "north", 450000, 3),
			want:     true,
		},
		{
			name:     "search matches address",
			filters:  PropertyFilters{Search: "main street"},
			property: makeProperty("1", "Sunset Villa", "available", "villa", "north", 450000, 3),
			want:     true,
		},
		{
			name:     "search misses both fields",
			filters:  PropertyFilters{Search: "penthouse"},
			property: makeProperty("1", "Sunset Villa", "available", "villa", "north", 450000, 3),
			want:     false,
		},
		{
			name:     "status compared case-insensitively",
			filters:  PropertyFilters{Status: "Available"},
			property: makeProperty("1", "Sunset Villa", "available", "villa", "north", 450000, 3),
			want:     true,
		},
		{
			name:     "all predicates are ANDed",
			filters:  PropertyFilters{Search: "villa", Type: "villa", Region: "south"},
			property: makeProperty("1", "Sunset Villa", "available", "villa", "north", 450000, 3),
			want:     false,
		},
		{
			name:     "missing status fails an active status filter",
			filters:  PropertyFilters{Status: "available"},
			property: makeProperty("1", "Sunset Villa", "", "villa", "north", 450000, 3),
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filters.Matches(&tt.property))
		})
	}
}

func TestPropertyFilters_PriceBuckets(t *testing.T) {
	filters := PropertyFilters{PriceRange: "300k-600k"}

	inBucket := makeProperty("1", "A", "", "", "", 450000, 2)
	belowBucket := makeProperty("2", "B", "", "", "", 250000, 2)
	aboveBucket := makeProperty("3", "C", "", "", "", 700000, 2)
	onLowerBound := makeProperty("4", "D", "", "", "", 300000, 2)

	assert.True(t, filters.Matches(&inBucket))
	assert.False(t, filters.Matches(&belowBucket))
	assert.False(t, filters.Matches(&aboveBucket))
	assert.True(t, filters.Matches(&onLowerBound), "lower bound is inclusive")

	openEnded := PropertyFilters{PriceRange: "1m+"}
	expensive := makeProperty("5", "E", "", "", "", 2500000, 2)
	assert.True(t, openEnded.Matches(&expensive), "open-ended bucket has no upper bound")

	unknown := PropertyFilters{PriceRange: "100k-200k"}
	assert.False(t, unknown.Matches(&inBucket), "unknown bucket matches nothing")
}

func TestPriceBucketBounds(t *testing.T) {
	lo, hi, ok := PriceBucketBounds("600k-1m")
	require.True(t, ok)
	assert.Equal(t, 600000.0, lo)
	assert.Equal(t, 1000000.0, hi)

	_, hi, ok = PriceBucketBounds("600k+")
	require.True(t, ok)
	assert.Equal(t, 0.0, hi, "zero upper bound means unbounded")

	_, _, ok = PriceBucketBounds("nonsense")
	assert.False(t, ok)
}

func TestPropertyFilters_Bedrooms(t *testing.T) {
	openEnded := PropertyFilters{Bedrooms: "4+"}

	three := makeProperty("1", "A", "", "", "", 100000, 3)
	four := makeProperty("2", "B", "", "", "", 100000, 4)
	six := makeProperty("3", "C", "", "", "", 100000, 6)

	assert.False(t, openEnded.Matches(&three))
	assert.True(t, openEnded.Matches(&four))
	assert.True(t, openEnded.Matches(&six))

	exact := PropertyFilters{Bedrooms: "2"}
	two := makeProperty("4", "D", "", "", "", 100000, 2)
	assert.True(t, exact.Matches(&two))
	assert.False(t, exact.Matches(&three))

	garbage := PropertyFilters{Bedrooms: "abc"}
	assert.False(t, garbage.Matches(&two))
}

func TestReportFilters_Matches(t *testing.T) {
	report := Report{
		Title:       "Quarterly Sales Overview",
		Description: "Aggregated sales figures",
		Category:    ReportCategorySales,
	}

	assert.True(t, ReportFilters{}.Matches(&report))
	assert.True(t, ReportFilters{Search: "quarterly"}.Matches(&report))
	assert.True(t, ReportFilters{Category: "Sales"}.Matches(&report))
	assert.False(t, ReportFilters{Category: ReportCategoryFinancial}.Matches(&report))
	assert.False(t, ReportFilters{Search: "ownership"}.Matches(&report))
}
