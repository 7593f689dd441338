package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"housing-dashboard-service/internal/core/domain"
)

type fakePropertyBackend struct {
	properties []domain.Property
	owned      map[string][]domain.Property
}

func (f *fakePropertyBackend) GetAll(ctx context.Context) ([]domain.Property, error) {
	return f.properties, nil
}

func (f *fakePropertyBackend) GetByUser(ctx context.Context, userID string) ([]domain.Property, error) {
	return f.owned[userID], nil
}

func TestListProperties_AppliesFilters(t *testing.T) {
	backend := &fakePropertyBackend{properties: []domain.Property{
		{ID: "1", Title: "Sunset Villa", Type: "villa", Price: 450000},
		{ID: "2", Title: "City Apartment", Type: "apartment", Price: 250000},
		{ID: "3", Title: "Villa Verde", Type: "villa", Price: 700000},
	}}

	uc := NewListPropertiesUseCase(backend)

	result, err := uc.Execute(context.Background(), "", domain.PropertyFilters{Search: "villa", PriceRange: "300k-600k"})
	require.NoError(t, err)

	require.Len(t, result, 1)
	assert.Equal(t, "1", result[0].ID)
}

func TestListProperties_OwnedOnly(t *testing.T) {
	backend := &fakePropertyBackend{
		properties: []domain.Property{
			{ID: "1", Title: "Sunset Villa"},
			{ID: "2", Title: "City Apartment"},
		},
		owned: map[string][]domain.Property{
			"user-1": {{ID: "2", Title: "City Apartment"}},
		},
	}

	uc := NewListPropertiesUseCase(backend)

	result, err := uc.Execute(context.Background(), "user-1", domain.PropertyFilters{})
	require.NoError(t, err)

	require.Len(t, result, 1)
	assert.Equal(t, "2", result[0].ID)
}

func TestFilterProperties_NoActiveFiltersReturnsEverything(t *testing.T) {
	properties := []domain.Property{
		{ID: "1", Title: "Sunset Villa"},
		{ID: "2"}, // без полей, которые мог бы требовать активный фильтр
	}

	result := FilterProperties(properties, domain.PropertyFilters{})

	assert.Equal(t, properties, result)
}

func TestFilterProperties_SearchMatchesTitleCaseInsensitive(t *testing.T) {
	properties := []domain.Property{
		{ID: "1", Title: "Luxury Villa in Beverly Hills", Price: 2500000},
		{ID: "2", Title: "Modern Downtown Apartment", Price: 800000},
	}

	result := FilterProperties(properties, domain.PropertyFilters{Search: "villa"})

	require.Len(t, result, 1)
	assert.Equal(t, "1", result[0].ID)
}

func TestFilterProperties_Idempotent(t *testing.T) {
	properties := []domain.Property{
		{ID: "1", Title: "Sunset Villa", Price: 450000},
		{ID: "2", Title: "City Apartment", Price: 250000},
	}
	filters := domain.PropertyFilters{Search: "villa"}

	once := FilterProperties(properties, filters)
	twice := FilterProperties(once, filters)

	assert.Equal(t, once, twice)
	assert.Len(t, properties, 2, "input slice is not mutated")
}

func TestFilterProperties_PreservesOrder(t *testing.T) {
	properties := []domain.Property{
		{ID: "3", Title: "Villa C", Price: 1},
		{ID: "1", Title: "Villa A", Price: 2},
		{ID: "2", Title: "Villa B", Price: 3},
	}

	result := FilterProperties(properties, domain.PropertyFilters{Search: "villa"})

	require.Len(t, result, 3)
	assert.Equal(t, "3", result[0].ID)
	assert.Equal(t, "1", result[1].ID)
	assert.Equal(t, "2", result[2].ID)
}
