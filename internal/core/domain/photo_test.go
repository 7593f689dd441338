package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhoto_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Photo
	}{
		{
			name:  "bare string URL",
			input: `"https://cdn.example.com/photos/front-view.jpg"`,
			want:  Photo{URL: "https://cdn.example.com/photos/front-view.jpg", Name: "front-view.jpg"},
		},
		{
			name:  "object with url and name",
			input: `{"url": "https://cdn.example.com/a.jpg", "name": "Фасад"}`,
			want:  Photo{URL: "https://cdn.example.com/a.jpg", Name: "Фасад"},
		},
		{
			name:  "object with path instead of url",
			input: `{"path": "https://cdn.example.com/b.jpg"}`,
			want:  Photo{URL: "https://cdn.example.com/b.jpg", Name: "b.jpg"},
		},
		{
			name:  "object without name falls back to file name",
			input: `{"url": "https://cdn.example.com/photos/kitchen.png"}`,
			want:  Photo{URL: "https://cdn.example.com/photos/kitchen.png", Name: "kitchen.png"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var photo Photo
			require.NoError(t, json.Unmarshal([]byte(tt.input), &photo))
			assert.Equal(t, tt.want, photo)
		})
	}
}

func TestNormalizePhotos_MixedRepresentations(t *testing.T) {
	raw := []json.RawMessage{
		json.RawMessage(`"https://cdn.example.com/one.jpg"`),
		json.RawMessage(`{"url": "https://cdn.example.com/two.jpg", "name": "Terrace"}`),
		json.RawMessage(`{"url": ""}`),
	}

	photos, err := NormalizePhotos(raw)
	require.NoError(t, err)
	require.Len(t, photos, 2, "empty entries are dropped")

	assert.Equal(t, "one.jpg", photos[0].Name)
	assert.Equal(t, "Terrace", photos[1].Name)
}

func TestFormFromRegistration_PreservesPhotoNames(t *testing.T) {
	reg := &Registration{
		ID:           "reg-1",
		PropertyType: PropertyTypeHouse,
		Photos: []Photo{
			{URL: "https://cdn.example.com/one.jpg", Name: "Front yard"},
			{URL: "https://cdn.example.com/two.jpg", Name: "two.jpg"},
		},
		Amenities: []string{"garden"},
	}

	form := FormFromRegistration(reg)

	require.Len(t, form.Photos, 2)
	assert.Equal(t, "Front yard", form.Photos[0].Name)
	assert.Equal(t, "two.jpg", form.Photos[1].Name)

	// Форма владеет своими слайсами, исходная запись не мутируется
	form.Photos[0].Name = "changed"
	form.Amenities = append(form.Amenities, "pool")
	assert.Equal(t, "Front yard", reg.Photos[0].Name)
	assert.Len(t, reg.Amenities, 1)
}

func TestRegistrationForm_ToggleAmenity(t *testing.T) {
	form := RegistrationForm{}

	form.ToggleAmenity("garden")
	form.ToggleAmenity("pool")
	assert.Equal(t, []string{"garden", "pool"}, form.Amenities)

	form.ToggleAmenity("garden")
	assert.Equal(t, []string{"pool"}, form.Amenities)
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$450,000", FormatPrice(450000))
	assert.Equal(t, "$1,250,000", FormatPrice(1250000))
	assert.Equal(t, "$999", FormatPrice(999))
	assert.Equal(t, "$1,000", FormatPrice(1000))
}
