package backend_client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"housing-dashboard-service/internal/contextkeys"
	"housing-dashboard-service/internal/core/domain"
)

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := contextkeys.ContextWithAuthToken(context.Background(), "token-xyz")

	_, err := client.call(ctx, http.MethodGet, "/property_listings_routes/getall", nil)
	require.NoError(t, err)

	assert.Equal(t, "Bearer token-xyz", gotAuth)
}

func TestClient_NoTokenMeansNoHeader(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.call(context.Background(), http.MethodGet, "/x", nil)
	require.NoError(t, err)

	assert.Empty(t, gotAuth, "the request goes out as is, rejecting it is the server's job")
}

func TestClient_UnwrapsBothEnvelopeShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"data envelope", `{"data": [{"id": "p1", "title": "Villa"}]}`},
		{"bare array", `[{"id": "p1", "title": "Villa"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewPropertiesClient(NewClient(server.URL))

			properties, err := client.GetAll(context.Background())
			require.NoError(t, err)

			require.Len(t, properties, 1)
			assert.Equal(t, "p1", properties[0].ID)
			assert.Equal(t, "Villa", properties[0].Title)
		})
	}
}

func TestClient_SurfacesServerErrorTextVerbatim(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message": "Registration already has a recorded sale"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.call(context.Background(), http.MethodPost, "/x", nil)
	require.Error(t, err)

	var backendErr *domain.BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, http.StatusConflict, backendErr.StatusCode)
	assert.Equal(t, "Registration already has a recorded sale", backendErr.Message)
}

func TestClient_UnexpectedErrorWithoutMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`<html>nginx</html>`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.call(context.Background(), http.MethodGet, "/x", nil)
	assert.ErrorIs(t, err, domain.ErrBackendUnexpected)
}

func TestClient_CoordinateInvariant(t *testing.T) {
	// Объект с одной координатой из пары приходит без Coordinates вовсе
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"id": "p1", "title": "Full", "latitude": 50.45, "longitude": 30.52},
			{"id": "p2", "title": "HalfPair", "latitude": 50.45},
			{"id": "p3", "title": "None"}
		]`))
	}))
	defer server.Close()

	client := NewPropertiesClient(NewClient(server.URL))

	properties, err := client.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, properties, 3)

	assert.True(t, properties[0].HasCoordinates())
	assert.False(t, properties[1].HasCoordinates(), "half a coordinate pair is no pair")
	assert.False(t, properties[2].HasCoordinates())
}

func TestRegistrationsClient_NormalizesPolymorphicPhotos(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": [{
			"id": "reg-1",
			"userId": "user-1",
			"propertyType": "house",
			"address": "12 Main Street",
			"price": 250000,
			"ownerName": "Anna",
			"photos": [
				"https://cdn.example.com/one.jpg",
				{"url": "https://cdn.example.com/two.jpg", "name": "Terrace"}
			]
		}]}`))
	}))
	defer server.Close()

	client := NewRegistrationsClient(NewClient(server.URL))

	regs, err := client.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, regs, 1)

	require.Len(t, regs[0].Photos, 2)
	assert.Equal(t, "one.jpg", regs[0].Photos[0].Name)
	assert.Equal(t, "Terrace", regs[0].Photos[1].Name)
}

func TestRegistrationsClient_CreateRejectsContractViolation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("request must not reach the server")
	}))
	defer server.Close()

	client := NewRegistrationsClient(NewClient(server.URL))

	// Пустой ownerName нарушает схему payload'а
	reg := &domain.Registration{
		UserID:       "user-1",
		PropertyType: "house",
		Address:      "12 Main Street",
		Price:        250000,
	}

	_, err := client.Create(context.Background(), reg)
	assert.Error(t, err)
}

func TestSalesClient_TransferPayloadOmitsServerAssignedFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var payload map[string]interface{}
		require.NoError(t, json.Unmarshal(body, &payload))
		// id и createdAt назначает backend - в create-запросе их быть не должно
		assert.NotContains(t, payload, "id")
		assert.NotContains(t, payload, "createdAt")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": {"id": "tr-1", "registrationId": "reg-1", "currentOwnerName": "Anna Kovalenko", "currentOwnerPhone": "+380501112233", "newOwnerName": "Oleg Bondar", "newOwnerPhone": "+380671112233", "createdAt": "2026-08-30T10:00:00Z"}}`))
	}))
	defer server.Close()

	client := NewSalesClient(NewClient(server.URL))

	tr := &domain.Transfer{
		RegistrationID: "reg-1",
		CurrentOwner:   domain.ContactTriple{Name: "Anna Kovalenko", Phone: "+380501112233"},
		NewOwner:       domain.ContactTriple{Name: "Oleg Bondar", Phone: "+380671112233"},
	}

	created, err := client.CreateTransfer(context.Background(), tr)
	require.NoError(t, err)
	assert.Equal(t, "tr-1", created.ID)
}
