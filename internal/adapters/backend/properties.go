package backend_client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"housing-dashboard-service/internal/constants"
	"housing-dashboard-service/internal/contextkeys"
	"housing-dashboard-service/internal/core/domain"
	"housing-dashboard-service/internal/core/port"
)

// PropertiesClient - саб-клиент группы ресурсов property listings.
// Реализует порт PropertyBackendPort.
type PropertiesClient struct {
	*Client
}

func NewPropertiesClient(base *Client) *PropertiesClient {
	return &PropertiesClient{Client: base}
}

// GetAll забирает полный список объектов: GET /getall.
func (c *PropertiesClient) GetAll(ctx context.Context) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component": "PropertiesClient",
		"method":    "GetAll",
	})

	raw, err := c.call(ctx, http.MethodGet, constants.PropertiesBasePath+constants.OpGetAll, nil)
	if err != nil {
		clientLogger.Error("Failed to fetch properties", err, nil)
		return nil, err
	}

	var dtos []propertyDTO
	if err := json.Unmarshal(raw, &dtos); err != nil {
		clientLogger.Error("Failed to decode properties response", err, nil)
		return nil, fmt.Errorf("failed to decode properties response: %w", err)
	}

	properties := make([]domain.Property, len(dtos))
	for i, dto := range dtos {
		properties[i] = dto.toDomain()
	}

	clientLogger.Debug("Fetched properties", port.Fields{"count": len(properties)})
	return properties, nil
}

// GetByUser забирает объекты пользователя: GET /getbyuser/{id}.
func (c *PropertiesClient) GetByUser(ctx context.Context, userID string) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component": "PropertiesClient",
		"method":    "GetByUser",
		"user_id":   userID,
	})

	path := fmt.Sprintf("%s%s/%s", constants.PropertiesBasePath, constants.OpGetByUser, userID)
	raw, err := c.call(ctx, http.MethodGet, path, nil)
	if err != nil {
		clientLogger.Error("Failed to fetch user properties", err, nil)
		return nil, err
	}

	var dtos []propertyDTO
	if err := json.Unmarshal(raw, &dtos); err != nil {
		clientLogger.Error("Failed to decode properties response", err, nil)
		return nil, fmt.Errorf("failed to decode properties response: %w", err)
	}

	properties := make([]domain.Property, len(dtos))
	for i, dto := range dtos {
		properties[i] = dto.toDomain()
	}
	return properties, nil
}
