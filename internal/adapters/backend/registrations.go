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

// RegistrationsClient - саб-клиент группы housing registrations.
// Реализует порт RegistrationBackendPort.
type RegistrationsClient struct {
	*Client
}

func NewRegistrationsClient(base *Client) *RegistrationsClient {
	return &RegistrationsClient{Client: base}
}

func (c *RegistrationsClient) decodeList(raw json.RawMessage) ([]domain.Registration, error) {
	var dtos []registrationDTO
	if err := json.Unmarshal(raw, &dtos); err != nil {
		return nil, fmt.Errorf("failed to decode registrations response: %w", err)
	}

	regs := make([]domain.Registration, 0, len(dtos))
	for i, dto := range dtos {
		reg, err := dto.toDomain()
		if err != nil {
			return nil, fmt.Errorf("registration %d: %w", i, err)
		}
		regs = append(regs, reg)
	}
	return regs, nil
}

func (c *RegistrationsClient) decodeOne(raw json.RawMessage) (*domain.Registration, error) {
	var dto registrationDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return nil, fmt.Errorf("failed to decode registration response: %w", err)
	}
	reg, err := dto.toDomain()
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func (c *RegistrationsClient) GetAll(ctx context.Context) ([]domain.Registration, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "RegistrationsClient",
		"method":    "GetAll",
	})

	raw, err := c.call(ctx, http.MethodGet, constants.RegistrationsBasePath+constants.OpGetAll, nil)
	if err != nil {
		logger.Error("Failed to fetch registrations", err, nil)
		return nil, err
	}
	return c.decodeList(raw)
}

func (c *RegistrationsClient) GetByUser(ctx context.Context, userID string) ([]domain.Registration, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "RegistrationsClient",
		"method":    "GetByUser",
		"user_id":   userID,
	})

	path := fmt.Sprintf("%s%s/%s", constants.RegistrationsBasePath, constants.OpGetByUser, userID)
	raw, err := c.call(ctx, http.MethodGet, path, nil)
	if err != nil {
		logger.Error("Failed to fetch user registrations", err, nil)
		return nil, err
	}
	return c.decodeList(raw)
}

// Create отправляет заявку: POST /create.
func (c *RegistrationsClient) Create(ctx context.Context, reg *domain.Registration) (*domain.Registration, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "RegistrationsClient",
		"method":    "Create",
	})

	raw, err := c.callChecked(ctx, http.MethodPost, constants.RegistrationsBasePath+constants.OpCreate, registrationPayloadFromDomain(reg), "HousingRegistration")
	if err != nil {
		logger.Error("Failed to create registration", err, nil)
		return nil, err
	}

	created, err := c.decodeOne(raw)
	if err != nil {
		logger.Error("Failed to decode created registration", err, nil)
		return nil, err
	}
	logger.Info("Registration created", port.Fields{"registration_id": created.ID})
	return created, nil
}

// Update обновляет заявку: PUT /update/{id}.
func (c *RegistrationsClient) Update(ctx context.Context, id string, reg *domain.Registration) (*domain.Registration, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":       "RegistrationsClient",
		"method":          "Update",
		"registration_id": id,
	})

	path := fmt.Sprintf("%s%s/%s", constants.RegistrationsBasePath, constants.OpUpdate, id)
	raw, err := c.callChecked(ctx, http.MethodPut, path, registrationPayloadFromDomain(reg), "HousingRegistration")
	if err != nil {
		logger.Error("Failed to update registration", err, nil)
		return nil, err
	}

	updated, err := c.decodeOne(raw)
	if err != nil {
		logger.Error("Failed to decode updated registration", err, nil)
		return nil, err
	}
	return updated, nil
}

// Delete удаляет заявку: DELETE /delete/{id}.
func (c *RegistrationsClient) Delete(ctx context.Context, id string) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":       "RegistrationsClient",
		"method":          "Delete",
		"registration_id": id,
	})

	path := fmt.Sprintf("%s%s/%s", constants.RegistrationsBasePath, constants.OpDelete, id)
	if _, err := c.call(ctx, http.MethodDelete, path, nil); err != nil {
		logger.Error("Failed to delete registration", err, nil)
		return err
	}
	logger.Info("Registration deleted", nil)
	return nil
}
