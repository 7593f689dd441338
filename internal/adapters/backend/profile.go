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

// ProfileClient - саб-клиент обновления профиля пользователя.
type ProfileClient struct {
	*Client
}

func NewProfileClient(base *Client) *ProfileClient {
	return &ProfileClient{Client: base}
}

// Update пушит локально отредактированный профиль: PUT /update/{id}.
func (c *ProfileClient) Update(ctx context.Context, profile *domain.UserProfile) (*domain.UserProfile, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "ProfileClient",
		"method":    "Update",
		"user_id":   profile.ID,
	})

	path := fmt.Sprintf("%s%s/%s", constants.ProfileBasePath, constants.OpUpdate, profile.ID)
	raw, err := c.call(ctx, http.MethodPut, path, profilePayloadFromDomain(profile))
	if err != nil {
		logger.Error("Failed to update profile", err, nil)
		return nil, err
	}

	var dto profileDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		logger.Error("Failed to decode updated profile", err, nil)
		return nil, fmt.Errorf("failed to decode updated profile: %w", err)
	}
	updated := dto.toDomain()
	return &updated, nil
}
