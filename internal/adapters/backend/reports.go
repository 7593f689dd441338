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

// ReportsClient - саб-клиент группы reports. С нашей стороны только чтение.
type ReportsClient struct {
	*Client
}

func NewReportsClient(base *Client) *ReportsClient {
	return &ReportsClient{Client: base}
}

func (c *ReportsClient) GetAll(ctx context.Context) ([]domain.Report, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "ReportsClient",
		"method":    "GetAll",
	})

	raw, err := c.call(ctx, http.MethodGet, constants.ReportsBasePath+constants.OpGetAll, nil)
	if err != nil {
		logger.Error("Failed to fetch reports", err, nil)
		return nil, err
	}

	var dtos []reportDTO
	if err := json.Unmarshal(raw, &dtos); err != nil {
		logger.Error("Failed to decode reports response", err, nil)
		return nil, fmt.Errorf("failed to decode reports response: %w", err)
	}

	reports := make([]domain.Report, len(dtos))
	for i, dto := range dtos {
		reports[i] = dto.toDomain()
	}
	return reports, nil
}
