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

// SalesClient - саб-клиент группы property sales (продажи и переоформления).
// Реализует порт SaleBackendPort.
type SalesClient struct {
	*Client
}

func NewSalesClient(base *Client) *SalesClient {
	return &SalesClient{Client: base}
}

func (c *SalesClient) decodeList(raw json.RawMessage) ([]domain.Sale, error) {
	var dtos []saleDTO
	if err := json.Unmarshal(raw, &dtos); err != nil {
		return nil, fmt.Errorf("failed to decode sales response: %w", err)
	}

	sales := make([]domain.Sale, 0, len(dtos))
	for i, dto := range dtos {
		sale, err := dto.toDomain()
		if err != nil {
			return nil, fmt.Errorf("sale %d: %w", i, err)
		}
		sales = append(sales, sale)
	}
	return sales, nil
}

func (c *SalesClient) GetAll(ctx context.Context) ([]domain.Sale, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "SalesClient",
		"method":    "GetAll",
	})

	raw, err := c.call(ctx, http.MethodGet, constants.SalesBasePath+constants.OpGetAll, nil)
	if err != nil {
		logger.Error("Failed to fetch sales", err, nil)
		return nil, err
	}
	return c.decodeList(raw)
}

func (c *SalesClient) GetByUser(ctx context.Context, userID string) ([]domain.Sale, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "SalesClient",
		"method":    "GetByUser",
		"user_id":   userID,
	})

	path := fmt.Sprintf("%s%s/%s", constants.SalesBasePath, constants.OpGetByUser, userID)
	raw, err := c.call(ctx, http.MethodGet, path, nil)
	if err != nil {
		logger.Error("Failed to fetch user sales", err, nil)
		return nil, err
	}
	return c.decodeList(raw)
}

func (c *SalesClient) Create(ctx context.Context, sale *domain.Sale) (*domain.Sale, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "SalesClient",
		"method":    "Create",
	})

	raw, err := c.callChecked(ctx, http.MethodPost, constants.SalesBasePath+constants.OpCreate, salePayloadFromDomain(sale), "PropertySale")
	if err != nil {
		logger.Error("Failed to create sale record", err, nil)
		return nil, err
	}

	var dto saleDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		logger.Error("Failed to decode created sale", err, nil)
		return nil, fmt.Errorf("failed to decode created sale: %w", err)
	}
	created, err := dto.toDomain()
	if err != nil {
		return nil, err
	}
	logger.Info("Sale record created", port.Fields{"sale_id": created.ID})
	return &created, nil
}

// CreateTransfer создает запись переоформления. Группа ресурсов та же,
// что и у продаж, отдельный подпуть transfers.
func (c *SalesClient) CreateTransfer(ctx context.Context, transfer *domain.Transfer) (*domain.Transfer, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "SalesClient",
		"method":    "CreateTransfer",
	})

	raw, err := c.callChecked(ctx, http.MethodPost, constants.SalesBasePath+"/transfers"+constants.OpCreate, transferPayloadFromDomain(transfer), "OwnershipTransfer")
	if err != nil {
		logger.Error("Failed to create transfer record", err, nil)
		return nil, err
	}

	var dto transferDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		logger.Error("Failed to decode created transfer", err, nil)
		return nil, fmt.Errorf("failed to decode created transfer: %w", err)
	}
	created, err := dto.toDomain()
	if err != nil {
		return nil, err
	}
	logger.Info("Transfer record created", port.Fields{"transfer_id": created.ID})
	return &created, nil
}
