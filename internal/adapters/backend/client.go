package backend_client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"housing-dashboard-service/internal/contextkeys"
	"housing-dashboard-service/internal/contracts"
	"housing-dashboard-service/internal/core/domain"
)

// Client - базовый клиент удаленного REST backend. Саб-клиенты групп
// ресурсов (properties, registrations, sales, reports) строятся поверх него.
type Client struct {
	baseURL    string // Например, "http://housing-backend:5000"
	httpClient *http.Client
}

// NewClient - конструктор.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// doRequest - внутренний хелпер для выполнения запросов.
// На каждый вызов навешивается Authorization: Bearer <токен из контекста>.
// Отсутствие токена здесь НЕ валидируется: запрос уходит как есть,
// отклонить его - дело сервера.
func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewBuffer(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if token := contextkeys.AuthTokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		req.Header.Set("X-Trace-ID", traceID)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return c.httpClient.Do(req)
}

// call выполняет запрос и возвращает нормализованное тело успешного ответа.
// Транспортные ошибки и не-2xx статусы превращаются в доменные ошибки,
// "сырые" исключения наружу не выходят.
func (c *Client) call(ctx context.Context, method, path string, body interface{}) (json.RawMessage, error) {
	resp, err := c.doRequest(ctx, method, path, body)
	if err != nil {
		return nil, fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read backend response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, backendError(resp.StatusCode, raw)
	}

	return unwrapEnvelope(raw), nil
}

// callChecked - как call, но тело перед отправкой проверяется против
// зарегистрированной JSON-схемы. Используется мутирующими операциями.
func (c *Client) callChecked(ctx context.Context, method, path string, body interface{}, schemaKey string) (json.RawMessage, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}
	if err := contracts.ValidatePayload(schemaKey, payload); err != nil {
		return nil, err
	}
	return c.call(ctx, method, path, json.RawMessage(payload))
}

// unwrapEnvelope - единственная граница нормализации конвертов ответа.
// Backend непоследователен: иногда {"data": [...]}, иногда голый массив.
// Все вызывающие получают одну форму.
func unwrapEnvelope(raw []byte) json.RawMessage {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && len(envelope.Data) > 0 && string(envelope.Data) != "null" {
		return envelope.Data
	}
	return raw
}

// backendError строит доменную ошибку из не-2xx ответа: текст сервера,
// если он есть, иначе общий сентинел.
func backendError(statusCode int, raw []byte) error {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	_ = json.Unmarshal(raw, &payload)

	message := payload.Message
	if message == "" {
		message = payload.Error
	}
	if message == "" {
		return fmt.Errorf("%w: status %d", domain.ErrBackendUnexpected, statusCode)
	}
	return &domain.BackendError{StatusCode: statusCode, Message: message}
}
