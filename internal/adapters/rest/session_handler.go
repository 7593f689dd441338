package rest

import (
	"encoding/json"
	"net/http"

	"housing-dashboard-service/internal/contextkeys"
	"housing-dashboard-service/internal/core/domain"
	"housing-dashboard-service/internal/core/port"
)

// SessionHandler управляет сессией: принимает токен после логина,
// кэширует профиль и чистит все при выходе. Сам логин выполняет
// внешний сервис аутентификации, сюда приходит уже готовый токен.
type SessionHandler struct {
	tokens   port.TokenServicePort
	sessions port.SessionStorePort
}

func NewSessionHandler(tokens port.TokenServicePort, sessions port.SessionStorePort) *SessionHandler {
	return &SessionHandler{tokens: tokens, sessions: sessions}
}

// CreateSession обрабатывает POST /api/v1/session
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateSession"})

	var req SessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Failed to decode request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Token == "" {
		WriteJSONError(w, http.StatusBadRequest, "token is required")
		return
	}

	claims, err := h.tokens.ValidateToken(r.Context(), req.Token)
	if err != nil {
		logger.Warn("Token validation failed", nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	if err := h.sessions.SaveSession(r.Context(), claims.UserID, req.Token); err != nil {
		logger.Error("Failed to save session", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to save session")
		return
	}

	if req.Profile != nil {
		profile := &domain.UserProfile{
			ID:                 claims.UserID,
			Name:               req.Profile.Name,
			Email:              req.Profile.Email,
			Phone:              req.Profile.Phone,
			RegisteredAt:       req.Profile.RegisteredAt,
			VerificationStatus: req.Profile.VerificationStatus,
		}
		if err := h.sessions.SaveProfile(r.Context(), claims.UserID, profile); err != nil {
			logger.Warn("Failed to cache profile", port.Fields{"error": err.Error()})
		}
	}

	logger.Info("Session created", port.Fields{"user_id": claims.UserID})
	RespondWithJSON(w, http.StatusCreated, map[string]string{"userId": claims.UserID})
}

// DeleteSession обрабатывает DELETE /api/v1/session
func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeleteSession"})

	userID := contextkeys.UserIDFromContext(r.Context())

	if err := h.sessions.Clear(r.Context(), userID); err != nil {
		logger.Error("Failed to clear session", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to clear session")
		return
	}

	logger.Info("Session cleared", port.Fields{"user_id": userID})
	w.WriteHeader(http.StatusNoContent)
}
