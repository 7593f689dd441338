package rest

import (
	"encoding/json"
	"net/http"

	"housing-dashboard-service/internal/contextkeys"
	"housing-dashboard-service/internal/core/domain"
	"housing-dashboard-service/internal/core/port"
	"housing-dashboard-service/internal/core/port/usecases_port"
)

type ProfileHandler struct {
	getUC    usecases_port.GetProfileUseCase
	updateUC usecases_port.UpdateProfileUseCase
}

func NewProfileHandler(getUC usecases_port.GetProfileUseCase, updateUC usecases_port.UpdateProfileUseCase) *ProfileHandler {
	return &ProfileHandler{getUC: getUC, updateUC: updateUC}
}

// GetProfile обрабатывает GET /api/v1/profile
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetProfile"})

	userID := contextkeys.UserIDFromContext(r.Context())

	profile, err := h.getUC.Execute(r.Context(), userID)
	if err != nil {
		logger.Warn("Profile not found in session cache", port.Fields{"user_id": userID})
		RespondWithDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, profileToResponse(profile))
}

// UpdateProfile обрабатывает PUT /api/v1/profile
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateProfile"})

	userID := contextkeys.UserIDFromContext(r.Context())

	var req ProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Failed to decode request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	profile := domain.UserProfile{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}

	updated, err := h.updateUC.Execute(r.Context(), userID, profile)
	if err != nil {
		logger.Error("Update profile use case failed", err, nil)
		RespondWithDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, profileToResponse(updated))
}
