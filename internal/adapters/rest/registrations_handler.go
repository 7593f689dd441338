package rest

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"housing-dashboard-service/internal/contextkeys"
	"housing-dashboard-service/internal/core/port"
	"housing-dashboard-service/internal/core/port/usecases_port"
)

type RegistrationsHandler struct {
	listUC   usecases_port.ListRegistrationsUseCase
	submitUC usecases_port.SubmitRegistrationUseCase
	updateUC usecases_port.UpdateRegistrationUseCase
	deleteUC usecases_port.DeleteRegistrationUseCase
}

func NewRegistrationsHandler(
	listUC usecases_port.ListRegistrationsUseCase,
	submitUC usecases_port.SubmitRegistrationUseCase,
	updateUC usecases_port.UpdateRegistrationUseCase,
	deleteUC usecases_port.DeleteRegistrationUseCase,
) *RegistrationsHandler {
	return &RegistrationsHandler{
		listUC:   listUC,
		submitUC: submitUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
	}
}

// ListRegistrations обрабатывает GET /api/v1/registrations.
// ?mine=true сужает список до заявок текущего пользователя.
func (h *RegistrationsHandler) ListRegistrations(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListRegistrations"})

	ownedBy := ""
	if r.URL.Query().Get("mine") == "true" {
		ownedBy = contextkeys.UserIDFromContext(r.Context())
	}

	regs, err := h.listUC.Execute(r.Context(), ownedBy)
	if err != nil {
		logger.Error("List registrations use case failed", err, nil)
		RespondWithDomainError(w, err)
		return
	}

	response := make([]RegistrationResponse, 0, len(regs))
	for i := range regs {
		response = append(response, registrationToResponse(&regs[i]))
	}
	RespondWithJSON(w, http.StatusOK, response)
}

// SubmitRegistration обрабатывает POST /api/v1/registrations
func (h *RegistrationsHandler) SubmitRegistration(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "SubmitRegistration"})

	userID := contextkeys.UserIDFromContext(r.Context())

	var req RegistrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Failed to decode request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.submitUC.Execute(r.Context(), userID, req.toForm())
	if err != nil {
		logger.Error("Submit registration use case failed", err, nil)
		RespondWithDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, registrationToResponse(created))
}

// UpdateRegistration обрабатывает PUT /api/v1/registrations/{registrationID}
func (h *RegistrationsHandler) UpdateRegistration(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateRegistration"})

	userID := contextkeys.UserIDFromContext(r.Context())
	registrationID := chi.URLParam(r, "registrationID")
	if registrationID == "" {
		WriteJSONError(w, http.StatusBadRequest, "registrationID is required")
		return
	}

	var req RegistrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Failed to decode request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.updateUC.Execute(r.Context(), userID, registrationID, req.toForm())
	if err != nil {
		logger.Error("Update registration use case failed", err, nil)
		RespondWithDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, registrationToResponse(updated))
}

// DeleteRegistration обрабатывает DELETE /api/v1/registrations/{registrationID}.
// Без ?confirm=true запрос отклоняется.
func (h *RegistrationsHandler) DeleteRegistration(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeleteRegistration"})

	userID := contextkeys.UserIDFromContext(r.Context())
	registrationID := chi.URLParam(r, "registrationID")
	if registrationID == "" {
		WriteJSONError(w, http.StatusBadRequest, "registrationID is required")
		return
	}

	confirmed := r.URL.Query().Get("confirm") == "true"

	if err := h.deleteUC.Execute(r.Context(), userID, registrationID, confirmed); err != nil {
		logger.Error("Delete registration use case failed", err, nil)
		RespondWithDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
