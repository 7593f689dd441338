package rest

import (
	"encoding/json"
	"net/http"

	"housing-dashboard-service/internal/contextkeys"
	"housing-dashboard-service/internal/core/port"
	"housing-dashboard-service/internal/core/port/usecases_port"
)

type SalesHandler struct {
	listUC     usecases_port.ListSalesUseCase
	recordUC   usecases_port.RecordSaleUseCase
	transferUC usecases_port.TransferOwnershipUseCase
}

func NewSalesHandler(
	listUC usecases_port.ListSalesUseCase,
	recordUC usecases_port.RecordSaleUseCase,
	transferUC usecases_port.TransferOwnershipUseCase,
) *SalesHandler {
	return &SalesHandler{listUC: listUC, recordUC: recordUC, transferUC: transferUC}
}

// ListSales обрабатывает GET /api/v1/sales
func (h *SalesHandler) ListSales(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListSales"})

	ownedBy := ""
	if r.URL.Query().Get("mine") == "true" {
		ownedBy = contextkeys.UserIDFromContext(r.Context())
	}

	sales, err := h.listUC.Execute(r.Context(), ownedBy)
	if err != nil {
		logger.Error("List sales use case failed", err, nil)
		RespondWithDomainError(w, err)
		return
	}

	response := make([]SaleResponse, 0, len(sales))
	for i := range sales {
		response = append(response, saleToResponse(&sales[i]))
	}
	RespondWithJSON(w, http.StatusOK, response)
}

// RecordSale обрабатывает POST /api/v1/sales
func (h *SalesHandler) RecordSale(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "RecordSale"})

	userID := contextkeys.UserIDFromContext(r.Context())

	var req SaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Failed to decode request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	form, err := req.toForm()
	if err != nil {
		logger.Warn("Invalid dateSold format", port.Fields{"date_sold": req.DateSold})
		WriteJSONError(w, http.StatusBadRequest, "dateSold must be in YYYY-MM-DD format")
		return
	}

	created, err := h.recordUC.Execute(r.Context(), userID, form)
	if err != nil {
		logger.Error("Record sale use case failed", err, nil)
		RespondWithDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, saleToResponse(created))
}

// TransferOwnership обрабатывает POST /api/v1/transfers
func (h *SalesHandler) TransferOwnership(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "TransferOwnership"})

	userID := contextkeys.UserIDFromContext(r.Context())

	var req TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Failed to decode request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	form, err := req.toForm()
	if err != nil {
		logger.Warn("Invalid dateSold format", nil)
		WriteJSONError(w, http.StatusBadRequest, "dateSold must be in YYYY-MM-DD format")
		return
	}

	created, err := h.transferUC.Execute(r.Context(), userID, form)
	if err != nil {
		logger.Error("Transfer ownership use case failed", err, nil)
		RespondWithDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, transferToResponse(created))
}
