package rest

import (
	"net/http"

	"housing-dashboard-service/internal/contextkeys"
	"housing-dashboard-service/internal/core/domain"
	"housing-dashboard-service/internal/core/port"
	"housing-dashboard-service/internal/core/port/usecases_port"
)

type ReportsHandler struct {
	listUC usecases_port.ListReportsUseCase
}

func NewReportsHandler(listUC usecases_port.ListReportsUseCase) *ReportsHandler {
	return &ReportsHandler{listUC: listUC}
}

// ListReports обрабатывает GET /api/v1/reports
func (h *ReportsHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListReports"})

	q := r.URL.Query()
	filters := domain.ReportFilters{
		Search:   q.Get("search"),
		Category: q.Get("category"),
	}

	reports, err := h.listUC.Execute(r.Context(), filters)
	if err != nil {
		logger.Error("List reports use case failed", err, nil)
		RespondWithDomainError(w, err)
		return
	}

	response := make([]ReportResponse, 0, len(reports))
	for i := range reports {
		response = append(response, reportToResponse(&reports[i]))
	}
	RespondWithJSON(w, http.StatusOK, response)
}
