package api

import (
	"net/http"

	"agribrain/backend/internal/interfaces"
)

// ReportHandler serves the farm report summary.
type ReportHandler struct {
	service interfaces.ReportService
}

func NewReportHandler(svc interfaces.ReportService) *ReportHandler {
	return &ReportHandler{service: svc}
}

// GetSummary godoc
// @Summary      Farm report summary
// @Tags         Reports
// @Produce      json
// @Success      200  {object}  model.Report
// @Failure      409  {object}  ErrorResponse
// @Router       /v1/reports/summary [get]
func (h *ReportHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.Summary(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, report)
}
