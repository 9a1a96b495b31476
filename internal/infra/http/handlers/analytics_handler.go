package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/xavierca1/admissions-api/internal/usecase"
)

type AnalyticsHandler struct {
	compute *usecase.ComputeAnalyticsUseCase
	logger  *zap.Logger
}

func NewAnalyticsHandler(compute *usecase.ComputeAnalyticsUseCase, logger *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{compute: compute, logger: logger}
}

// Get accepts optional startDate and endDate query params (ISO-8601).
func (h *AnalyticsHandler) Get(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	input, err := usecase.ParseAnalyticsRange(q.Get("startDate"), q.Get("endDate"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	report, err := h.compute.Execute(r.Context(), input)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
