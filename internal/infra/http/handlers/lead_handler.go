package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/xavierca1/admissions-api/internal/infra/export"
	"github.com/xavierca1/admissions-api/internal/infra/http/middleware"
	"github.com/xavierca1/admissions-api/internal/usecase"
)

type LeadHandler struct {
	submit *usecase.SubmitLeadUseCase
	list   *usecase.ListLeadsUseCase
	update *usecase.UpdateLeadStatusUseCase
	logger *zap.Logger
}

func NewLeadHandler(
	submit *usecase.SubmitLeadUseCase,
	list *usecase.ListLeadsUseCase,
	update *usecase.UpdateLeadStatusUseCase,
	logger *zap.Logger,
) *LeadHandler {
	return &LeadHandler{
		submit: submit,
		list:   list,
		update: update,
		logger: logger,
	}
}

// Submit is the public enquiry form endpoint.
func (h *LeadHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var input usecase.SubmitLeadInput
	if !decodeJSON(w, r, &input) {
		return
	}

	lead, err := h.submit.Execute(r.Context(), input)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	middleware.RecordLeadSubmitted()
	writeJSON(w, http.StatusCreated, lead)
}

func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	leads, err := h.list.Execute(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, leads)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *LeadHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	lead, err := h.update.Execute(r.Context(), usecase.UpdateLeadStatusInput{
		ID:     chi.URLParam(r, "id"),
		Status: req.Status,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	middleware.RecordLeadStatusUpdate(string(lead.Status))
	writeJSON(w, http.StatusOK, lead)
}

// Export streams every lead, newest first, as an XLSX workbook.
func (h *LeadHandler) Export(w http.ResponseWriter, r *http.Request) {
	leads, err := h.list.Execute(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteLeadsXLSX(&buf, leads); err != nil {
		writeError(w, h.logger, fmt.Errorf("export leads: %w", err))
		return
	}

	filename := fmt.Sprintf("leads_%s.xlsx", time.Now().UTC().Format("20060102_150405"))
	w.Header().Set("Content-Type", export.ContentTypeXLSX)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}
