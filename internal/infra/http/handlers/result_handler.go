package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/xavierca1/admissions-api/internal/usecase"
)

type ResultHandler struct {
	results *usecase.ResultSessionUseCase
	logger  *zap.Logger
}

func NewResultHandler(results *usecase.ResultSessionUseCase, logger *zap.Logger) *ResultHandler {
	return &ResultHandler{results: results, logger: logger}
}

func (h *ResultHandler) List(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.results.List(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, sessions)
}

func (h *ResultHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	s, err := h.results.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func (h *ResultHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.ResultSessionInput
	if !decodeJSON(w, r, &input) {
		return
	}

	s, err := h.results.Create(r.Context(), input)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, s)
}

func (h *ResultHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input usecase.ResultSessionInput
	if !decodeJSON(w, r, &input) {
		return
	}

	s, err := h.results.Update(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func (h *ResultHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.results.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
