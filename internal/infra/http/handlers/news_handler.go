package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/xavierca1/admissions-api/internal/usecase"
)

type NewsHandler struct {
	news   *usecase.NewsUseCase
	logger *zap.Logger
}

func NewNewsHandler(news *usecase.NewsUseCase, logger *zap.Logger) *NewsHandler {
	return &NewsHandler{news: news, logger: logger}
}

func (h *NewsHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.news.List(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *NewsHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	items, err := h.news.ListAll(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *NewsHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	item, err := h.news.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *NewsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.NewsInput
	if !decodeJSON(w, r, &input) {
		return
	}

	item, err := h.news.Create(r.Context(), input)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *NewsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input usecase.NewsInput
	if !decodeJSON(w, r, &input) {
		return
	}

	item, err := h.news.Update(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *NewsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.news.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
