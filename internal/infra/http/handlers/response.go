package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/xavierca1/admissions-api/internal/entity"
	"github.com/xavierca1/admissions-api/internal/usecase"
)

const maxBodyBytes = 1 << 16

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeError maps use case errors onto HTTP status codes. Anything that is
// not a DomainError or a not-found sentinel is logged and hidden behind 500.
func writeError(w http.ResponseWriter, logger *zap.Logger, err error) {
	var de *usecase.DomainError
	switch {
	case errors.As(err, &de):
		writeMessage(w, domainStatus(de), de.Message)
	case errors.Is(err, entity.ErrLeadNotFound):
		writeMessage(w, http.StatusNotFound, "lead not found")
	case errors.Is(err, entity.ErrNotFound):
		writeMessage(w, http.StatusNotFound, "not found")
	default:
		logger.Error("request failed", zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "internal server error")
	}
}

func domainStatus(de *usecase.DomainError) int {
	switch de.Code {
	case usecase.CodeInvalidCredentials:
		return http.StatusUnauthorized
	case usecase.CodeSlugConflict:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

// decodeJSON reads a bounded JSON body into dst and answers 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}
