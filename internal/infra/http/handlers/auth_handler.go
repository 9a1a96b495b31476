package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/xavierca1/admissions-api/internal/usecase"
)

type AuthHandler struct {
	login  *usecase.LoginUseCase
	logger *zap.Logger
}

func NewAuthHandler(login *usecase.LoginUseCase, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{login: login, logger: logger}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input usecase.LoginInput
	if !decodeJSON(w, r, &input) {
		return
	}

	out, err := h.login.Execute(r.Context(), input)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}
