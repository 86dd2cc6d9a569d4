package handlers

import (
	"context"
	"net/http"

	"github.com/baharkarakas/sitecraft-backend/internal/api/httpx"
	"github.com/baharkarakas/sitecraft-backend/internal/models"
)

type RequestService interface {
	WebsiteGenerator(ctx context.Context, input any) (models.WebsiteGeneratorInput, error)
	CodeAssistance(ctx context.Context, input any) (models.CodeAssistanceInput, error)
}

// RequestHandler echoes normalized generator and assistant requests; the
// generation backend itself lives elsewhere.
type RequestHandler struct {
	svc RequestService
}

func NewRequestHandler(svc RequestService) *RequestHandler { return &RequestHandler{svc: svc} }

func (h *RequestHandler) WebsiteGenerator(w http.ResponseWriter, r *http.Request) {
	body, err := httpx.DecodeJSON(r)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", err.Error(), nil)
		return
	}
	in, err := h.svc.WebsiteGenerator(r.Context(), body)
	if err != nil {
		httpx.WriteServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, in)
}

func (h *RequestHandler) CodeAssistance(w http.ResponseWriter, r *http.Request) {
	body, err := httpx.DecodeJSON(r)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", err.Error(), nil)
		return
	}
	in, err := h.svc.CodeAssistance(r.Context(), body)
	if err != nil {
		httpx.WriteServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, in)
}
