package handlers

import (
	"context"
	"net/http"

	"github.com/baharkarakas/sitecraft-backend/internal/api/httpx"
	"github.com/baharkarakas/sitecraft-backend/internal/models"
)

type UserService interface {
	Register(ctx context.Context, input any) (models.User, error)
	Get(ctx context.Context, id int32) (models.User, error)
	List(ctx context.Context, limit, offset int) ([]models.User, error)
}

type UserHandler struct {
	svc UserService
}

func NewUserHandler(svc UserService) *UserHandler { return &UserHandler{svc: svc} }

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	body, err := httpx.DecodeJSON(r)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", err.Error(), nil)
		return
	}
	u, err := h.svc.Register(r.Context(), body)
	if err != nil {
		httpx.WriteServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, u)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.PathID(r, "id")
	if !ok {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid user id", nil)
		return
	}
	u, err := h.svc.Get(r.Context(), id)
	if err != nil {
		httpx.WriteServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, u)
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := httpx.Page(r)
	users, err := h.svc.List(r.Context(), limit, offset)
	if err != nil {
		httpx.WriteServiceError(w, r, err)
		return
	}
	if users == nil {
		users = []models.User{}
	}
	httpx.WriteJSON(w, http.StatusOK, users)
}
