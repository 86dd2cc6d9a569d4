package handlers

import (
	"context"
	"net/http"

	"github.com/baharkarakas/sitecraft-backend/internal/api/httpx"
	"github.com/baharkarakas/sitecraft-backend/internal/models"
)

type ProjectService interface {
	Create(ctx context.Context, input any) (models.Project, error)
	Get(ctx context.Context, id int32) (models.Project, error)
	ListByUser(ctx context.Context, userID int32, limit, offset int) ([]models.Project, error)
	Update(ctx context.Context, id int32, input any) (models.Project, error)
	Publish(ctx context.Context, id int32, published bool) (models.Project, error)
	Delete(ctx context.Context, id int32) error
}

type ProjectHandler struct {
	svc ProjectService
}

func NewProjectHandler(svc ProjectService) *ProjectHandler { return &ProjectHandler{svc: svc} }

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := httpx.DecodeJSON(r)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", err.Error(), nil)
		return
	}
	p, err := h.svc.Create(r.Context(), body)
	if err != nil {
		httpx.WriteServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, p)
}

func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.PathID(r, "id")
	if !ok {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid project id", nil)
		return
	}
	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		httpx.WriteServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p)
}

// ListByUser serves /users/{id}/projects.
func (h *ProjectHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	uid, ok := httpx.PathID(r, "id")
	if !ok {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid user id", nil)
		return
	}
	limit, offset := httpx.Page(r)
	ps, err := h.svc.ListByUser(r.Context(), uid, limit, offset)
	if err != nil {
		httpx.WriteServiceError(w, r, err)
		return
	}
	if ps == nil {
		ps = []models.Project{}
	}
	httpx.WriteJSON(w, http.StatusOK, ps)
}

func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.PathID(r, "id")
	if !ok {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid project id", nil)
		return
	}
	body, err := httpx.DecodeJSON(r)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", err.Error(), nil)
		return
	}
	p, err := h.svc.Update(r.Context(), id, body)
	if err != nil {
		httpx.WriteServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p)
}

func (h *ProjectHandler) Publish(w http.ResponseWriter, r *http.Request)   { h.setPublished(w, r, true) }
func (h *ProjectHandler) Unpublish(w http.ResponseWriter, r *http.Request) { h.setPublished(w, r, false) }

func (h *ProjectHandler) setPublished(w http.ResponseWriter, r *http.Request, published bool) {
	id, ok := httpx.PathID(r, "id")
	if !ok {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid project id", nil)
		return
	}
	p, err := h.svc.Publish(r.Context(), id, published)
	if err != nil {
		httpx.WriteServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p)
}

func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.PathID(r, "id")
	if !ok {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid project id", nil)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		httpx.WriteServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
