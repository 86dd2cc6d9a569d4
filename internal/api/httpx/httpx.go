package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/baharkarakas/sitecraft-backend/internal/logger"
	repo "github.com/baharkarakas/sitecraft-backend/internal/repository"
	"github.com/baharkarakas/sitecraft-backend/internal/validate"
)

const maxBodyBytes = 1 << 20

type APIError struct {
	Error   string      `json:"error"`
	Code    string      `json:"code"`
	Details interface{} `json:"details,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, code, msg string, details interface{}) {
	WriteJSON(w, status, APIError{
		Error:   msg,
		Code:    code,
		Details: details,
	})
}

// DecodeJSON reads one JSON document into an untyped value, keeping numbers
// as json.Number so integer checks see the literal.
func DecodeJSON(r *http.Request) (any, error) {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode body: %w", err)
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, errors.New("decode body: trailing data")
	}
	return v, nil
}

// PathID parses an int32 route parameter.
func PathID(r *http.Request, name string) (int32, bool) {
	n, err := strconv.ParseInt(chi.URLParam(r, name), 10, 32)
	if err != nil || n <= 0 {
		return 0, false
	}
	return int32(n), true
}

// Page reads limit and offset query parameters; zero means unset.
func Page(r *http.Request) (limit, offset int) {
	q := r.URL.Query()
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if v := q.Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}

// WriteServiceError maps service and repository errors onto HTTP statuses.
func WriteServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if errs, ok := validate.As(err); ok {
		WriteError(w, http.StatusUnprocessableEntity, "validation_failed", "validation failed", errs)
		return
	}
	switch {
	case errors.Is(err, repo.ErrNotFound):
		WriteError(w, http.StatusNotFound, "not_found", "not found", nil)
	case errors.Is(err, repo.ErrConflict):
		WriteError(w, http.StatusConflict, "conflict", err.Error(), nil)
	case errors.Is(err, repo.ErrInvalidReference), errors.Is(err, repo.ErrMissingValue):
		WriteError(w, http.StatusUnprocessableEntity, "invalid_reference", err.Error(), nil)
	default:
		logger.From(r.Context()).Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err)
		WriteError(w, http.StatusInternalServerError, "internal_error", "internal error", nil)
	}
}
