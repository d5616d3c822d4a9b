package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/vmaksimov/foodgram-api/internal/logger"
	"github.com/vmaksimov/foodgram-api/internal/middlewares"
	"github.com/vmaksimov/foodgram-api/internal/services"
)

// Pagination defaults.
const (
	defaultPageSize = 6
	maxPageSize     = 100
)

// ErrorResponse is the generic error body.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// writeServiceError maps the service error taxonomy to HTTP statuses.
// Anything unrecognized is an internal error.
func writeServiceError(w http.ResponseWriter, err error) {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error: validationErr.Message,
			Field: validationErr.Field,
		})
		return
	}

	switch {
	case errors.Is(err, services.ErrSelfSubscription),
		errors.Is(err, services.ErrUserAlreadyExists):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrPermissionDenied):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrRecipeNotFound),
		errors.Is(err, services.ErrIngredientNotFound),
		errors.Is(err, services.ErrTagNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrAlreadyAdded),
		errors.Is(err, services.ErrAlreadySubscribed):
		writeError(w, http.StatusConflict, err.Error())
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// userIDFromRequest resolves the authenticated caller; requests that
// passed AuthMiddleware always carry one.
func userIDFromRequest(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := middlewares.UserIDFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
	}
	return userID, ok
}

// viewerFromRequest resolves the optional viewer; nil for anonymous.
func viewerFromRequest(r *http.Request) *uuid.UUID {
	if userID, ok := middlewares.UserIDFromContext(r.Context()); ok {
		return &userID
	}
	return nil
}

// uuidParam parses a UUID chi route parameter.
func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, name))
}

// paginationFromRequest parses page/limit query parameters into a
// bounded limit and offset.
func paginationFromRequest(r *http.Request) (limit, offset int) {
	limit = defaultPageSize
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			page = parsed
		}
	}

	return limit, (page - 1) * limit
}
