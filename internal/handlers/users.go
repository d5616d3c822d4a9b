package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/vmaksimov/foodgram-api/internal/models"
)

// UserProfiler defines the interface that the service must implement.
type UserProfiler interface {
	GetProfile(ctx context.Context, viewer *uuid.UUID, id uuid.UUID) (*models.UserResponse, error)
	List(ctx context.Context, viewer *uuid.UUID, limit, offset int) (*models.UserListResponse, error)
}

// NewUserListHandler returns an HTTP handler listing user profiles.
// @Summary List users
// @Tags users
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} models.UserListResponse
// @Router /users [get]
func NewUserListHandler(svc UserProfiler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, offset := paginationFromRequest(r)

		users, err := svc.List(r.Context(), viewerFromRequest(r), limit, offset)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, users)
	}
}

// NewUserDetailHandler returns an HTTP handler for a single profile.
// @Summary Get a user profile
// @Tags users
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} models.UserResponse
// @Failure 404 {object} handlers.ErrorResponse "Unknown user"
// @Router /users/{id} [get]
func NewUserDetailHandler(svc UserProfiler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuidParam(r, "id")
		if err != nil {
			writeError(w, http.StatusNotFound, "user does not exist")
			return
		}

		user, err := svc.GetProfile(r.Context(), viewerFromRequest(r), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// NewMeHandler returns an HTTP handler for the caller's own profile.
// @Summary Get own profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserResponse
// @Router /users/me [get]
func NewMeHandler(svc UserProfiler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromRequest(w, r)
		if !ok {
			return
		}

		user, err := svc.GetProfile(r.Context(), &userID, userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}
