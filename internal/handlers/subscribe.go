package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/vmaksimov/foodgram-api/internal/models"
)

// Subscriber defines the interface that the service must implement.
type Subscriber interface {
	Subscribe(ctx context.Context, userID, authorID uuid.UUID) (*models.UserResponse, error)
	Unsubscribe(ctx context.Context, userID, authorID uuid.UUID) error
}

// NewSubscribeHandler returns an HTTP handler following an author.
// @Summary Subscribe to an author
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param id path string true "Author id"
// @Success 201 {object} models.UserResponse
// @Failure 400 {object} handlers.ErrorResponse "Self-subscription"
// @Failure 404 {object} handlers.ErrorResponse "Unknown author"
// @Failure 409 {object} handlers.ErrorResponse "Already subscribed"
// @Router /users/{id}/subscribe [post]
func NewSubscribeHandler(svc Subscriber) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromRequest(w, r)
		if !ok {
			return
		}

		authorID, err := uuidParam(r, "id")
		if err != nil {
			writeError(w, http.StatusNotFound, "user does not exist")
			return
		}

		author, err := svc.Subscribe(r.Context(), userID, authorID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, author)
	}
}

// NewUnsubscribeHandler returns an HTTP handler unfollowing an author.
// Unfollowing an author the caller does not follow still succeeds.
// @Summary Unsubscribe from an author
// @Tags users
// @Security BearerAuth
// @Param id path string true "Author id"
// @Success 204 {string} string "Unsubscribed"
// @Failure 404 {object} handlers.ErrorResponse "Unknown author"
// @Router /users/{id}/subscribe [delete]
func NewUnsubscribeHandler(svc Subscriber) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromRequest(w, r)
		if !ok {
			return
		}

		authorID, err := uuidParam(r, "id")
		if err != nil {
			writeError(w, http.StatusNotFound, "user does not exist")
			return
		}

		if err := svc.Unsubscribe(r.Context(), userID, authorID); err != nil {
			writeServiceError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
