package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/vmaksimov/foodgram-api/internal/models"
)

// FollowingLister defines the interface that the service must implement.
type FollowingLister interface {
	ListFollowing(ctx context.Context, userID uuid.UUID, limit, offset int) (*models.UserListResponse, error)
}

// NewSubscriptionListHandler returns an HTTP handler listing the
// authors the caller follows, newest subscription first.
// @Summary List subscriptions
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number, starting at 1"
// @Param limit query int false "Page size, at most 100"
// @Success 200 {object} models.UserListResponse
// @Failure 401 {string} string "Unauthorized"
// @Router /users/subscriptions [get]
func NewSubscriptionListHandler(svc FollowingLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromRequest(w, r)
		if !ok {
			return
		}

		limit, offset := paginationFromRequest(r)
		page, err := svc.ListFollowing(r.Context(), userID, limit, offset)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, page)
	}
}
