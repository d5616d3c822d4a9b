package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
)

// PasswordChanger defines the interface that the service must implement.
type PasswordChanger interface {
	ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error
}

// PasswordRequest represents the JSON body for a password change
// swagger:model PasswordRequest
type PasswordRequest struct {
	// Current password
	// required: true
	CurrentPassword string `json:"current_password"`

	// New password
	// required: true
	NewPassword string `json:"new_password"`
}

// NewPasswordHandler returns an HTTP handler for changing the caller's password.
// @Summary Change password
// @Tags users
// @Accept json
// @Security BearerAuth
// @Param passwordRequest body handlers.PasswordRequest true "Password change request"
// @Success 204 "Password changed"
// @Failure 400 {object} handlers.ErrorResponse "Empty new password"
// @Failure 401 {object} handlers.ErrorResponse "Wrong current password"
// @Router /users/set_password [post]
func NewPasswordHandler(svc PasswordChanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromRequest(w, r)
		if !ok {
			return
		}

		var req PasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if err := svc.ChangePassword(r.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
			writeServiceError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
