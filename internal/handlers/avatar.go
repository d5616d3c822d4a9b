package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
)

// AvatarSetter defines the interface that the service must implement.
type AvatarSetter interface {
	SetAvatar(ctx context.Context, userID uuid.UUID, dataURI string) (string, error)
	ClearAvatar(ctx context.Context, userID uuid.UUID) error
}

// AvatarRequest represents the JSON body for setting an avatar
// swagger:model AvatarRequest
type AvatarRequest struct {
	// Base64 data URI of the image
	// required: true
	// example: data:image/png;base64,iVBORw0...
	Avatar string `json:"avatar"`
}

// AvatarResponse represents a successful avatar update
// swagger:model AvatarResponse
type AvatarResponse struct {
	// Stored avatar URL
	Avatar string `json:"avatar"`
}

// NewAvatarSetHandler returns an HTTP handler for setting the caller's avatar.
// @Summary Set avatar
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param avatarRequest body handlers.AvatarRequest true "Base64 image payload"
// @Success 200 {object} handlers.AvatarResponse "Avatar stored"
// @Failure 400 {object} handlers.ErrorResponse "Not a base64 image"
// @Router /users/me/avatar [put]
func NewAvatarSetHandler(svc AvatarSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromRequest(w, r)
		if !ok {
			return
		}

		var req AvatarRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		url, err := svc.SetAvatar(r.Context(), userID, req.Avatar)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, AvatarResponse{Avatar: url})
	}
}

// NewAvatarClearHandler returns an HTTP handler for clearing the caller's avatar.
// @Summary Clear avatar
// @Tags users
// @Security BearerAuth
// @Success 204 "Avatar cleared"
// @Router /users/me/avatar [delete]
func NewAvatarClearHandler(svc AvatarSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromRequest(w, r)
		if !ok {
			return
		}

		if err := svc.ClearAvatar(r.Context(), userID); err != nil {
			writeServiceError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
