package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/vmaksimov/foodgram-api/internal/models"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, email, username, firstName, lastName, password string) (*models.UserDB, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Email
	// required: true
	// example: john@example.com
	Email string `json:"email"`

	// Username
	// required: true
	// example: john_doe
	Username string `json:"username"`

	// First name
	// required: true
	// example: John
	FirstName string `json:"first_name"`

	// Last name
	// required: true
	// example: Doe
	LastName string `json:"last_name"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. Email and username must be unique. Password is hashed before storing.
// @Tags users
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} models.UserResponse "User successfully registered"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request or already registered"
// @Router /users [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		user, err := svc.Register(r.Context(), req.Email, req.Username, req.FirstName, req.LastName, req.Password)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, models.UserResponse{
			ID:        user.ID,
			Email:     user.Email,
			Username:  user.Username,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Avatar:    user.AvatarURL,
		})
	}
}
