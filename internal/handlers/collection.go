package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/vmaksimov/foodgram-api/internal/models"
)

// Collectioner defines the interface that the service must implement.
// The favorite and shopping-cart routes share it with different
// service instances behind.
type Collectioner interface {
	Add(ctx context.Context, userID, recipeID uuid.UUID) (*models.RecipeShortResponse, error)
	Remove(ctx context.Context, userID, recipeID uuid.UUID) error
}

// NewCollectionAddHandler returns an HTTP handler adding a recipe to a
// per-user collection (favorites or shopping cart).
// @Summary Add a recipe to favorites or the shopping cart
// @Tags recipes
// @Security BearerAuth
// @Produce json
// @Param id path string true "Recipe id"
// @Success 201 {object} models.RecipeShortResponse
// @Failure 404 {object} handlers.ErrorResponse "Unknown recipe"
// @Failure 409 {object} handlers.ErrorResponse "Already added"
// @Router /recipes/{id}/favorite [post]
func NewCollectionAddHandler(svc Collectioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromRequest(w, r)
		if !ok {
			return
		}

		recipeID, err := uuidParam(r, "id")
		if err != nil {
			writeError(w, http.StatusNotFound, "recipe does not exist")
			return
		}

		recipe, err := svc.Add(r.Context(), userID, recipeID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, recipe)
	}
}

// NewCollectionRemoveHandler returns an HTTP handler removing a recipe
// from a per-user collection. Removing an absent pair still succeeds.
// @Summary Remove a recipe from favorites or the shopping cart
// @Tags recipes
// @Security BearerAuth
// @Param id path string true "Recipe id"
// @Success 204 {string} string "Removed"
// @Failure 404 {object} handlers.ErrorResponse "Unknown recipe"
// @Router /recipes/{id}/favorite [delete]
func NewCollectionRemoveHandler(svc Collectioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromRequest(w, r)
		if !ok {
			return
		}

		recipeID, err := uuidParam(r, "id")
		if err != nil {
			writeError(w, http.StatusNotFound, "recipe does not exist")
			return
		}

		if err := svc.Remove(r.Context(), userID, recipeID); err != nil {
			writeServiceError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
