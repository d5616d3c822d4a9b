package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// RecipeDeleter defines the interface that the service must implement.
type RecipeDeleter interface {
	Delete(ctx context.Context, actorID, recipeID uuid.UUID) error
}

// NewRecipeDeleteHandler returns an HTTP handler deleting a recipe.
// @Summary Delete a recipe
// @Description Removes the recipe along with its associations, favorites and cart rows. Permitted for the author and admins.
// @Tags recipes
// @Security BearerAuth
// @Param id path string true "Recipe id"
// @Success 204 {string} string "Deleted"
// @Failure 403 {object} handlers.ErrorResponse "Not the author"
// @Failure 404 {object} handlers.ErrorResponse "Unknown recipe"
// @Router /recipes/{id} [delete]
func NewRecipeDeleteHandler(svc RecipeDeleter) http.HandlerFunc {
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

		if err := svc.Delete(r.Context(), userID, recipeID); err != nil {
			writeServiceError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
