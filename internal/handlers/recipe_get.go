package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/vmaksimov/foodgram-api/internal/models"
)

// RecipeGetter defines the interface that the service must implement.
type RecipeGetter interface {
	Get(ctx context.Context, viewer *uuid.UUID, recipeID uuid.UUID) (*models.RecipeResponse, error)
}

// NewRecipeDetailHandler returns an HTTP handler for one recipe.
// @Summary Get a recipe
// @Description Returns the full recipe projection. is_favorited and is_in_shopping_cart are relative to the caller and false for anonymous requests.
// @Tags recipes
// @Produce json
// @Param id path string true "Recipe id"
// @Success 200 {object} models.RecipeResponse
// @Failure 404 {object} handlers.ErrorResponse "Unknown recipe"
// @Router /recipes/{id} [get]
func NewRecipeDetailHandler(svc RecipeGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recipeID, err := uuidParam(r, "id")
		if err != nil {
			writeError(w, http.StatusNotFound, "recipe does not exist")
			return
		}

		recipe, err := svc.Get(r.Context(), viewerFromRequest(r), recipeID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, recipe)
	}
}
