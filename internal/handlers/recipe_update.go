package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/vmaksimov/foodgram-api/internal/models"
	"github.com/vmaksimov/foodgram-api/internal/services"
)

// RecipeUpdater defines the interface that the service must implement.
type RecipeUpdater interface {
	Update(ctx context.Context, actorID, recipeID uuid.UUID, input services.RecipeInput) (*models.RecipeResponse, error)
}

// NewRecipeUpdateHandler returns an HTTP handler updating a recipe.
// @Summary Update a recipe
// @Description Fully replaces the recipe's fields, tags and ingredients. Only the author may update. An empty image keeps the current one.
// @Tags recipes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Recipe id"
// @Param request body handlers.RecipeRequest true "Recipe payload"
// @Success 200 {object} models.RecipeResponse
// @Failure 400 {object} handlers.ErrorResponse "Validation failure"
// @Failure 403 {object} handlers.ErrorResponse "Not the author"
// @Failure 404 {object} handlers.ErrorResponse "Unknown recipe"
// @Router /recipes/{id} [patch]
func NewRecipeUpdateHandler(svc RecipeUpdater) http.HandlerFunc {
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

		var req RecipeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		recipe, err := svc.Update(r.Context(), userID, recipeID, req.toInput())
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, recipe)
	}
}
