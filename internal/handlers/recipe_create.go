package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/vmaksimov/foodgram-api/internal/models"
	"github.com/vmaksimov/foodgram-api/internal/services"
)

// RecipeCreator defines the interface that the service must implement.
type RecipeCreator interface {
	Create(ctx context.Context, authorID uuid.UUID, input services.RecipeInput) (*models.RecipeResponse, error)
}

// RecipeIngredientEntry is one ingredient row of a recipe write payload.
type RecipeIngredientEntry struct {
	ID     uuid.UUID `json:"id"`     // Ingredient id
	Amount int       `json:"amount"` // Amount in the ingredient's unit, 1..32000
}

// RecipeRequest is the write payload for creating or updating a recipe.
type RecipeRequest struct {
	Name        string                  `json:"name"`         // Recipe name
	Image       string                  `json:"image"`        // Base64 image data URI
	Text        string                  `json:"text"`         // Cooking instructions
	CookingTime int                     `json:"cooking_time"` // Minutes, 1..32000
	Tags        []uuid.UUID             `json:"tags"`         // Tag ids
	Ingredients []RecipeIngredientEntry `json:"ingredients"`  // Ingredient rows
}

func (req RecipeRequest) toInput() services.RecipeInput {
	entries := make([]models.IngredientEntry, 0, len(req.Ingredients))
	for _, row := range req.Ingredients {
		entries = append(entries, models.IngredientEntry{ID: row.ID, Amount: row.Amount})
	}
	return services.RecipeInput{
		Name:        req.Name,
		Image:       req.Image,
		Text:        req.Text,
		CookingTime: req.CookingTime,
		TagIDs:      req.Tags,
		Ingredients: entries,
	}
}

// NewRecipeCreateHandler returns an HTTP handler creating a recipe.
// @Summary Create a recipe
// @Description Publishes a recipe authored by the caller. The image is a base64 data URI and is required.
// @Tags recipes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body handlers.RecipeRequest true "Recipe payload"
// @Success 201 {object} models.RecipeResponse
// @Failure 400 {object} handlers.ErrorResponse "Validation failure"
// @Failure 401 {string} string "Unauthorized"
// @Router /recipes [post]
func NewRecipeCreateHandler(svc RecipeCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromRequest(w, r)
		if !ok {
			return
		}

		var req RecipeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		recipe, err := svc.Create(r.Context(), userID, req.toInput())
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, recipe)
	}
}
