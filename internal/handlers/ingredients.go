package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/vmaksimov/foodgram-api/internal/models"
)

// IngredientLister defines the interface that the service must implement.
type IngredientLister interface {
	List(ctx context.Context, prefix string) ([]models.IngredientResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*models.IngredientResponse, error)
}

// NewIngredientListHandler returns an HTTP handler listing the catalog.
// @Summary List ingredients
// @Description Returns ingredients whose name starts with the query, case-insensitive, ordered by name.
// @Tags ingredients
// @Produce json
// @Param name query string false "Name prefix"
// @Success 200 {array} models.IngredientResponse
// @Router /ingredients [get]
func NewIngredientListHandler(svc IngredientLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ingredients, err := svc.List(r.Context(), r.URL.Query().Get("name"))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ingredients)
	}
}

// NewIngredientDetailHandler returns an HTTP handler for one catalog entry.
// @Summary Get an ingredient
// @Tags ingredients
// @Produce json
// @Param id path string true "Ingredient id"
// @Success 200 {object} models.IngredientResponse
// @Failure 404 {object} handlers.ErrorResponse "Unknown ingredient"
// @Router /ingredients/{id} [get]
func NewIngredientDetailHandler(svc IngredientLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuidParam(r, "id")
		if err != nil {
			writeError(w, http.StatusNotFound, "ingredient does not exist")
			return
		}

		ingredient, err := svc.Get(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ingredient)
	}
}
