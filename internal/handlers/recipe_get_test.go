package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/vmaksimov/foodgram-api/internal/middlewares"
	"github.com/vmaksimov/foodgram-api/internal/models"
	"github.com/vmaksimov/foodgram-api/internal/services"
)

func TestRecipeDetailHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockRecipeGetter(ctrl)

	viewerID := uuid.New()
	recipeID := uuid.New()

	router := chi.NewRouter()
	router.Get("/recipes/{id}", NewRecipeDetailHandler(mockSvc))

	t.Run("anonymous viewer", func(t *testing.T) {
		mockSvc.EXPECT().
			Get(gomock.Any(), (*uuid.UUID)(nil), recipeID).
			Return(&models.RecipeResponse{ID: recipeID, Name: "Pancakes"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/recipes/"+recipeID.String(), nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp models.RecipeResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, recipeID, resp.ID)
		assert.False(t, resp.IsFavorited)
	})

	t.Run("authenticated viewer", func(t *testing.T) {
		mockSvc.EXPECT().
			Get(gomock.Any(), &viewerID, recipeID).
			Return(&models.RecipeResponse{ID: recipeID, Name: "Pancakes", IsFavorited: true}, nil)

		req := httptest.NewRequest(http.MethodGet, "/recipes/"+recipeID.String(), nil)
		req = req.WithContext(middlewares.SetUserIDToContext(req.Context(), viewerID))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp models.RecipeResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.IsFavorited)
	})

	t.Run("unknown recipe", func(t *testing.T) {
		mockSvc.EXPECT().
			Get(gomock.Any(), (*uuid.UUID)(nil), recipeID).
			Return(nil, services.ErrRecipeNotFound)

		req := httptest.NewRequest(http.MethodGet, "/recipes/"+recipeID.String(), nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/recipes/not-a-uuid", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
