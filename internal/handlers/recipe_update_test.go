package handlers

import (
	"bytes"
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

func TestRecipeUpdateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockRecipeUpdater(ctrl)

	userID := uuid.New()
	recipeID := uuid.New()

	router := chi.NewRouter()
	router.Patch("/recipes/{id}", NewRecipeUpdateHandler(mockSvc))

	body := func() *bytes.Reader {
		raw, _ := json.Marshal(RecipeRequest{
			Name:        "Milk porridge",
			Text:        "cook slowly",
			CookingTime: 15,
		})
		return bytes.NewReader(raw)
	}

	t.Run("success", func(t *testing.T) {
		mockSvc.EXPECT().
			Update(gomock.Any(), userID, recipeID, services.RecipeInput{
				Name:        "Milk porridge",
				Text:        "cook slowly",
				CookingTime: 15,
				Ingredients: []models.IngredientEntry{},
			}).
			Return(&models.RecipeResponse{ID: recipeID, Name: "Milk porridge"}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/recipes/"+recipeID.String(), body())
		req = req.WithContext(middlewares.SetUserIDToContext(req.Context(), userID))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp models.RecipeResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Milk porridge", resp.Name)
	})

	t.Run("not the author", func(t *testing.T) {
		mockSvc.EXPECT().
			Update(gomock.Any(), userID, recipeID, gomock.Any()).
			Return(nil, services.ErrPermissionDenied)

		req := httptest.NewRequest(http.MethodPatch, "/recipes/"+recipeID.String(), body())
		req = req.WithContext(middlewares.SetUserIDToContext(req.Context(), userID))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("unknown recipe", func(t *testing.T) {
		mockSvc.EXPECT().
			Update(gomock.Any(), userID, recipeID, gomock.Any()).
			Return(nil, services.ErrRecipeNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/recipes/"+recipeID.String(), body())
		req = req.WithContext(middlewares.SetUserIDToContext(req.Context(), userID))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, "/recipes/"+recipeID.String(), bytes.NewReader([]byte("{bad")))
		req = req.WithContext(middlewares.SetUserIDToContext(req.Context(), userID))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("anonymous", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, "/recipes/"+recipeID.String(), body())
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
