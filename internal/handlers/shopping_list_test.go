package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/vmaksimov/foodgram-api/internal/middlewares"
)

func TestShoppingListDownloadHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockShoppingListRenderer(ctrl)
	handler := NewShoppingListDownloadHandler(mockSvc)

	userID := uuid.New()

	t.Run("serves the report as an attachment", func(t *testing.T) {
		report := "Shopping list:\n\nflour — 500 g"
		mockSvc.EXPECT().
			Render(gomock.Any(), userID).
			Return([]byte(report), nil)

		req := httptest.NewRequest(http.MethodGet, "/api/recipes/download_shopping_cart", nil)
		req = req.WithContext(middlewares.SetUserIDToContext(req.Context(), userID))
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="shopping_list.txt"`, w.Header().Get("Content-Disposition"))
		assert.Equal(t, report, w.Body.String())
	})

	t.Run("anonymous is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/recipes/download_shopping_cart", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
