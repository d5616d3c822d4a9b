package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// ShoppingListRenderer defines the interface that the service must implement.
type ShoppingListRenderer interface {
	Render(ctx context.Context, userID uuid.UUID) ([]byte, error)
}

// NewShoppingListDownloadHandler returns an HTTP handler serving the
// caller's aggregated shopping list as a text attachment.
// @Summary Download the shopping list
// @Description Merges the ingredients of every recipe in the caller's cart, summing amounts per (name, unit), and returns a plain-text file.
// @Tags recipes
// @Security BearerAuth
// @Produce plain
// @Success 200 {string} string "Shopping list"
// @Failure 401 {string} string "Unauthorized"
// @Router /recipes/download_shopping_cart [get]
func NewShoppingListDownloadHandler(svc ShoppingListRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromRequest(w, r)
		if !ok {
			return
		}

		report, err := svc.Render(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="shopping_list.txt"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(report)
	}
}
