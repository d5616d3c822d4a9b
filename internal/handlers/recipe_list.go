package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/vmaksimov/foodgram-api/internal/models"
)

// RecipePageLister defines the interface that the service must implement.
type RecipePageLister interface {
	List(ctx context.Context, filter models.RecipeFilter) (*models.RecipeListResponse, error)
}

// NewRecipeListHandler returns an HTTP handler listing recipes.
// @Summary List recipes
// @Description Returns a page of recipes, newest first. Tag filters combine with OR; is_favorited and is_in_shopping_cart filter relative to the caller and yield an empty page for anonymous requests.
// @Tags recipes
// @Produce json
// @Param page query int false "Page number, starting at 1"
// @Param limit query int false "Page size, at most 100"
// @Param author query string false "Author id"
// @Param tags query []string false "Tag slugs" collectionFormat(multi)
// @Param is_favorited query int false "1 to keep only favorited recipes"
// @Param is_in_shopping_cart query int false "1 to keep only recipes in the cart"
// @Success 200 {object} models.RecipeListResponse
// @Router /recipes [get]
func NewRecipeListHandler(svc RecipePageLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := svc.List(r.Context(), recipeFilterFromRequest(r))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, page)
	}
}

func recipeFilterFromRequest(r *http.Request) models.RecipeFilter {
	limit, offset := paginationFromRequest(r)
	filter := models.RecipeFilter{
		Viewer: viewerFromRequest(r),
		Limit:  limit,
		Offset: offset,
	}

	query := r.URL.Query()

	if raw := query.Get("author"); raw != "" {
		// A malformed author id matches nothing rather than erroring.
		authorID, err := uuid.Parse(raw)
		if err != nil {
			authorID = uuid.Nil
		}
		filter.AuthorID = &authorID
	}

	if slugs := query["tags"]; len(slugs) > 0 {
		filter.TagSlugs = slugs
	}

	if flag, ok := boolFlag(query.Get("is_favorited")); ok {
		filter.IsFavorited = &flag
	}
	if flag, ok := boolFlag(query.Get("is_in_shopping_cart")); ok {
		filter.IsInShoppingCart = &flag
	}

	return filter
}

// boolFlag reads the 1/0 and true/false spellings of filter flags.
func boolFlag(raw string) (value, ok bool) {
	switch raw {
	case "1", "true", "True":
		return true, true
	case "0", "false", "False":
		return false, true
	default:
		return false, false
	}
}
