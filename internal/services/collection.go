package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/vmaksimov/foodgram-api/internal/models"
)

// CollectionService implements the shared toggle semantics of the
// favorite and shopping-cart ledgers: conflicting add, idempotent
// remove. One instance per underlying table.
type CollectionService struct {
	links   RecipeLinker
	recipes RecipeReader
}

// NewCollectionService creates a toggle service over one ledger.
func NewCollectionService(links RecipeLinker, recipes RecipeReader) *CollectionService {
	return &CollectionService{
		links:   links,
		recipes: recipes,
	}
}

// Add inserts the (user, recipe) pair and returns the short recipe
// projection. A duplicate add fails with ErrAlreadyAdded; under a
// race between two adds exactly one succeeds.
func (svc *CollectionService) Add(ctx context.Context, userID, recipeID uuid.UUID) (*models.RecipeShortResponse, error) {
	recipe, err := svc.recipes.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, ErrRecipeNotFound
	}

	inserted, err := svc.links.Add(ctx, userID, recipeID)
	if err != nil {
		return nil, err
	}
	if !inserted {
		return nil, ErrAlreadyAdded
	}

	return &models.RecipeShortResponse{
		ID:          recipe.ID,
		Name:        recipe.Name,
		Image:       recipe.ImageURL,
		CookingTime: recipe.CookingTime,
	}, nil
}

// Remove deletes the (user, recipe) pair. Removing an absent pair is
// not an error.
func (svc *CollectionService) Remove(ctx context.Context, userID, recipeID uuid.UUID) error {
	recipe, err := svc.recipes.GetByID(ctx, recipeID)
	if err != nil {
		return err
	}
	if recipe == nil {
		return ErrRecipeNotFound
	}

	return svc.links.Remove(ctx, userID, recipeID)
}
