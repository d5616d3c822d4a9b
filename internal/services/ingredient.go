package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/vmaksimov/foodgram-api/internal/models"
)

// IngredientReader defines read operations over the ingredient catalog.
type IngredientReader interface {
	List(ctx context.Context, prefix string) ([]models.IngredientDB, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.IngredientDB, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.IngredientDB, error)
}

// IngredientService exposes the read-only catalog.
type IngredientService struct {
	reader IngredientReader
}

func NewIngredientService(reader IngredientReader) *IngredientService {
	return &IngredientService{reader: reader}
}

// List returns catalog entries whose name starts with prefix,
// case-insensitive, ordered by name.
func (svc *IngredientService) List(ctx context.Context, prefix string) ([]models.IngredientResponse, error) {
	ingredients, err := svc.reader.List(ctx, prefix)
	if err != nil {
		return nil, err
	}

	results := make([]models.IngredientResponse, 0, len(ingredients))
	for _, ing := range ingredients {
		results = append(results, models.IngredientResponse(ing))
	}
	return results, nil
}

// Get returns one catalog entry.
func (svc *IngredientService) Get(ctx context.Context, id uuid.UUID) (*models.IngredientResponse, error) {
	ingredient, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ingredient == nil {
		return nil, ErrIngredientNotFound
	}

	resp := models.IngredientResponse(*ingredient)
	return &resp, nil
}
