package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/vmaksimov/foodgram-api/internal/logger"
	"github.com/vmaksimov/foodgram-api/internal/models"
)

// RecipeReader defines read operations for recipes.
type RecipeReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.RecipeDB, error)
	ListTags(ctx context.Context, recipeID uuid.UUID) ([]models.TagDB, error)
	ListIngredients(ctx context.Context, recipeID uuid.UUID) ([]models.RecipeIngredientResponse, error)
	List(ctx context.Context, filter models.RecipeFilter) ([]models.RecipeDB, int64, error)
}

// RecipeWriter defines write operations for recipes.
type RecipeWriter interface {
	Save(ctx context.Context, recipe models.RecipeDB, tagIDs []uuid.UUID, ingredients []models.RecipeIngredientDB) (uuid.UUID, error)
	Update(ctx context.Context, recipe models.RecipeDB, tagIDs []uuid.UUID, ingredients []models.RecipeIngredientDB) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// RecipeLinker is a (user, recipe) membership ledger.
type RecipeLinker interface {
	Add(ctx context.Context, userID, recipeID uuid.UUID) (bool, error)
	Remove(ctx context.Context, userID, recipeID uuid.UUID) error
	Exists(ctx context.Context, userID, recipeID uuid.UUID) (bool, error)
}

// RecipeInput is the write payload for creating or updating a recipe.
type RecipeInput struct {
	Name        string
	Image       string // base64 data URI; may be empty on update to keep the current image
	Text        string
	CookingTime int
	TagIDs      []uuid.UUID
	Ingredients []models.IngredientEntry
}

// RecipeService orchestrates recipe CRUD and projections.
type RecipeService struct {
	reader      RecipeReader
	writer      RecipeWriter
	tags        TagReader
	ingredients IngredientReader
	users       UserReader
	subs        SubscriptionChecker
	favorites   RecipeLinker
	cart        RecipeLinker
	images      ImageStore
}

// NewRecipeService creates a new RecipeService instance.
func NewRecipeService(
	reader RecipeReader,
	writer RecipeWriter,
	tags TagReader,
	ingredients IngredientReader,
	users UserReader,
	subs SubscriptionChecker,
	favorites RecipeLinker,
	cart RecipeLinker,
	images ImageStore,
) *RecipeService {
	return &RecipeService{
		reader:      reader,
		writer:      writer,
		tags:        tags,
		ingredients: ingredients,
		users:       users,
		subs:        subs,
		favorites:   favorites,
		cart:        cart,
		images:      images,
	}
}

// Create validates and persists a new recipe for the author and
// returns its full read projection.
func (svc *RecipeService) Create(ctx context.Context, authorID uuid.UUID, input RecipeInput) (*models.RecipeResponse, error) {
	if err := svc.validateInput(ctx, input); err != nil {
		return nil, err
	}
	if input.Image == "" {
		return nil, NewValidationError("image", "must not be empty")
	}

	imageURL, err := svc.images.SaveDataURI(ctx, "recipes", input.Image)
	if err != nil {
		return nil, NewValidationError("image", "must be a base64 image data URI")
	}

	recipe := models.RecipeDB{
		AuthorID:    authorID,
		Name:        input.Name,
		ImageURL:    imageURL,
		Text:        input.Text,
		CookingTime: input.CookingTime,
	}

	id, err := svc.writer.Save(ctx, recipe, input.TagIDs, ingredientRows(input.Ingredients))
	if err != nil {
		logger.Log.Errorw("failed to save recipe", "err", err)
		if delErr := svc.images.Delete(ctx, imageURL); delErr != nil {
			logger.Log.Errorw("failed to delete orphaned recipe image", "err", delErr)
		}
		return nil, err
	}

	return svc.Get(ctx, &authorID, id)
}

// Update mutates a recipe in place, fully replacing its tag and
// ingredient sets. Only the author may update.
func (svc *RecipeService) Update(ctx context.Context, actorID, recipeID uuid.UUID, input RecipeInput) (*models.RecipeResponse, error) {
	recipe, err := svc.reader.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, ErrRecipeNotFound
	}
	if recipe.AuthorID != actorID {
		return nil, ErrPermissionDenied
	}

	if err := svc.validateInput(ctx, input); err != nil {
		return nil, err
	}

	oldImageURL := recipe.ImageURL
	if input.Image != "" {
		imageURL, err := svc.images.SaveDataURI(ctx, "recipes", input.Image)
		if err != nil {
			return nil, NewValidationError("image", "must be a base64 image data URI")
		}
		recipe.ImageURL = imageURL
	}

	recipe.Name = input.Name
	recipe.Text = input.Text
	recipe.CookingTime = input.CookingTime

	if err := svc.writer.Update(ctx, *recipe, input.TagIDs, ingredientRows(input.Ingredients)); err != nil {
		logger.Log.Errorw("failed to update recipe", "err", err)
		return nil, err
	}

	if input.Image != "" && oldImageURL != recipe.ImageURL {
		if err := svc.images.Delete(ctx, oldImageURL); err != nil {
			logger.Log.Errorw("failed to delete old recipe image", "err", err)
		}
	}

	return svc.Get(ctx, &actorID, recipeID)
}

// Delete removes a recipe; favorites, cart rows and associations
// cascade with it. Permitted for the author and admins.
func (svc *RecipeService) Delete(ctx context.Context, actorID, recipeID uuid.UUID) error {
	recipe, err := svc.reader.GetByID(ctx, recipeID)
	if err != nil {
		return err
	}
	if recipe == nil {
		return ErrRecipeNotFound
	}

	if recipe.AuthorID != actorID {
		actor, err := svc.users.GetByID(ctx, actorID)
		if err != nil {
			return err
		}
		if actor == nil || !actor.IsAdmin() {
			return ErrPermissionDenied
		}
	}

	if err := svc.writer.Delete(ctx, recipeID); err != nil {
		logger.Log.Errorw("failed to delete recipe", "err", err)
		return err
	}

	if err := svc.images.Delete(ctx, recipe.ImageURL); err != nil {
		logger.Log.Errorw("failed to delete recipe image", "err", err)
	}
	return nil
}

// Get returns the full projection of a recipe relative to the viewer.
// viewer is nil for anonymous callers, whose is_favorited and
// is_in_shopping_cart are always false.
func (svc *RecipeService) Get(ctx context.Context, viewer *uuid.UUID, recipeID uuid.UUID) (*models.RecipeResponse, error) {
	recipe, err := svc.reader.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, ErrRecipeNotFound
	}

	return svc.project(ctx, viewer, recipe)
}

// List returns a filtered page of recipe projections. Filtering by
// the viewer-relative flags with no authenticated viewer yields an
// empty page, not an error.
func (svc *RecipeService) List(ctx context.Context, filter models.RecipeFilter) (*models.RecipeListResponse, error) {
	if filter.Viewer == nil && (filter.IsFavorited != nil || filter.IsInShoppingCart != nil) {
		return &models.RecipeListResponse{Count: 0, Results: []models.RecipeResponse{}}, nil
	}

	recipes, count, err := svc.reader.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	results := make([]models.RecipeResponse, 0, len(recipes))
	for i := range recipes {
		projected, err := svc.project(ctx, filter.Viewer, &recipes[i])
		if err != nil {
			return nil, err
		}
		results = append(results, *projected)
	}

	return &models.RecipeListResponse{Count: count, Results: results}, nil
}

func (svc *RecipeService) project(ctx context.Context, viewer *uuid.UUID, recipe *models.RecipeDB) (*models.RecipeResponse, error) {
	author, err := svc.users.GetByID(ctx, recipe.AuthorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrUserNotFound
	}

	subscribed := false
	if viewer != nil && *viewer != author.ID {
		if subscribed, err = svc.subs.Exists(ctx, *viewer, author.ID); err != nil {
			return nil, err
		}
	}

	tags, err := svc.reader.ListTags(ctx, recipe.ID)
	if err != nil {
		return nil, err
	}
	tagResponses := make([]models.TagResponse, 0, len(tags))
	for _, tag := range tags {
		tagResponses = append(tagResponses, models.TagResponse(tag))
	}

	ingredients, err := svc.reader.ListIngredients(ctx, recipe.ID)
	if err != nil {
		return nil, err
	}
	if ingredients == nil {
		ingredients = []models.RecipeIngredientResponse{}
	}

	favorited := false
	inCart := false
	if viewer != nil {
		if favorited, err = svc.favorites.Exists(ctx, *viewer, recipe.ID); err != nil {
			return nil, err
		}
		if inCart, err = svc.cart.Exists(ctx, *viewer, recipe.ID); err != nil {
			return nil, err
		}
	}

	return &models.RecipeResponse{
		ID:   recipe.ID,
		Tags: tagResponses,
		Author: models.UserResponse{
			ID:           author.ID,
			Email:        author.Email,
			Username:     author.Username,
			FirstName:    author.FirstName,
			LastName:     author.LastName,
			Avatar:       author.AvatarURL,
			IsSubscribed: subscribed,
		},
		Ingredients:      ingredients,
		IsFavorited:      favorited,
		IsInShoppingCart: inCart,
		Name:             recipe.Name,
		Image:            recipe.ImageURL,
		Text:             recipe.Text,
		CookingTime:      recipe.CookingTime,
	}, nil
}

func (svc *RecipeService) validateInput(ctx context.Context, input RecipeInput) error {
	if input.Name == "" {
		return NewValidationError("name", "must not be empty")
	}
	if input.CookingTime < models.CookingTimeMin || input.CookingTime > models.CookingTimeMax {
		return NewValidationError("cooking_time", "must be between 1 and 32000 minutes")
	}
	if len(input.Ingredients) == 0 {
		return NewValidationError("ingredients", "must contain at least one ingredient")
	}

	seen := make(map[uuid.UUID]struct{}, len(input.Ingredients))
	for _, entry := range input.Ingredients {
		if _, dup := seen[entry.ID]; dup {
			return NewValidationError("ingredients", "must not repeat an ingredient")
		}
		seen[entry.ID] = struct{}{}

		if entry.Amount < models.AmountMin || entry.Amount > models.AmountMax {
			return NewValidationError("ingredients", "amount must be between 1 and 32000")
		}
	}

	ids := make([]uuid.UUID, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	found, err := svc.ingredients.GetByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(found) != len(ids) {
		return ErrIngredientNotFound
	}

	if len(input.TagIDs) > 0 {
		tagSeen := make(map[uuid.UUID]struct{}, len(input.TagIDs))
		for _, id := range input.TagIDs {
			if _, dup := tagSeen[id]; dup {
				return NewValidationError("tags", "must not repeat a tag")
			}
			tagSeen[id] = struct{}{}
		}
		tags, err := svc.tags.GetByIDs(ctx, input.TagIDs)
		if err != nil {
			return err
		}
		if len(tags) != len(input.TagIDs) {
			return ErrTagNotFound
		}
	}

	return nil
}

func ingredientRows(entries []models.IngredientEntry) []models.RecipeIngredientDB {
	rows := make([]models.RecipeIngredientDB, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, models.RecipeIngredientDB{
			IngredientID: entry.ID,
			Amount:       entry.Amount,
		})
	}
	return rows
}
