package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/vmaksimov/foodgram-api/internal/models"
)

func TestRecipeWriteRepository_SaveAndGet(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	authorID := seedUser(t, db, "author@example.com", "author")
	tagID := seedTag(t, db, "dinner", "#0000FF", "dinner")
	flourID := seedIngredient(t, db, "flour", "g")
	eggID := seedIngredient(t, db, "egg", "pcs")

	writeRepo := NewRecipeWriteRepository(db, nil)
	readRepo := NewRecipeReadRepository(db, nil)
	ctx := context.Background()

	id, err := writeRepo.Save(ctx,
		models.RecipeDB{
			AuthorID:    authorID,
			Name:        "Pancakes",
			ImageURL:    "http://img.test/pancakes.png",
			Text:        "Mix and fry",
			CookingTime: 20,
		},
		[]uuid.UUID{tagID},
		[]models.RecipeIngredientDB{
			{IngredientID: flourID, Amount: 500},
			{IngredientID: eggID, Amount: 2},
		},
	)
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	recipe, err := readRepo.GetByID(ctx, id)
	assert.NoError(t, err)
	assert.NotNil(t, recipe)
	assert.Equal(t, "Pancakes", recipe.Name)
	assert.Equal(t, authorID, recipe.AuthorID)
	assert.Equal(t, 20, recipe.CookingTime)
	assert.False(t, recipe.PubDate.IsZero())

	tags, err := readRepo.ListTags(ctx, id)
	assert.NoError(t, err)
	assert.Len(t, tags, 1)
	assert.Equal(t, "dinner", tags[0].Name)

	ingredients, err := readRepo.ListIngredients(ctx, id)
	assert.NoError(t, err)
	assert.Len(t, ingredients, 2)
	assert.Equal(t, "egg", ingredients[0].Name)
	assert.Equal(t, 2, ingredients[0].Amount)
	assert.Equal(t, "flour", ingredients[1].Name)
	assert.Equal(t, 500, ingredients[1].Amount)
}

func TestRecipeReadRepository_GetByID_NotFound(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewRecipeReadRepository(db, nil)

	recipe, err := repo.GetByID(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, recipe)
}

func TestRecipeWriteRepository_Update_ReplacesAssociations(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	authorID := seedUser(t, db, "author@example.com", "author")
	breakfastID := seedTag(t, db, "breakfast", "#FF0000", "breakfast")
	dinnerID := seedTag(t, db, "dinner", "#0000FF", "dinner")
	flourID := seedIngredient(t, db, "flour", "g")
	milkID := seedIngredient(t, db, "milk", "ml")

	writeRepo := NewRecipeWriteRepository(db, nil)
	readRepo := NewRecipeReadRepository(db, nil)
	ctx := context.Background()

	id, err := writeRepo.Save(ctx,
		models.RecipeDB{AuthorID: authorID, Name: "Porridge", ImageURL: "http://img.test/p.png", Text: "cook", CookingTime: 10},
		[]uuid.UUID{breakfastID},
		[]models.RecipeIngredientDB{{IngredientID: flourID, Amount: 100}},
	)
	assert.NoError(t, err)

	err = writeRepo.Update(ctx,
		models.RecipeDB{ID: id, Name: "Milk porridge", ImageURL: "http://img.test/p2.png", Text: "cook slowly", CookingTime: 15},
		[]uuid.UUID{dinnerID},
		[]models.RecipeIngredientDB{{IngredientID: milkID, Amount: 250}},
	)
	assert.NoError(t, err)

	recipe, err := readRepo.GetByID(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, "Milk porridge", recipe.Name)
	assert.Equal(t, "http://img.test/p2.png", recipe.ImageURL)
	assert.Equal(t, 15, recipe.CookingTime)

	tags, err := readRepo.ListTags(ctx, id)
	assert.NoError(t, err)
	assert.Len(t, tags, 1)
	assert.Equal(t, "dinner", tags[0].Name)

	ingredients, err := readRepo.ListIngredients(ctx, id)
	assert.NoError(t, err)
	assert.Len(t, ingredients, 1)
	assert.Equal(t, "milk", ingredients[0].Name)
	assert.Equal(t, 250, ingredients[0].Amount)
}

func TestRecipeWriteRepository_Delete_Cascades(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	authorID := seedUser(t, db, "author@example.com", "author")
	fanID := seedUser(t, db, "fan@example.com", "fan")
	flourID := seedIngredient(t, db, "flour", "g")

	writeRepo := NewRecipeWriteRepository(db, nil)
	ctx := context.Background()

	id, err := writeRepo.Save(ctx,
		models.RecipeDB{AuthorID: authorID, Name: "Bread", ImageURL: "http://img.test/b.png", Text: "bake", CookingTime: 60},
		nil,
		[]models.RecipeIngredientDB{{IngredientID: flourID, Amount: 700}},
	)
	assert.NoError(t, err)

	_, err = db.Exec("INSERT INTO favorites (user_id, recipe_id) VALUES ($1, $2)", fanID, id)
	assert.NoError(t, err)
	_, err = db.Exec("INSERT INTO shopping_cart (user_id, recipe_id) VALUES ($1, $2)", fanID, id)
	assert.NoError(t, err)

	err = writeRepo.Delete(ctx, id)
	assert.NoError(t, err)

	for _, table := range []string{"recipes", "recipe_ingredients", "favorites", "shopping_cart"} {
		var count int64
		err = db.Get(&count, "SELECT COUNT(*) FROM "+table)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), count, table)
	}
}

func TestRecipeRepositories_TransactionVisibility(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	authorID := seedUser(t, db, "author@example.com", "author")
	flourID := seedIngredient(t, db, "flour", "g")
	milkID := seedIngredient(t, db, "milk", "ml")

	tx, err := db.Beginx()
	assert.NoError(t, err)
	txGetter := func(ctx context.Context) *sqlx.Tx { return tx }

	writeRepo := NewRecipeWriteRepository(db, txGetter)
	txRead := NewRecipeReadRepository(db, txGetter)
	poolRead := NewRecipeReadRepository(db, nil)
	ctx := context.Background()

	id, err := writeRepo.Save(ctx,
		models.RecipeDB{AuthorID: authorID, Name: "Pancakes", ImageURL: "http://img.test/p.png", Text: "fry", CookingTime: 20},
		nil,
		[]models.RecipeIngredientDB{{IngredientID: flourID, Amount: 200}},
	)
	assert.NoError(t, err)

	// The hydration read on the transaction sees the uncommitted rows.
	recipe, err := txRead.GetByID(ctx, id)
	assert.NoError(t, err)
	assert.NotNil(t, recipe)
	assert.Equal(t, "Pancakes", recipe.Name)

	ingredients, err := txRead.ListIngredients(ctx, id)
	assert.NoError(t, err)
	assert.Len(t, ingredients, 1)
	assert.Equal(t, "flour", ingredients[0].Name)

	// A pool connection cannot: the insert has not committed yet.
	invisible, err := poolRead.GetByID(ctx, id)
	assert.NoError(t, err)
	assert.Nil(t, invisible)

	// An update on the same transaction hydrates with the replaced set.
	err = writeRepo.Update(ctx,
		models.RecipeDB{ID: id, Name: "Milk pancakes", ImageURL: "http://img.test/p.png", Text: "fry", CookingTime: 25},
		nil,
		[]models.RecipeIngredientDB{{IngredientID: milkID, Amount: 250}},
	)
	assert.NoError(t, err)

	recipe, err = txRead.GetByID(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, "Milk pancakes", recipe.Name)

	ingredients, err = txRead.ListIngredients(ctx, id)
	assert.NoError(t, err)
	assert.Len(t, ingredients, 1)
	assert.Equal(t, "milk", ingredients[0].Name)

	assert.NoError(t, tx.Commit())

	committed, err := poolRead.GetByID(ctx, id)
	assert.NoError(t, err)
	assert.NotNil(t, committed)
	assert.Equal(t, "Milk pancakes", committed.Name)
}

func TestRecipeReadRepository_List(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	aliceID := seedUser(t, db, "alice@example.com", "alice")
	bobID := seedUser(t, db, "bob@example.com", "bob")
	breakfastID := seedTag(t, db, "breakfast", "#FF0000", "breakfast")
	dinnerID := seedTag(t, db, "dinner", "#0000FF", "dinner")

	pancakesID := seedRecipe(t, db, aliceID, "Pancakes")
	soupID := seedRecipe(t, db, bobID, "Soup")
	saladID := seedRecipe(t, db, bobID, "Salad")

	// Fixed publication order: salad newest, pancakes oldest.
	for i, id := range []uuid.UUID{pancakesID, soupID, saladID} {
		_, err := db.Exec("UPDATE recipes SET pub_date = now() - make_interval(days => $1) WHERE id = $2", 3-i, id)
		assert.NoError(t, err)
	}

	_, err := db.Exec("INSERT INTO recipe_tags (recipe_id, tag_id) VALUES ($1, $2)", pancakesID, breakfastID)
	assert.NoError(t, err)
	_, err = db.Exec("INSERT INTO recipe_tags (recipe_id, tag_id) VALUES ($1, $2)", soupID, dinnerID)
	assert.NoError(t, err)

	_, err = db.Exec("INSERT INTO favorites (user_id, recipe_id) VALUES ($1, $2)", aliceID, soupID)
	assert.NoError(t, err)
	_, err = db.Exec("INSERT INTO shopping_cart (user_id, recipe_id) VALUES ($1, $2)", aliceID, saladID)
	assert.NoError(t, err)

	repo := NewRecipeReadRepository(db, nil)
	ctx := context.Background()

	boolPtr := func(b bool) *bool { return &b }

	t.Run("NewestFirst", func(t *testing.T) {
		recipes, count, err := repo.List(ctx, models.RecipeFilter{Limit: 10})
		assert.NoError(t, err)
		assert.Equal(t, int64(3), count)
		assert.Len(t, recipes, 3)
		assert.Equal(t, "Salad", recipes[0].Name)
		assert.Equal(t, "Soup", recipes[1].Name)
		assert.Equal(t, "Pancakes", recipes[2].Name)
	})

	t.Run("Pagination", func(t *testing.T) {
		recipes, count, err := repo.List(ctx, models.RecipeFilter{Limit: 2, Offset: 2})
		assert.NoError(t, err)
		assert.Equal(t, int64(3), count)
		assert.Len(t, recipes, 1)
		assert.Equal(t, "Pancakes", recipes[0].Name)
	})

	t.Run("ByAuthor", func(t *testing.T) {
		recipes, count, err := repo.List(ctx, models.RecipeFilter{AuthorID: &bobID, Limit: 10})
		assert.NoError(t, err)
		assert.Equal(t, int64(2), count)
		assert.Len(t, recipes, 2)
		assert.Equal(t, "Salad", recipes[0].Name)
		assert.Equal(t, "Soup", recipes[1].Name)
	})

	t.Run("ByTagSlugs", func(t *testing.T) {
		recipes, count, err := repo.List(ctx, models.RecipeFilter{TagSlugs: []string{"breakfast", "dinner"}, Limit: 10})
		assert.NoError(t, err)
		assert.Equal(t, int64(2), count)
		assert.Len(t, recipes, 2)
		assert.Equal(t, "Soup", recipes[0].Name)
		assert.Equal(t, "Pancakes", recipes[1].Name)
	})

	t.Run("Favorited", func(t *testing.T) {
		recipes, count, err := repo.List(ctx, models.RecipeFilter{IsFavorited: boolPtr(true), Viewer: &aliceID, Limit: 10})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), count)
		assert.Len(t, recipes, 1)
		assert.Equal(t, "Soup", recipes[0].Name)
	})

	t.Run("NotFavorited", func(t *testing.T) {
		recipes, count, err := repo.List(ctx, models.RecipeFilter{IsFavorited: boolPtr(false), Viewer: &aliceID, Limit: 10})
		assert.NoError(t, err)
		assert.Equal(t, int64(2), count)
		assert.Len(t, recipes, 2)
	})

	t.Run("InShoppingCart", func(t *testing.T) {
		recipes, count, err := repo.List(ctx, models.RecipeFilter{IsInShoppingCart: boolPtr(true), Viewer: &aliceID, Limit: 10})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), count)
		assert.Len(t, recipes, 1)
		assert.Equal(t, "Salad", recipes[0].Name)
	})

	t.Run("Combined", func(t *testing.T) {
		recipes, count, err := repo.List(ctx, models.RecipeFilter{
			AuthorID:    &bobID,
			TagSlugs:    []string{"dinner"},
			IsFavorited: boolPtr(true),
			Viewer:      &aliceID,
			Limit:       10,
		})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), count)
		assert.Len(t, recipes, 1)
		assert.Equal(t, "Soup", recipes[0].Name)
	})
}
