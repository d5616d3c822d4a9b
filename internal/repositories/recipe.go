package repositories

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/vmaksimov/foodgram-api/internal/logger"
	"github.com/vmaksimov/foodgram-api/internal/models"
)

// RecipeReadRepository handles recipe read operations. It honors the
// request transaction when one is present: create and update respond
// with a hydration read, and that read must see the rows the write
// side just inserted on the still-uncommitted transaction.
type RecipeReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewRecipeReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *RecipeReadRepository {
	return &RecipeReadRepository{db: db, txGetter: txGetter}
}

func (r *RecipeReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// GetByID retrieves a recipe row. Returns nil without error when absent.
func (r *RecipeReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.RecipeDB, error) {
	const query = `
		SELECT id, author_id, name, image_url, text, cooking_time, pub_date
		FROM recipes
		WHERE id = $1
	`

	var recipe models.RecipeDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &recipe, query, id)

	logger.Log.Infow("query executed",
		"query", squash(query),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// ListTags returns the tags attached to a recipe, ordered by name.
func (r *RecipeReadRepository) ListTags(ctx context.Context, recipeID uuid.UUID) ([]models.TagDB, error) {
	const query = `
		SELECT t.id, t.name, t.color, t.slug
		FROM tags t
		JOIN recipe_tags rt ON rt.tag_id = t.id
		WHERE rt.recipe_id = $1
		ORDER BY t.name
	`

	var tags []models.TagDB
	err := sqlx.SelectContext(ctx, r.executor(ctx), &tags, query, recipeID)
	return tags, err
}

// ListIngredients returns the quantity associations of a recipe joined
// with the catalog, ordered by ingredient name.
func (r *RecipeReadRepository) ListIngredients(ctx context.Context, recipeID uuid.UUID) ([]models.RecipeIngredientResponse, error) {
	const query = `
		SELECT i.id, i.name, i.measurement_unit, ri.amount
		FROM recipe_ingredients ri
		JOIN ingredients i ON i.id = ri.ingredient_id
		WHERE ri.recipe_id = $1
		ORDER BY i.name
	`

	var ingredients []models.RecipeIngredientResponse
	err := sqlx.SelectContext(ctx, r.executor(ctx), &ingredients, query, recipeID)
	return ingredients, err
}

// List returns a filtered page of recipes, most recently published
// first, together with the total match count.
//
// Filters by viewer-relative sets (favorited, in cart) require a
// non-nil Viewer; the service layer short-circuits anonymous callers
// to an empty page before reaching here.
func (r *RecipeReadRepository) List(ctx context.Context, filter models.RecipeFilter) ([]models.RecipeDB, int64, error) {
	base := sq.Select().
		From("recipes r").
		PlaceholderFormat(sq.Dollar)

	if filter.AuthorID != nil {
		base = base.Where(sq.Eq{"r.author_id": *filter.AuthorID})
	}
	if len(filter.TagSlugs) > 0 {
		base = base.Where(
			`r.id IN (
				SELECT rt.recipe_id
				FROM recipe_tags rt
				JOIN tags t ON t.id = rt.tag_id
				WHERE t.slug = ANY(?)
			)`,
			filter.TagSlugs,
		)
	}
	if filter.IsFavorited != nil && filter.Viewer != nil {
		base = base.Where(
			memberClause("favorites", *filter.IsFavorited),
			*filter.Viewer,
		)
	}
	if filter.IsInShoppingCart != nil && filter.Viewer != nil {
		base = base.Where(
			memberClause("shopping_cart", *filter.IsInShoppingCart),
			*filter.Viewer,
		)
	}

	countQuery, countArgs, err := base.Column("COUNT(*)").ToSql()
	if err != nil {
		return nil, 0, err
	}

	ex := r.executor(ctx)

	var count int64
	if err := sqlx.GetContext(ctx, ex, &count, countQuery, countArgs...); err != nil {
		return nil, 0, err
	}

	listQuery, listArgs, err := base.
		Column("r.id").Column("r.author_id").Column("r.name").
		Column("r.image_url").Column("r.text").Column("r.cooking_time").Column("r.pub_date").
		OrderBy("r.pub_date DESC", "r.id").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	var recipes []models.RecipeDB
	err = sqlx.SelectContext(ctx, ex, &recipes, listQuery, listArgs...)

	logger.Log.Infow("query executed",
		"query", squash(listQuery),
		"args", listArgs,
		"error", err,
	)

	return recipes, count, err
}

// memberClause filters recipes by (non-)membership in the viewer's
// (user, recipe) ledger table.
func memberClause(table string, member bool) string {
	op := "IN"
	if !member {
		op = "NOT IN"
	}
	return "r.id " + op + " (SELECT recipe_id FROM " + table + " WHERE user_id = ?)"
}

// RecipeWriteRepository handles recipe write operations
type RecipeWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewRecipeWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *RecipeWriteRepository {
	return &RecipeWriteRepository{db: db, txGetter: txGetter}
}

func (r *RecipeWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new recipe with its tag and ingredient associations
// and returns the generated id. Runs on the request transaction when
// one is present.
func (r *RecipeWriteRepository) Save(ctx context.Context, recipe models.RecipeDB, tagIDs []uuid.UUID, ingredients []models.RecipeIngredientDB) (uuid.UUID, error) {
	const query = `
		INSERT INTO recipes (author_id, name, image_url, text, cooking_time, pub_date)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id
	`

	ex := r.executor(ctx)

	var id uuid.UUID
	err := sqlx.GetContext(ctx, ex, &id, query,
		recipe.AuthorID, recipe.Name, recipe.ImageURL, recipe.Text, recipe.CookingTime)

	logger.Log.Infow("query executed",
		"query", squash(query),
		"args", []any{recipe.AuthorID, recipe.Name},
		"error", err,
	)

	if err != nil {
		return uuid.Nil, err
	}

	if err := r.insertAssociations(ctx, ex, id, tagIDs, ingredients); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// Update mutates the recipe row in place and fully replaces both
// association sets: the old rows are deleted and the new ones
// reinserted. Callers must run this inside a transaction.
func (r *RecipeWriteRepository) Update(ctx context.Context, recipe models.RecipeDB, tagIDs []uuid.UUID, ingredients []models.RecipeIngredientDB) error {
	const query = `
		UPDATE recipes
		SET name = $2, image_url = $3, text = $4, cooking_time = $5
		WHERE id = $1
	`

	ex := r.executor(ctx)

	_, err := ex.ExecContext(ctx, query,
		recipe.ID, recipe.Name, recipe.ImageURL, recipe.Text, recipe.CookingTime)

	logger.Log.Infow("query executed",
		"query", squash(query),
		"args", []any{recipe.ID, recipe.Name},
		"error", err,
	)

	if err != nil {
		return err
	}

	for _, table := range []string{"recipe_tags", "recipe_ingredients"} {
		if _, err := ex.ExecContext(ctx, "DELETE FROM "+table+" WHERE recipe_id = $1", recipe.ID); err != nil {
			return err
		}
	}

	return r.insertAssociations(ctx, ex, recipe.ID, tagIDs, ingredients)
}

// Delete removes the recipe row; favorites, cart entries and
// associations go with it via the schema cascades.
func (r *RecipeWriteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM recipes WHERE id = $1`

	_, err := r.executor(ctx).ExecContext(ctx, query, id)

	logger.Log.Infow("query executed",
		"query", squash(query),
		"args", []any{id},
		"error", err,
	)

	return err
}

func (r *RecipeWriteRepository) insertAssociations(ctx context.Context, ex sqlx.ExtContext, recipeID uuid.UUID, tagIDs []uuid.UUID, ingredients []models.RecipeIngredientDB) error {
	for _, tagID := range tagIDs {
		const query = `INSERT INTO recipe_tags (recipe_id, tag_id) VALUES ($1, $2)`
		if _, err := ex.ExecContext(ctx, query, recipeID, tagID); err != nil {
			return err
		}
	}

	if len(ingredients) == 0 {
		return nil
	}

	rows := make([]models.RecipeIngredientDB, len(ingredients))
	for i, ing := range ingredients {
		ing.RecipeID = recipeID
		rows[i] = ing
	}

	const query = `
		INSERT INTO recipe_ingredients (recipe_id, ingredient_id, amount)
		VALUES (:recipe_id, :ingredient_id, :amount)
	`
	_, err := sqlx.NamedExecContext(ctx, ex, query, rows)
	return err
}
