package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/vmaksimov/foodgram-api/internal/logger"
	"github.com/vmaksimov/foodgram-api/internal/models"
)

// IngredientRepository handles the read-only ingredient catalog plus
// its idempotent seed import.
type IngredientRepository struct {
	db *sqlx.DB
}

func NewIngredientRepository(db *sqlx.DB) *IngredientRepository {
	return &IngredientRepository{db: db}
}

// likeEscaper neutralizes LIKE metacharacters in user-supplied input
// so a prefix of "100%" matches the literal name, not everything.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// List returns ingredients whose name starts with prefix,
// case-insensitive, ordered by name. An empty prefix lists everything.
func (r *IngredientRepository) List(ctx context.Context, prefix string) ([]models.IngredientDB, error) {
	const query = `
		SELECT id, name, measurement_unit
		FROM ingredients
		WHERE name ILIKE $1 || '%'
		ORDER BY name
	`

	var ingredients []models.IngredientDB
	err := r.db.SelectContext(ctx, &ingredients, query, likeEscaper.Replace(prefix))

	logger.Log.Infow("query executed",
		"query", squash(query),
		"args", []any{prefix},
		"error", err,
	)

	return ingredients, err
}

// GetByID retrieves one ingredient. Returns nil without error when absent.
func (r *IngredientRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.IngredientDB, error) {
	const query = `
		SELECT id, name, measurement_unit
		FROM ingredients
		WHERE id = $1
	`

	var ingredient models.IngredientDB
	err := r.db.GetContext(ctx, &ingredient, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// GetByIDs retrieves the ingredients matching ids. Missing ids simply
// do not appear in the result.
func (r *IngredientRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.IngredientDB, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`
		SELECT id, name, measurement_unit
		FROM ingredients
		WHERE id IN (?)
	`, ids)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	var ingredients []models.IngredientDB
	err = r.db.SelectContext(ctx, &ingredients, query, args...)

	logger.Log.Infow("query executed",
		"query", squash(query),
		"args", []any{ids},
		"error", err,
	)

	return ingredients, err
}

// SaveBatch imports catalog entries, skipping names that already
// exist. Returns the number of inserted rows.
func (r *IngredientRepository) SaveBatch(ctx context.Context, ingredients []models.IngredientDB) (int64, error) {
	if len(ingredients) == 0 {
		return 0, nil
	}

	for i := range ingredients {
		if ingredients[i].ID == uuid.Nil {
			ingredients[i].ID = uuid.New()
		}
	}

	const query = `
		INSERT INTO ingredients (id, name, measurement_unit)
		VALUES (:id, :name, :measurement_unit)
		ON CONFLICT (name) DO NOTHING
	`

	res, err := r.db.NamedExecContext(ctx, query, ingredients)
	var inserted int64
	if res != nil {
		inserted, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", squash(query),
		"args", []any{len(ingredients)},
		"result", inserted,
		"error", err,
	)

	return inserted, err
}
