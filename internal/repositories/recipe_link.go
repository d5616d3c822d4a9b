package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/vmaksimov/foodgram-api/internal/logger"
)

// RecipeLinkRepository is a membership ledger of (user, recipe) pairs
// over one of the fixed ledger tables. Favorites and the shopping cart
// share the same semantics: conflicting add, idempotent remove, with
// the table's unique constraint as the last line of defense against
// concurrent double-adds.
type RecipeLinkRepository struct {
	db       *sqlx.DB
	table    string
	txGetter func(ctx context.Context) *sqlx.Tx
}

// NewFavoriteRepository returns the ledger over the favorites table.
func NewFavoriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *RecipeLinkRepository {
	return &RecipeLinkRepository{db: db, table: "favorites", txGetter: txGetter}
}

// NewShoppingCartRepository returns the ledger over the shopping_cart table.
func NewShoppingCartRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *RecipeLinkRepository {
	return &RecipeLinkRepository{db: db, table: "shopping_cart", txGetter: txGetter}
}

func (r *RecipeLinkRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Add inserts the pair. Returns false when the pair already exists;
// a race between two adds resolves through ON CONFLICT, so exactly
// one caller observes true.
func (r *RecipeLinkRepository) Add(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	query := `
		INSERT INTO ` + r.table + ` (user_id, recipe_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, recipe_id) DO NOTHING
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, userID, recipeID)
	var inserted int64
	if res != nil {
		inserted, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", squash(query),
		"args", []any{userID, recipeID},
		"result", inserted,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return inserted > 0, nil
}

// Remove deletes the pair if present; removing an absent pair is a no-op.
func (r *RecipeLinkRepository) Remove(ctx context.Context, userID, recipeID uuid.UUID) error {
	query := `DELETE FROM ` + r.table + ` WHERE user_id = $1 AND recipe_id = $2`

	_, err := r.executor(ctx).ExecContext(ctx, query, userID, recipeID)

	logger.Log.Infow("query executed",
		"query", squash(query),
		"args", []any{userID, recipeID},
		"error", err,
	)

	return err
}

// Exists reports whether the pair is present.
func (r *RecipeLinkRepository) Exists(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM ` + r.table + ` WHERE user_id = $1 AND recipe_id = $2)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, userID, recipeID)
	return exists, err
}
