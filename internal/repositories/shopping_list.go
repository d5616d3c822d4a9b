package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/vmaksimov/foodgram-api/internal/logger"
	"github.com/vmaksimov/foodgram-api/internal/models"
)

// ShoppingListRepository computes the merged ingredient report for a
// user's shopping cart.
type ShoppingListRepository struct {
	db *sqlx.DB
}

func NewShoppingListRepository(db *sqlx.DB) *ShoppingListRepository {
	return &ShoppingListRepository{db: db}
}

// Aggregate joins the user's cart to the quantity associations and
// sums amounts per ingredient identity. Grouping is on the projected
// (name, measurement_unit) pair, not on the ingredient row id: two
// catalog rows with the same name and unit merge into one line.
// Result is ordered by name; an empty cart yields no rows.
func (r *ShoppingListRepository) Aggregate(ctx context.Context, userID uuid.UUID) ([]models.ShoppingListItem, error) {
	const query = `
		SELECT i.name AS name, SUM(ri.amount) AS amount, i.measurement_unit AS measurement_unit
		FROM recipe_ingredients ri
		JOIN ingredients i ON i.id = ri.ingredient_id
		JOIN shopping_cart sc ON sc.recipe_id = ri.recipe_id
		WHERE sc.user_id = $1
		GROUP BY i.name, i.measurement_unit
		ORDER BY i.name
	`

	var items []models.ShoppingListItem
	err := r.db.SelectContext(ctx, &items, query, userID)

	logger.Log.Infow("query executed",
		"query", squash(query),
		"args", []any{userID},
		"result", len(items),
		"error", err,
	)

	return items, err
}
