package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/vmaksimov/foodgram-api/internal/models"
)

// shoppingListHeader opens every rendered report.
const shoppingListHeader = "Shopping list:"

// ShoppingListAggregator computes the merged ingredient requirements
// of a user's cart.
type ShoppingListAggregator interface {
	Aggregate(ctx context.Context, userID uuid.UUID) ([]models.ShoppingListItem, error)
}

// ShoppingListService renders the aggregated cart as a plain-text report.
type ShoppingListService struct {
	aggregator ShoppingListAggregator
}

func NewShoppingListService(aggregator ShoppingListAggregator) *ShoppingListService {
	return &ShoppingListService{aggregator: aggregator}
}

// Render produces the report: a header line, a blank line, then one
// line per aggregated ingredient. An empty cart yields the header
// with no ingredient lines.
func (svc *ShoppingListService) Render(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	items, err := svc.aggregator.Aggregate(ctx, userID)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString(shoppingListHeader)
	b.WriteString("\n\n")
	for i, item := range items {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s — %d %s", item.Name, item.Amount, item.MeasurementUnit)
	}

	return []byte(b.String()), nil
}
