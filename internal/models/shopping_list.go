package models

// ShoppingListItem is one aggregated line of the shopping report.
// Grouping is by (name, measurement unit), not by ingredient row id,
// with amounts summed across all recipes in the cart.
type ShoppingListItem struct {
	Name            string `db:"name"`
	Amount          int    `db:"amount"`
	MeasurementUnit string `db:"measurement_unit"`
}
