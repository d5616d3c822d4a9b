package models

import "github.com/google/uuid"

// IngredientDB represents an ingredient record in the database.
// Reference data: seeded by import, read-only through the API.
type IngredientDB struct {
	ID              uuid.UUID `db:"id"`
	Name            string    `db:"name"`             // Unique name
	MeasurementUnit string    `db:"measurement_unit"` // Free-text unit (g, pcs, cup, ...)
}

// IngredientResponse is the catalog projection of an ingredient.
// swagger:model IngredientResponse
type IngredientResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	MeasurementUnit string    `json:"measurement_unit"`
}
