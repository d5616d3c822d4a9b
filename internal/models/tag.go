package models

import "github.com/google/uuid"

// TagDB represents a tag record in the database.
type TagDB struct {
	ID    uuid.UUID `db:"id"`
	Name  string    `db:"name"`  // Unique name
	Color string    `db:"color"` // Unique hex color, e.g. #FF0000
	Slug  string    `db:"slug"`  // Unique slug used for filtering
}

// TagResponse is the catalog projection of a tag.
// swagger:model TagResponse
type TagResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Color string    `json:"color"`
	Slug  string    `json:"slug"`
}
