package models

import (
	"time"

	"github.com/google/uuid"
)

// Bounds shared by cooking time and per-ingredient amounts.
const (
	CookingTimeMin = 1
	CookingTimeMax = 32000
	AmountMin      = 1
	AmountMax      = 32000
)

// RecipeDB represents a recipe record in the database.
type RecipeDB struct {
	ID          uuid.UUID `db:"id"`
	AuthorID    uuid.UUID `db:"author_id"`
	Name        string    `db:"name"`
	ImageURL    string    `db:"image_url"`
	Text        string    `db:"text"`
	CookingTime int       `db:"cooking_time"` // minutes, 1..32000
	PubDate     time.Time `db:"pub_date"`     // set once at creation
}

// RecipeIngredientDB is the quantified join row between a recipe and
// an ingredient. Its lifecycle is tied to the recipe: the whole set is
// deleted and reinserted on every update.
type RecipeIngredientDB struct {
	RecipeID     uuid.UUID `db:"recipe_id"`
	IngredientID uuid.UUID `db:"ingredient_id"`
	Amount       int       `db:"amount"` // 1..32000
}

// IngredientEntry is a single (ingredient, amount) pair of a recipe
// write payload.
type IngredientEntry struct {
	ID     uuid.UUID `json:"id"`
	Amount int       `json:"amount"`
}

// RecipeIngredientResponse is an ingredient as it appears inside a
// recipe projection.
type RecipeIngredientResponse struct {
	ID              uuid.UUID `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	MeasurementUnit string    `json:"measurement_unit" db:"measurement_unit"`
	Amount          int       `json:"amount" db:"amount"`
}

// RecipeResponse is the full read projection of a recipe.
// swagger:model RecipeResponse
type RecipeResponse struct {
	ID               uuid.UUID                  `json:"id"`
	Tags             []TagResponse              `json:"tags"`
	Author           UserResponse               `json:"author"`
	Ingredients      []RecipeIngredientResponse `json:"ingredients"`
	IsFavorited      bool                       `json:"is_favorited"`
	IsInShoppingCart bool                       `json:"is_in_shopping_cart"`
	Name             string                     `json:"name"`
	Image            string                     `json:"image"`
	Text             string                     `json:"text"`
	CookingTime      int                        `json:"cooking_time"`
}

// RecipeShortResponse is the compact projection returned by the
// favorite and shopping-cart toggles.
// swagger:model RecipeShortResponse
type RecipeShortResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Image       string    `json:"image"`
	CookingTime int       `json:"cooking_time"`
}

// RecipeListResponse is a bounded page of recipe projections.
// swagger:model RecipeListResponse
type RecipeListResponse struct {
	Count   int64            `json:"count"`
	Results []RecipeResponse `json:"results"`
}

// RecipeFilter carries the list filters. Nil pointer fields mean
// "not filtered". Viewer is nil for anonymous callers.
type RecipeFilter struct {
	AuthorID         *uuid.UUID
	TagSlugs         []string // ANY-match set semantics
	IsFavorited      *bool
	IsInShoppingCart *bool
	Viewer           *uuid.UUID
	Limit            int
	Offset           int
}
