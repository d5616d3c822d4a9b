package models

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionDB represents a (follower, author) record in the database.
type SubscriptionDB struct {
	UserID    uuid.UUID `db:"user_id"`   // follower
	AuthorID  uuid.UUID `db:"author_id"` // followed author, never equal to UserID
	CreatedAt time.Time `db:"created_at"`
}
