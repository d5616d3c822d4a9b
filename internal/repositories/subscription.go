package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/vmaksimov/foodgram-api/internal/logger"
	"github.com/vmaksimov/foodgram-api/internal/models"
)

// SubscriptionRepository is the (follower, author) membership ledger.
type SubscriptionRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewSubscriptionRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *SubscriptionRepository {
	return &SubscriptionRepository{db: db, txGetter: txGetter}
}

func (r *SubscriptionRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Add inserts the pair. Returns false when the follower already
// follows the author.
func (r *SubscriptionRepository) Add(ctx context.Context, userID, authorID uuid.UUID) (bool, error) {
	const query = `
		INSERT INTO subscriptions (user_id, author_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, author_id) DO NOTHING
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, userID, authorID)
	var inserted int64
	if res != nil {
		inserted, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", squash(query),
		"args", []any{userID, authorID},
		"result", inserted,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return inserted > 0, nil
}

// Remove deletes the pair if present; idempotent.
func (r *SubscriptionRepository) Remove(ctx context.Context, userID, authorID uuid.UUID) error {
	const query = `DELETE FROM subscriptions WHERE user_id = $1 AND author_id = $2`

	_, err := r.executor(ctx).ExecContext(ctx, query, userID, authorID)

	logger.Log.Infow("query executed",
		"query", squash(query),
		"args", []any{userID, authorID},
		"error", err,
	)

	return err
}

// Exists reports whether the follower follows the author.
func (r *SubscriptionRepository) Exists(ctx context.Context, userID, authorID uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM subscriptions WHERE user_id = $1 AND author_id = $2)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, userID, authorID)
	return exists, err
}

// ListAuthors returns a page of the authors the user follows, newest
// subscription first.
func (r *SubscriptionRepository) ListAuthors(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.UserDB, error) {
	const query = `
		SELECT u.id, u.email, u.username, u.first_name, u.last_name, u.password_hash, u.avatar_url, u.role, u.created_at, u.updated_at
		FROM users u
		JOIN subscriptions s ON s.author_id = u.id
		WHERE s.user_id = $1
		ORDER BY s.created_at DESC
		LIMIT $2 OFFSET $3
	`

	var authors []models.UserDB
	err := r.db.SelectContext(ctx, &authors, query, userID, limit, offset)

	logger.Log.Infow("query executed",
		"query", squash(query),
		"args", []any{userID, limit, offset},
		"error", err,
	)

	return authors, err
}

// CountAuthors returns how many authors the user follows.
func (r *SubscriptionRepository) CountAuthors(ctx context.Context, userID uuid.UUID) (int64, error) {
	const query = `SELECT COUNT(*) FROM subscriptions WHERE user_id = $1`

	var count int64
	err := r.db.GetContext(ctx, &count, query, userID)
	return count, err
}
