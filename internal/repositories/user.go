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

// UserReadRepository handles user read operations
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByID retrieves a user by id. Returns nil without error when
// the user does not exist.
func (r *UserReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error) {
	const query = `
		SELECT id, email, username, first_name, last_name, password_hash, avatar_url, role, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, id)

	logger.Log.Infow("query executed",
		"query", squash(query),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmailOrUsername retrieves a user matching any of the provided
// values. Nil arguments are ignored. Returns nil when no user matches.
func (r *UserReadRepository) GetByEmailOrUsername(ctx context.Context, email, username *string) (*models.UserDB, error) {
	const query = `
		SELECT id, email, username, first_name, last_name, password_hash, avatar_url, role, created_at, updated_at
		FROM users
		WHERE ($1::VARCHAR IS NOT NULL AND email = $1)
		   OR ($2::VARCHAR IS NOT NULL AND username = $2)
		LIMIT 1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email, username)

	logger.Log.Infow("query executed",
		"query", squash(query),
		"args", []any{email, username},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns a page of users ordered by creation time.
func (r *UserReadRepository) List(ctx context.Context, limit, offset int) ([]models.UserDB, error) {
	const query = `
		SELECT id, email, username, first_name, last_name, password_hash, avatar_url, role, created_at, updated_at
		FROM users
		ORDER BY created_at, id
		LIMIT $1 OFFSET $2
	`

	var users []models.UserDB
	err := r.db.SelectContext(ctx, &users, query, limit, offset)

	logger.Log.Infow("query executed",
		"query", squash(query),
		"args", []any{limit, offset},
		"error", err,
	)

	return users, err
}

// Count returns the total number of users.
func (r *UserReadRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM users`

	var count int64
	err := r.db.GetContext(ctx, &count, query)
	return count, err
}

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

func (r *UserWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new user and returns the generated id.
func (r *UserWriteRepository) Save(ctx context.Context, email, username, firstName, lastName, passwordHash string) (uuid.UUID, error) {
	const query = `
		INSERT INTO users (email, username, first_name, last_name, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, 'user', NOW(), NOW())
		RETURNING id
	`
	args := []any{email, username, firstName, lastName, passwordHash}

	var id uuid.UUID
	err := sqlx.GetContext(ctx, r.executor(ctx), &id, query, args...)

	logger.Log.Infow("query executed",
		"query", squash(query),
		"args", []any{email, username},
		"error", err,
	)

	return id, err
}

// UpdatePassword replaces the stored password hash.
func (r *UserWriteRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	const query = `
		UPDATE users
		SET password_hash = $2, updated_at = NOW()
		WHERE id = $1
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, id, passwordHash)

	logger.Log.Infow("query executed",
		"query", squash(query),
		"args", []any{id},
		"error", err,
	)

	return err
}

// UpdateAvatar sets or clears the stored avatar URL.
func (r *UserWriteRepository) UpdateAvatar(ctx context.Context, id uuid.UUID, avatarURL *string) error {
	const query = `
		UPDATE users
		SET avatar_url = $2, updated_at = NOW()
		WHERE id = $1
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, id, avatarURL)

	logger.Log.Infow("query executed",
		"query", squash(query),
		"args", []any{id, avatarURL},
		"error", err,
	)

	return err
}

// squash collapses a multi-line SQL literal for single-line logging.
func squash(query string) string {
	return strings.Join(strings.Fields(query), " ")
}
