package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/vmaksimov/foodgram-api/internal/logger"
	"github.com/vmaksimov/foodgram-api/internal/models"
)

// TagRepository handles the read-only tag catalog.
type TagRepository struct {
	db *sqlx.DB
}

func NewTagRepository(db *sqlx.DB) *TagRepository {
	return &TagRepository{db: db}
}

// List returns all tags ordered by name.
func (r *TagRepository) List(ctx context.Context) ([]models.TagDB, error) {
	const query = `
		SELECT id, name, color, slug
		FROM tags
		ORDER BY name
	`

	var tags []models.TagDB
	err := r.db.SelectContext(ctx, &tags, query)

	logger.Log.Infow("query executed",
		"query", squash(query),
		"error", err,
	)

	return tags, err
}

// GetByID retrieves one tag. Returns nil without error when absent.
func (r *TagRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.TagDB, error) {
	const query = `
		SELECT id, name, color, slug
		FROM tags
		WHERE id = $1
	`

	var tag models.TagDB
	err := r.db.GetContext(ctx, &tag, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// GetByIDs retrieves the tags matching ids. Missing ids simply do not
// appear in the result.
func (r *TagRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.TagDB, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`
		SELECT id, name, color, slug
		FROM tags
		WHERE id IN (?)
	`, ids)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	var tags []models.TagDB
	err = r.db.SelectContext(ctx, &tags, query, args...)

	logger.Log.Infow("query executed",
		"query", squash(query),
		"args", []any{ids},
		"error", err,
	)

	return tags, err
}
