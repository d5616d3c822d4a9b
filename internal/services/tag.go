package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/vmaksimov/foodgram-api/internal/models"
)

// TagReader defines read operations over the tag catalog.
type TagReader interface {
	List(ctx context.Context) ([]models.TagDB, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.TagDB, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.TagDB, error)
}

// TagService exposes the read-only tag catalog.
type TagService struct {
	reader TagReader
}

func NewTagService(reader TagReader) *TagService {
	return &TagService{reader: reader}
}

// List returns all tags ordered by name.
func (svc *TagService) List(ctx context.Context) ([]models.TagResponse, error) {
	tags, err := svc.reader.List(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]models.TagResponse, 0, len(tags))
	for _, tag := range tags {
		results = append(results, models.TagResponse(tag))
	}
	return results, nil
}

// Get returns one tag.
func (svc *TagService) Get(ctx context.Context, id uuid.UUID) (*models.TagResponse, error) {
	tag, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, ErrTagNotFound
	}

	resp := models.TagResponse(*tag)
	return &resp, nil
}
