package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/vmaksimov/foodgram-api/internal/models"
)

// SubscriptionStore is the (follower, author) membership ledger.
type SubscriptionStore interface {
	Add(ctx context.Context, userID, authorID uuid.UUID) (bool, error)
	Remove(ctx context.Context, userID, authorID uuid.UUID) error
	Exists(ctx context.Context, userID, authorID uuid.UUID) (bool, error)
	ListAuthors(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.UserDB, error)
	CountAuthors(ctx context.Context, userID uuid.UUID) (int64, error)
}

// SubscriptionService handles following and unfollowing authors.
type SubscriptionService struct {
	subs  SubscriptionStore
	users UserReader
}

// NewSubscriptionService creates a new SubscriptionService instance.
func NewSubscriptionService(subs SubscriptionStore, users UserReader) *SubscriptionService {
	return &SubscriptionService{
		subs:  subs,
		users: users,
	}
}

// Subscribe makes the user follow the author and returns the author
// projection. Self-subscription is rejected regardless of prior
// state; a duplicate fails with ErrAlreadySubscribed.
func (svc *SubscriptionService) Subscribe(ctx context.Context, userID, authorID uuid.UUID) (*models.UserResponse, error) {
	if userID == authorID {
		return nil, ErrSelfSubscription
	}

	author, err := svc.users.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrUserNotFound
	}

	inserted, err := svc.subs.Add(ctx, userID, authorID)
	if err != nil {
		return nil, err
	}
	if !inserted {
		return nil, ErrAlreadySubscribed
	}

	return authorResponse(author, true), nil
}

// Unsubscribe removes the pair; unfollowing an author the user does
// not follow is not an error.
func (svc *SubscriptionService) Unsubscribe(ctx context.Context, userID, authorID uuid.UUID) error {
	author, err := svc.users.GetByID(ctx, authorID)
	if err != nil {
		return err
	}
	if author == nil {
		return ErrUserNotFound
	}

	return svc.subs.Remove(ctx, userID, authorID)
}

// ListFollowing returns a page of the authors the user follows,
// newest subscription first.
func (svc *SubscriptionService) ListFollowing(ctx context.Context, userID uuid.UUID, limit, offset int) (*models.UserListResponse, error) {
	authors, err := svc.subs.ListAuthors(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	count, err := svc.subs.CountAuthors(ctx, userID)
	if err != nil {
		return nil, err
	}

	results := make([]models.UserResponse, 0, len(authors))
	for i := range authors {
		results = append(results, *authorResponse(&authors[i], true))
	}

	return &models.UserListResponse{Count: count, Results: results}, nil
}

func authorResponse(author *models.UserDB, subscribed bool) *models.UserResponse {
	return &models.UserResponse{
		ID:           author.ID,
		Email:        author.Email,
		Username:     author.Username,
		FirstName:    author.FirstName,
		LastName:     author.LastName,
		Avatar:       author.AvatarURL,
		IsSubscribed: subscribed,
	}
}
