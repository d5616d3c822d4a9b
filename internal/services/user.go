package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/vmaksimov/foodgram-api/internal/logger"
	"github.com/vmaksimov/foodgram-api/internal/models"
)

// SubscriptionChecker reports whether a follower follows an author.
type SubscriptionChecker interface {
	Exists(ctx context.Context, userID, authorID uuid.UUID) (bool, error)
}

// ImageStore persists base64 image payloads and returns public URLs.
type ImageStore interface {
	SaveDataURI(ctx context.Context, prefix, dataURI string) (string, error)
	Delete(ctx context.Context, url string) error
}

// UserService exposes profile reads and avatar updates.
type UserService struct {
	reader UserReader
	writer UserWriter
	subs   SubscriptionChecker
	images ImageStore
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer UserWriter, subs SubscriptionChecker, images ImageStore) *UserService {
	return &UserService{
		reader: reader,
		writer: writer,
		subs:   subs,
		images: images,
	}
}

// GetProfile returns the public projection of a user relative to the
// viewer. viewer is nil for anonymous callers, whose is_subscribed is
// always false.
func (svc *UserService) GetProfile(ctx context.Context, viewer *uuid.UUID, id uuid.UUID) (*models.UserResponse, error) {
	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return svc.project(ctx, viewer, user)
}

// List returns a page of user profiles relative to the viewer.
func (svc *UserService) List(ctx context.Context, viewer *uuid.UUID, limit, offset int) (*models.UserListResponse, error) {
	users, err := svc.reader.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	count, err := svc.reader.Count(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]models.UserResponse, 0, len(users))
	for i := range users {
		projected, err := svc.project(ctx, viewer, &users[i])
		if err != nil {
			return nil, err
		}
		results = append(results, *projected)
	}

	return &models.UserListResponse{Count: count, Results: results}, nil
}

// SetAvatar stores the base64 avatar payload and saves its URL,
// replacing any previous avatar object.
func (svc *UserService) SetAvatar(ctx context.Context, userID uuid.UUID, dataURI string) (string, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}

	url, err := svc.images.SaveDataURI(ctx, "avatars", dataURI)
	if err != nil {
		return "", NewValidationError("avatar", "must be a base64 image data URI")
	}

	if err := svc.writer.UpdateAvatar(ctx, userID, &url); err != nil {
		return "", err
	}

	if user.AvatarURL != nil {
		if err := svc.images.Delete(ctx, *user.AvatarURL); err != nil {
			logger.Log.Errorw("failed to delete old avatar", "err", err)
		}
	}

	return url, nil
}

// ClearAvatar removes the stored avatar; clearing an unset avatar is a no-op.
func (svc *UserService) ClearAvatar(ctx context.Context, userID uuid.UUID) error {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := svc.writer.UpdateAvatar(ctx, userID, nil); err != nil {
		return err
	}

	if user.AvatarURL != nil {
		if err := svc.images.Delete(ctx, *user.AvatarURL); err != nil {
			logger.Log.Errorw("failed to delete avatar", "err", err)
		}
	}
	return nil
}

func (svc *UserService) project(ctx context.Context, viewer *uuid.UUID, user *models.UserDB) (*models.UserResponse, error) {
	subscribed := false
	if viewer != nil && *viewer != user.ID {
		var err error
		subscribed, err = svc.subs.Exists(ctx, *viewer, user.ID)
		if err != nil {
			return nil, err
		}
	}

	return &models.UserResponse{
		ID:           user.ID,
		Email:        user.Email,
		Username:     user.Username,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Avatar:       user.AvatarURL,
		IsSubscribed: subscribed,
	}, nil
}
