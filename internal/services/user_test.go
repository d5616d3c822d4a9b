package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/vmaksimov/foodgram-api/internal/models"
	"github.com/vmaksimov/foodgram-api/internal/services"
)

func TestUserService_GetProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockSubs := services.NewMockSubscriptionChecker(ctrl)
	mockImages := services.NewMockImageStore(ctrl)

	svc := services.NewUserService(mockReader, mockWriter, mockSubs, mockImages)

	viewerID := uuid.New()
	targetID := uuid.New()
	target := &models.UserDB{
		ID:        targetID,
		Email:     "author@example.com",
		Username:  "author",
		FirstName: "Ann",
		LastName:  "Author",
	}

	ctx := context.Background()

	t.Run("viewer follows the target", func(t *testing.T) {
		mockReader.EXPECT().GetByID(ctx, targetID).Return(target, nil)
		mockSubs.EXPECT().Exists(ctx, viewerID, targetID).Return(true, nil)

		profile, err := svc.GetProfile(ctx, &viewerID, targetID)
		assert.NoError(t, err)
		assert.Equal(t, "author", profile.Username)
		assert.True(t, profile.IsSubscribed)
	})

	t.Run("anonymous viewer never sees is_subscribed", func(t *testing.T) {
		mockReader.EXPECT().GetByID(ctx, targetID).Return(target, nil)

		profile, err := svc.GetProfile(ctx, nil, targetID)
		assert.NoError(t, err)
		assert.False(t, profile.IsSubscribed)
	})

	t.Run("own profile skips the subscription check", func(t *testing.T) {
		mockReader.EXPECT().GetByID(ctx, targetID).Return(target, nil)

		profile, err := svc.GetProfile(ctx, &targetID, targetID)
		assert.NoError(t, err)
		assert.False(t, profile.IsSubscribed)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockReader.EXPECT().GetByID(ctx, targetID).Return(nil, nil)

		profile, err := svc.GetProfile(ctx, nil, targetID)
		assert.ErrorIs(t, err, services.ErrUserNotFound)
		assert.Nil(t, profile)
	})
}

func TestUserService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockSubs := services.NewMockSubscriptionChecker(ctrl)
	mockImages := services.NewMockImageStore(ctrl)

	svc := services.NewUserService(mockReader, mockWriter, mockSubs, mockImages)

	viewerID := uuid.New()
	authorID := uuid.New()
	ctx := context.Background()

	t.Run("page with subscription state", func(t *testing.T) {
		mockReader.EXPECT().List(ctx, 6, 0).Return([]models.UserDB{
			{ID: viewerID, Username: "me"},
			{ID: authorID, Username: "author"},
		}, nil)
		mockReader.EXPECT().Count(ctx).Return(int64(2), nil)
		mockSubs.EXPECT().Exists(ctx, viewerID, authorID).Return(true, nil)

		page, err := svc.List(ctx, &viewerID, 6, 0)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), page.Count)
		assert.Len(t, page.Results, 2)
		assert.False(t, page.Results[0].IsSubscribed)
		assert.True(t, page.Results[1].IsSubscribed)
	})

	t.Run("reader error", func(t *testing.T) {
		mockReader.EXPECT().List(ctx, 6, 0).Return(nil, errors.New("db down"))

		page, err := svc.List(ctx, nil, 6, 0)
		assert.Error(t, err)
		assert.Nil(t, page)
	})
}

func TestUserService_SetAvatar(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockSubs := services.NewMockSubscriptionChecker(ctrl)
	mockImages := services.NewMockImageStore(ctrl)

	svc := services.NewUserService(mockReader, mockWriter, mockSubs, mockImages)

	userID := uuid.New()
	dataURI := "data:image/png;base64,aGVsbG8="
	ctx := context.Background()

	t.Run("first avatar", func(t *testing.T) {
		mockReader.EXPECT().GetByID(ctx, userID).Return(&models.UserDB{ID: userID}, nil)
		mockImages.EXPECT().SaveDataURI(ctx, "avatars", dataURI).Return("http://storage.test/avatars/u.png", nil)
		mockWriter.EXPECT().UpdateAvatar(ctx, userID, gomock.Any()).Return(nil)

		url, err := svc.SetAvatar(ctx, userID, dataURI)
		assert.NoError(t, err)
		assert.Equal(t, "http://storage.test/avatars/u.png", url)
	})

	t.Run("replacing deletes the old object", func(t *testing.T) {
		old := "http://storage.test/avatars/old.png"
		mockReader.EXPECT().GetByID(ctx, userID).Return(&models.UserDB{ID: userID, AvatarURL: &old}, nil)
		mockImages.EXPECT().SaveDataURI(ctx, "avatars", dataURI).Return("http://storage.test/avatars/new.png", nil)
		mockWriter.EXPECT().UpdateAvatar(ctx, userID, gomock.Any()).Return(nil)
		mockImages.EXPECT().Delete(ctx, old).Return(nil)

		url, err := svc.SetAvatar(ctx, userID, dataURI)
		assert.NoError(t, err)
		assert.Equal(t, "http://storage.test/avatars/new.png", url)
	})

	t.Run("not a data URI", func(t *testing.T) {
		mockReader.EXPECT().GetByID(ctx, userID).Return(&models.UserDB{ID: userID}, nil)
		mockImages.EXPECT().SaveDataURI(ctx, "avatars", "junk").Return("", errors.New("bad payload"))

		_, err := svc.SetAvatar(ctx, userID, "junk")
		var validationErr *services.ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "avatar", validationErr.Field)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockReader.EXPECT().GetByID(ctx, userID).Return(nil, nil)

		_, err := svc.SetAvatar(ctx, userID, dataURI)
		assert.ErrorIs(t, err, services.ErrUserNotFound)
	})
}

func TestUserService_ClearAvatar(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockSubs := services.NewMockSubscriptionChecker(ctrl)
	mockImages := services.NewMockImageStore(ctrl)

	svc := services.NewUserService(mockReader, mockWriter, mockSubs, mockImages)

	userID := uuid.New()
	ctx := context.Background()

	t.Run("clears and deletes the object", func(t *testing.T) {
		old := "http://storage.test/avatars/old.png"
		mockReader.EXPECT().GetByID(ctx, userID).Return(&models.UserDB{ID: userID, AvatarURL: &old}, nil)
		mockWriter.EXPECT().UpdateAvatar(ctx, userID, (*string)(nil)).Return(nil)
		mockImages.EXPECT().Delete(ctx, old).Return(nil)

		assert.NoError(t, svc.ClearAvatar(ctx, userID))
	})

	t.Run("no avatar set is a no-op", func(t *testing.T) {
		mockReader.EXPECT().GetByID(ctx, userID).Return(&models.UserDB{ID: userID}, nil)
		mockWriter.EXPECT().UpdateAvatar(ctx, userID, (*string)(nil)).Return(nil)

		assert.NoError(t, svc.ClearAvatar(ctx, userID))
	})
}
