package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubscriptionRepository_Add(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	followerID := seedUser(t, db, "follower@example.com", "follower")
	authorID := seedUser(t, db, "author@example.com", "author")

	repo := NewSubscriptionRepository(db, nil)
	ctx := context.Background()

	inserted, err := repo.Add(ctx, followerID, authorID)
	assert.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = repo.Add(ctx, followerID, authorID)
	assert.NoError(t, err)
	assert.False(t, inserted)

	// The schema rejects following yourself.
	_, err = repo.Add(ctx, followerID, followerID)
	assert.Error(t, err)
}

func TestSubscriptionRepository_ExistsAndRemove(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	followerID := seedUser(t, db, "follower@example.com", "follower")
	authorID := seedUser(t, db, "author@example.com", "author")

	repo := NewSubscriptionRepository(db, nil)
	ctx := context.Background()

	exists, err := repo.Exists(ctx, followerID, authorID)
	assert.NoError(t, err)
	assert.False(t, exists)

	_, err = repo.Add(ctx, followerID, authorID)
	assert.NoError(t, err)

	exists, err = repo.Exists(ctx, followerID, authorID)
	assert.NoError(t, err)
	assert.True(t, exists)

	err = repo.Remove(ctx, followerID, authorID)
	assert.NoError(t, err)

	exists, err = repo.Exists(ctx, followerID, authorID)
	assert.NoError(t, err)
	assert.False(t, exists)

	err = repo.Remove(ctx, followerID, authorID)
	assert.NoError(t, err)
}

func TestSubscriptionRepository_ListAuthors(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	followerID := seedUser(t, db, "follower@example.com", "follower")
	firstID := seedUser(t, db, "first@example.com", "first")
	secondID := seedUser(t, db, "second@example.com", "second")
	seedUser(t, db, "stranger@example.com", "stranger")

	repo := NewSubscriptionRepository(db, nil)
	ctx := context.Background()

	_, err := repo.Add(ctx, followerID, firstID)
	assert.NoError(t, err)
	_, err = repo.Add(ctx, followerID, secondID)
	assert.NoError(t, err)

	// Newest subscription first.
	_, err = db.Exec("UPDATE subscriptions SET created_at = now() - interval '1 day' WHERE author_id = $1", firstID)
	assert.NoError(t, err)

	authors, err := repo.ListAuthors(ctx, followerID, 10, 0)
	assert.NoError(t, err)
	assert.Len(t, authors, 2)
	assert.Equal(t, "second", authors[0].Username)
	assert.Equal(t, "first", authors[1].Username)

	page, err := repo.ListAuthors(ctx, followerID, 1, 1)
	assert.NoError(t, err)
	assert.Len(t, page, 1)
	assert.Equal(t, "first", page[0].Username)

	count, err := repo.CountAuthors(ctx, followerID)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = repo.CountAuthors(ctx, firstID)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
