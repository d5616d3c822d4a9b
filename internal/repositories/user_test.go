package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUserWriteRepository_Save(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(db, nil)
	ctx := context.Background()

	id, err := repo.Save(ctx, "alice@example.com", "alice", "Alice", "Smith", "hash123")
	assert.NoError(t, err)

	var user struct {
		Email        string `db:"email"`
		Username     string `db:"username"`
		PasswordHash string `db:"password_hash"`
		Role         string `db:"role"`
	}
	err = db.Get(&user, "SELECT email, username, password_hash, role FROM users WHERE id=$1", id)
	assert.NoError(t, err)

	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "hash123", user.PasswordHash)
	assert.Equal(t, "user", user.Role)
}

func TestUserWriteRepository_Save_DuplicateEmail(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(db, nil)
	ctx := context.Background()

	_, err := repo.Save(ctx, "bob@example.com", "bob", "Bob", "Brown", "hash")
	assert.NoError(t, err)

	_, err = repo.Save(ctx, "bob@example.com", "bob2", "Bob", "Brown", "hash")
	assert.Error(t, err)
}

func TestUserReadRepository_GetByEmailOrUsername(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	seedUser(t, db, "charlie@example.com", "charlie")
	seedUser(t, db, "dave@example.com", "dave")

	repo := NewUserReadRepository(db)
	ctx := context.Background()

	t.Run("ByEmail", func(t *testing.T) {
		email := "charlie@example.com"
		user, err := repo.GetByEmailOrUsername(ctx, &email, nil)
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "charlie", user.Username)
	})

	t.Run("ByUsername", func(t *testing.T) {
		username := "dave"
		user, err := repo.GetByEmailOrUsername(ctx, nil, &username)
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "dave@example.com", user.Email)
	})

	t.Run("NotFound", func(t *testing.T) {
		username := "nonexistent"
		user, err := repo.GetByEmailOrUsername(ctx, nil, &username)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestUserReadRepository_GetByID(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	id := seedUser(t, db, "erin@example.com", "erin")

	repo := NewUserReadRepository(db)
	ctx := context.Background()

	user, err := repo.GetByID(ctx, id)
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "erin", user.Username)
	assert.Nil(t, user.AvatarURL)

	absent, err := repo.GetByID(ctx, uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, absent)
}

func TestUserReadRepository_ListAndCount(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	for _, u := range []string{"u1", "u2", "u3"} {
		seedUser(t, db, u+"@example.com", u)
	}

	repo := NewUserReadRepository(db)
	ctx := context.Background()

	count, err := repo.Count(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)

	page, err := repo.List(ctx, 2, 0)
	assert.NoError(t, err)
	assert.Len(t, page, 2)

	rest, err := repo.List(ctx, 2, 2)
	assert.NoError(t, err)
	assert.Len(t, rest, 1)
}

func TestUserWriteRepository_UpdatePassword(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	id := seedUser(t, db, "frank@example.com", "frank")

	repo := NewUserWriteRepository(db, nil)
	ctx := context.Background()

	err := repo.UpdatePassword(ctx, id, "newhash")
	assert.NoError(t, err)

	var hash string
	err = db.Get(&hash, "SELECT password_hash FROM users WHERE id=$1", id)
	assert.NoError(t, err)
	assert.Equal(t, "newhash", hash)
}

func TestUserWriteRepository_UpdateAvatar(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	id := seedUser(t, db, "grace@example.com", "grace")

	repo := NewUserWriteRepository(db, nil)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	url := "http://img.test/avatar.png"
	err := repo.UpdateAvatar(ctx, id, &url)
	assert.NoError(t, err)

	user, err := readRepo.GetByID(ctx, id)
	assert.NoError(t, err)
	assert.NotNil(t, user.AvatarURL)
	assert.Equal(t, url, *user.AvatarURL)

	err = repo.UpdateAvatar(ctx, id, nil)
	assert.NoError(t, err)

	user, err = readRepo.GetByID(ctx, id)
	assert.NoError(t, err)
	assert.Nil(t, user.AvatarURL)
}
