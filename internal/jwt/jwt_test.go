package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestJWT_GenerateAndGetUserID(t *testing.T) {
	j := New("test-secret", time.Minute)

	userID := uuid.New()
	ctx := context.Background()

	token, err := j.Generate(ctx, userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	parsedID, err := j.GetUserID(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, userID, parsedID)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New("test-secret", -time.Minute) // already expired

	ctx := context.Background()

	token, err := j.Generate(ctx, uuid.New())
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = j.GetUserID(ctx, token)
	assert.Error(t, err)
}

func TestJWT_InvalidToken(t *testing.T) {
	j := New("secret", time.Minute)
	ctx := context.Background()

	_, err := j.GetUserID(ctx, "invalid.token.string")
	assert.Error(t, err)
}

func TestJWT_WrongSecret(t *testing.T) {
	ctx := context.Background()

	token, err := New("secret-one", time.Minute).Generate(ctx, uuid.New())
	assert.NoError(t, err)

	_, err = New("secret-two", time.Minute).GetUserID(ctx, token)
	assert.Error(t, err)
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New("secret", time.Minute)
	ctx := context.Background()

	t.Run("MissingHeader", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/", nil)
		_, err := j.GetTokenFromRequest(ctx, req)
		assert.Error(t, err)
	})

	t.Run("BadFormat", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Token abc")
		_, err := j.GetTokenFromRequest(ctx, req)
		assert.Error(t, err)
	})

	t.Run("Bearer", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer abc.def.ghi")
		token, err := j.GetTokenFromRequest(ctx, req)
		assert.NoError(t, err)
		assert.Equal(t, "abc.def.ghi", token)
	})
}
