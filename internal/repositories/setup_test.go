package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE EXTENSION IF NOT EXISTS "uuid-ossp";

	CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		email VARCHAR(254) NOT NULL UNIQUE,
		username VARCHAR(150) NOT NULL UNIQUE,
		first_name VARCHAR(150) NOT NULL,
		last_name VARCHAR(150) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		avatar_url VARCHAR(512),
		role VARCHAR(16) NOT NULL DEFAULT 'user',
		created_at TIMESTAMP NOT NULL DEFAULT now(),
		updated_at TIMESTAMP NOT NULL DEFAULT now()
	);

	CREATE TABLE IF NOT EXISTS ingredients (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(128) NOT NULL UNIQUE,
		measurement_unit VARCHAR(64) NOT NULL
	);

	CREATE TABLE IF NOT EXISTS tags (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(32) NOT NULL UNIQUE,
		color VARCHAR(7) NOT NULL UNIQUE,
		slug VARCHAR(32) NOT NULL UNIQUE
	);

	CREATE TABLE IF NOT EXISTS recipes (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		author_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name VARCHAR(256) NOT NULL,
		image_url VARCHAR(512) NOT NULL,
		text TEXT NOT NULL,
		cooking_time INTEGER NOT NULL CHECK (cooking_time BETWEEN 1 AND 32000),
		pub_date TIMESTAMP NOT NULL DEFAULT now()
	);

	CREATE TABLE IF NOT EXISTS recipe_tags (
		recipe_id UUID NOT NULL REFERENCES recipes(id) ON DELETE CASCADE,
		tag_id UUID NOT NULL REFERENCES tags(id) ON DELETE CASCADE,
		PRIMARY KEY (recipe_id, tag_id)
	);

	CREATE TABLE IF NOT EXISTS recipe_ingredients (
		recipe_id UUID NOT NULL REFERENCES recipes(id) ON DELETE CASCADE,
		ingredient_id UUID NOT NULL REFERENCES ingredients(id) ON DELETE CASCADE,
		amount INTEGER NOT NULL CHECK (amount BETWEEN 1 AND 32000),
		PRIMARY KEY (recipe_id, ingredient_id)
	);

	CREATE TABLE IF NOT EXISTS favorites (
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		recipe_id UUID NOT NULL REFERENCES recipes(id) ON DELETE CASCADE,
		created_at TIMESTAMP NOT NULL DEFAULT now(),
		PRIMARY KEY (user_id, recipe_id)
	);

	CREATE TABLE IF NOT EXISTS shopping_cart (
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		recipe_id UUID NOT NULL REFERENCES recipes(id) ON DELETE CASCADE,
		created_at TIMESTAMP NOT NULL DEFAULT now(),
		PRIMARY KEY (user_id, recipe_id)
	);

	CREATE TABLE IF NOT EXISTS subscriptions (
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		author_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		created_at TIMESTAMP NOT NULL DEFAULT now(),
		PRIMARY KEY (user_id, author_id),
		CHECK (user_id <> author_id)
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func seedUser(t *testing.T, db *sqlx.DB, email, username string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.Get(&id, `
		INSERT INTO users (email, username, first_name, last_name, password_hash)
		VALUES ($1, $2, 'Test', 'User', 'hash')
		RETURNING id
	`, email, username)
	assert.NoError(t, err)
	return id
}

func seedIngredient(t *testing.T, db *sqlx.DB, name, unit string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.Get(&id, `
		INSERT INTO ingredients (name, measurement_unit)
		VALUES ($1, $2)
		RETURNING id
	`, name, unit)
	assert.NoError(t, err)
	return id
}

func seedTag(t *testing.T, db *sqlx.DB, name, color, slug string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.Get(&id, `
		INSERT INTO tags (name, color, slug)
		VALUES ($1, $2, $3)
		RETURNING id
	`, name, color, slug)
	assert.NoError(t, err)
	return id
}

func seedRecipe(t *testing.T, db *sqlx.DB, authorID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.Get(&id, `
		INSERT INTO recipes (author_id, name, image_url, text, cooking_time)
		VALUES ($1, $2, 'http://img.test/r.png', 'steps', 10)
		RETURNING id
	`, authorID, name)
	assert.NoError(t, err)
	return id
}
