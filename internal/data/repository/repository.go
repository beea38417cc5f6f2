package repository

import (
	"context"
	"errors"
	"fmt"

	"movie-records/pkg/database"

	"go.uber.org/zap"
)

// ErrNotFound is returned by writes that matched no row
var ErrNotFound = errors.New("record not found")

type Repository struct {
	Movie MovieRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Movie: NewMovieRepository(db, log),
	}
}

func NewMemoryRepository(log *zap.Logger) *Repository {
	return &Repository{
		Movie: NewMemoryMovieRepository(log),
	}
}

const schema = `
	CREATE TABLE IF NOT EXISTS movies (
		id           BIGSERIAL    PRIMARY KEY,
		title        VARCHAR(255) NOT NULL,
		genre        VARCHAR(255) NOT NULL,
		year         VARCHAR(4)   NOT NULL,
		created_date TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
		updated_date TIMESTAMPTZ  NOT NULL DEFAULT NOW()
	)
`

// EnsureSchema creates the movies table when it does not exist yet
func EnsureSchema(ctx context.Context, db database.PgxIface) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
