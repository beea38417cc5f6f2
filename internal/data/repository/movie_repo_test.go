package repository

import (
	"context"
	"testing"
	"time"

	"movie-records/pkg/database"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

const (
	dbName      = "movies"
	dbUser      = "test_user"
	dbPassword  = "test_password"
	dbImageName = "postgres:17-alpine"
)

func startPostgres(t *testing.T) database.PgxIface {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()

	ctr, err := postgres.Run(ctx, dbImageName,
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	t.Cleanup(func() {
		if ctr != nil {
			require.NoError(t, ctr.Terminate(context.Background()))
		}
	})
	require.NoError(t, err)

	connStr, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := database.Open(ctx, connStr, 4, 1)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, EnsureSchema(ctx, db))
	// a second run must be a no-op
	require.NoError(t, EnsureSchema(ctx, db))

	return db
}

func TestPostgresMovieRepository(t *testing.T) {
	db := startPostgres(t)

	runMovieRepositoryTests(t, func(t *testing.T) MovieRepository {
		_, err := db.Exec(context.Background(), `TRUNCATE movies RESTART IDENTITY`)
		require.NoError(t, err)

		return NewMovieRepository(db, zap.NewNop())
	})
}
