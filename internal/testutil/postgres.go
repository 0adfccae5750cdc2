// Package testutil starts a throwaway PostgreSQL for integration and E2E tests.
package testutil

import (
	"context"
	"testing"
	"time"

	"webinars/internal/config"
	"webinars/internal/storage/postgres"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	postgresImage = "postgres:16-alpine"
	testDBName    = "test_db"
	testUser      = "user_test"
	testPassword  = "password_test"
)

// NewStorage starts a postgres container, applies migrations and returns a
// connected storage. Everything is torn down with the test. The test is
// skipped when no container runtime is reachable.
func NewStorage(t *testing.T) *postgres.Storage {
	t.Helper()

	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := tcpostgres.Run(ctx, postgresImage,
		tcpostgres.WithDatabase(testDBName),
		tcpostgres.WithUsername(testUser),
		tcpostgres.WithPassword(testPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err, "start postgres container")

	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("terminate postgres container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)

	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	dbCfg := config.Database{
		Host:     host,
		Port:     port.Int(),
		User:     testUser,
		Password: testPassword,
		DBName:   testDBName,
		SSLMode:  "disable",
	}

	require.NoError(t, postgres.Migrate(&dbCfg), "apply migrations")

	storage, err := postgres.InitDB(&dbCfg)
	require.NoError(t, err, "connect to postgres")

	t.Cleanup(func() {
		_ = storage.Close()
	})

	return storage
}

// Reset removes every webinar.
func Reset(t *testing.T, storage *postgres.Storage) {
	t.Helper()

	_, err := storage.DB.Exec(`DELETE FROM webinar`)
	require.NoError(t, err, "reset webinar table")
}

// InsertWebinar writes a row directly, bypassing the repository.
func InsertWebinar(t *testing.T, storage *postgres.Storage, id, organizerID string, seats int) {
	t.Helper()

	now := time.Now().UTC()

	_, err := storage.DB.Exec(`
		INSERT INTO webinar (id, organizer_id, title, start_date, end_date, seats)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		id, organizerID, "Webinar Test", now, now, seats,
	)
	require.NoError(t, err, "insert webinar")
}

// Seats reads the stored seat count of a webinar directly.
func Seats(t *testing.T, storage *postgres.Storage, id string) int {
	t.Helper()

	var seats int
	err := storage.DB.QueryRow(`SELECT seats FROM webinar WHERE id = $1`, id).Scan(&seats)
	require.NoError(t, err, "read seats")

	return seats
}
