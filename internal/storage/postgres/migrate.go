package postgres

import (
	"embed"
	"errors"
	"fmt"

	"webinars/internal/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migrate applies all pending embedded migrations.
func Migrate(dbCfg *config.Database) error {
	const op = "storage.postgres.Migrate"

	src, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return fmt.Errorf("%s: failed to read migrations: %w", op, err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, dbCfg.URL())
	if err != nil {
		return fmt.Errorf("%s: failed to init migrations: %w", op, err)
	}
	defer m.Close()

	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("%s: failed to apply migrations: %w", op, err)
	}

	return nil
}
