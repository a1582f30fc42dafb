package postgres

import (
	"fmt"

	"campusEvents/migrations"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// NewMigrator returns a migrate instance applying the embedded schema to the
// database at storageURL. The caller must Close it.
func NewMigrator(storageURL string) (*migrate.Migrate, error) {
	const op = "storage.postgres.NewMigrator"

	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, fmt.Errorf("%s: failed to open migrations: %w", op, err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, storageURL)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to init migrate: %w", op, err)
	}

	return m, nil
}
