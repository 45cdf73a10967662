package sqlite

import (
	"errors"

	"github.com/padualabs/userapi/internal/store/drivers/sqlite/migrations"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	_ "modernc.org/sqlite"
)

// ApplyMigrations applies any pending database migrations using the embedded
// migration files compiled into the binary. Safe to call on every startup.
func (s *Store) ApplyMigrations() error {
	instance, err := s.migrator()
	if err != nil {
		return err
	}

	err = instance.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}

// Reset drops everything in the database and re-applies all migrations from
// scratch. This is the destructive half of provisioning; it must never run
// on a request path.
func (s *Store) Reset() error {
	instance, err := s.migrator()
	if err != nil {
		return err
	}

	if err := instance.Drop(); err != nil {
		return err
	}

	// Drop() clears the schema_migrations bookkeeping table as well, so a
	// fresh migrator is needed to rebuild from zero.
	return s.ApplyMigrations()
}

func (s *Store) migrator() (*migrate.Migrate, error) {
	driver, err := migratesqlite.WithInstance(s.db, &migratesqlite.Config{})
	if err != nil {
		return nil, err
	}

	migrationsFilesystem, err := iofs.New(migrations.Migrations, ".")
	if err != nil {
		return nil, err
	}

	return migrate.NewWithInstance("iofs", migrationsFilesystem, "", driver)
}
