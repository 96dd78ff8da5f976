package database

import (
	"errors"
	"fmt"
	"log"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunMigrations brings the mirror schema up to date from migrationsPath.
// push/pull call this on every run; an already-current schema is not an
// error.
func RunMigrations(dsn string, migrationsPath string) error {
	m, err := migrate.New(
		fmt.Sprintf("file://%s", migrationsPath),
		dsn,
	)
	if err != nil {
		return fmt.Errorf("migration init: %w", err)
	}
	defer m.Close()

	err = m.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		log.Println("✅ Mirror schema already up to date.")
	case err != nil:
		return fmt.Errorf("migration up: %w", err)
	default:
		version, dirty, _ := m.Version()
		if dirty {
			log.Printf("⚠️ Mirror schema migrated but dirty (version=%d)", version)
		} else {
			log.Printf("✅ Mirror schema migrated (version=%d)", version)
		}
	}
	return nil
}
