package database

import (
	"embed"
	"fmt"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate applies all pending schema migrations embedded in the binary.
// Already up to date is not an error.
func Migrate(user, pass, host, port, name string) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("migration source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, migrateURL(user, pass, host, port, name))
	if err != nil {
		return fmt.Errorf("migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// migrateURL builds the mysql:// URL understood by golang-migrate.
// multiStatements is required because migration files contain several DDL
// statements each.
func migrateURL(user, pass, host, port, name string) string {
	auth := url.QueryEscape(user)
	if pass != "" {
		auth += ":" + url.QueryEscape(pass)
	}
	return fmt.Sprintf("mysql://%s@tcp(%s:%s)/%s?multiStatements=true", auth, host, port, name)
}
