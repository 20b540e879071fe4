package db

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/GuiaBolso/darwin"
	"github.com/diegoclair/sqlmigrator"
)

// Migration files are applied in file name order and recorded by darwin,
// so an applied file must never be edited. Add a new numbered file instead.
//
//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migrate brings the schema up to date.
func Migrate(database *sql.DB) error {
	migrator := sqlmigrator.New(database, darwin.SqliteDialect{})
	if err := migrator.Migrate(migrationFiles, "migrations"); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
