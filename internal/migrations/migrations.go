package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"

	"star-home/internal/pkg/logger"
)

//go:embed *.sql
var embedMigrations embed.FS

// Up applies every pending migration embedded in the binary.
func Up(db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(logger.Logger())

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
