package iodb

import (
	"database/sql"
	"errors"
	"os"

	"github.com/enadata/consmeta/pkg/config"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGo)
)

// newSQLiteOperator creates an operator for an offline SQLite snapshot
// of the archive tables.
func newSQLiteOperator() *sqlOperator {
	return &sqlOperator{
		driver:      "sqlite",
		placeholder: "?",
		open:        openSQLite,
	}
}

// openSQLite opens an existing snapshot read-only. A missing file is an
// error, SQLite would silently create an empty database otherwise.
func openSQLite(cfg *config.DatabaseConfig) (*sql.DB, string, error) {
	if cfg.Path == "" {
		return nil, cfg.Path, errors.New("sqlite path is not set")
	}
	if _, err := os.Stat(cfg.Path); err != nil {
		return nil, cfg.Path, err
	}
	db, err := sql.Open("sqlite", "file:"+cfg.Path+"?mode=ro")
	return db, cfg.Path, err
}
