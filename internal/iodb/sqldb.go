package iodb

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/enadata/consmeta/pkg/config"
	"github.com/enadata/consmeta/pkg/manifest"
)

// sqlOperator implements db.Operator on top of database/sql.
// Oracle and SQLite backends differ only in how the handle is opened
// and in the bind placeholder.
type sqlOperator struct {
	driver      string
	placeholder string
	open        func(*config.DatabaseConfig) (*sql.DB, string, error)
	db          *sql.DB
}

// Connect opens the database handle and verifies it with a ping.
func (s *sqlOperator) Connect(
	ctx context.Context,
	cfg *config.DatabaseConfig,
) error {
	db, target, err := s.open(cfg)
	if err != nil {
		return ConnectionError(s.driver, target, cfg.User, err)
	}
	// one query, one connection
	db.SetMaxOpenConns(1)

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return ConnectionError(s.driver, target, cfg.User, err)
	}

	s.db = db
	slog.Info("Connected to database", "driver", s.driver, "target", target)
	return nil
}

// Close releases the database handle.
func (s *sqlOperator) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// FetchAccessions returns accession triples of all runs of a project.
func (s *sqlOperator) FetchAccessions(
	ctx context.Context,
	projectID string,
) ([]manifest.Accession, error) {
	if s.db == nil {
		return nil, NotConnectedError()
	}

	rs, err := s.db.QueryContext(ctx, accessionQuery(s.placeholder), projectID)
	if err != nil {
		return nil, QueryError(projectID, err)
	}
	defer rs.Close()

	return scanAccessions(rs)
}
