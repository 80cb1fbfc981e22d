// Package iodb implements access to the metadata database.
// This is an impure I/O package that implements contracts
// defined in pkg/.
package iodb

import (
	"context"
	"log/slog"
	"time"

	"github.com/enadata/consmeta/pkg/config"
	"github.com/enadata/consmeta/pkg/db"
)

// NewOperator creates a database operator for the given driver
// (without connecting).
func NewOperator(driver string) (db.Operator, error) {
	switch driver {
	case "oracle":
		return newOracleOperator(), nil
	case "postgres":
		return NewPgxOperator(), nil
	case "sqlite":
		return newSQLiteOperator(), nil
	default:
		return nil, UnknownDriverError(driver)
	}
}

// WithOperator connects to the database, runs fn and releases the
// connection on every exit path, including errors returned by fn.
func WithOperator(
	ctx context.Context,
	cfg *config.DatabaseConfig,
	fn func(context.Context, db.Operator) error,
) (err error) {
	op, err := NewOperator(cfg.Driver)
	if err != nil {
		return err
	}

	if cfg.TimeoutSec > 0 {
		var cancel context.CancelFunc
		timeout := time.Duration(cfg.TimeoutSec) * time.Second
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if err = op.Connect(ctx, cfg); err != nil {
		return err
	}
	defer func() {
		if cerr := op.Close(); cerr != nil {
			slog.Warn("Cannot close database connection", "error", cerr)
		}
		slog.Debug("Database connection closed", "driver", cfg.Driver)
	}()

	return fn(ctx, op)
}
