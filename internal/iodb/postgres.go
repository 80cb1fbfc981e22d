package iodb

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/enadata/consmeta/pkg/config"
	"github.com/enadata/consmeta/pkg/db"
	"github.com/enadata/consmeta/pkg/manifest"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgxOperator implements db.Operator for a PostgreSQL mirror of
// the archive tables using pgxpool.
type pgxOperator struct {
	pool *pgxpool.Pool
}

// NewPgxOperator creates a new PostgreSQL operator
// (without connecting).
func NewPgxOperator() db.Operator {
	return &pgxOperator{}
}

// Connect establishes a connection pool to PostgreSQL.
// consmeta runs exactly one query, so the pool keeps a single
// connection.
func (p *pgxOperator) Connect(
	ctx context.Context,
	cfg *config.DatabaseConfig,
) error {
	target := fmt.Sprintf("%s:%d/%s", cfg.Host, cfg.Port, cfg.Database)

	poolConfig, err := pgxpool.ParseConfig(pgDSN(cfg))
	if err != nil {
		return ConnectionError("postgres", target, cfg.User, err)
	}

	poolConfig.MaxConns = 1
	poolConfig.MinConns = 0

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return ConnectionError("postgres", target, cfg.User, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return ConnectionError("postgres", target, cfg.User, err)
	}

	p.pool = pool
	slog.Info("Connected to database", "driver", "postgres", "target", target)
	return nil
}

// Close releases all database connections.
func (p *pgxOperator) Close() error {
	if p.pool != nil {
		p.pool.Close()
		p.pool = nil
	}
	return nil
}

// FetchAccessions returns accession triples of all runs of a project.
func (p *pgxOperator) FetchAccessions(
	ctx context.Context,
	projectID string,
) ([]manifest.Accession, error) {
	if p.pool == nil {
		return nil, NotConnectedError()
	}

	rs, err := p.pool.Query(ctx, accessionQuery("$1"), projectID)
	if err != nil {
		return nil, QueryError(projectID, err)
	}
	defer rs.Close()

	return scanAccessions(rs)
}

func pgDSN(cfg *config.DatabaseConfig) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Path:     "/" + cfg.Database,
		RawQuery: url.Values{"sslmode": {cfg.SSLMode}}.Encode(),
	}
	return u.String()
}
