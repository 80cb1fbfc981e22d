package db

import (
	"context"

	"github.com/enadata/consmeta/pkg/config"
	"github.com/enadata/consmeta/pkg/manifest"
)

// Operator defines the interface for the metadata database.
// It provides connection lifecycle management and the single query
// consmeta needs.
type Operator interface {
	// Connect establishes a connection to the database.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close releases the connection. It is safe to call Close on an
	// operator that never connected, and to call it more than once.
	Close() error

	// Fetcher returns accession triples of all runs of a project.
	manifest.Fetcher
}
