// Package repomanager wires repository implementations to a storage backend
// and owns schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/bookkeeper/internal/server/repositories/books"
	"github.com/dmitrijs2005/bookkeeper/internal/server/repositories/users"
)

type RepositoryManager interface {
	// Conn exposes the underlying pool for callers that need transactions
	// (nil for backends without one).
	Conn() *sql.DB
	RunMigrations(ctx context.Context) error
	Users() users.Repository
	Books() books.Repository
	Close() error
}
