package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/bookkeeper/internal/server/repositories/books"
	"github.com/dmitrijs2005/bookkeeper/internal/server/repositories/users"
)

// InMemoryRepositoryManager backs the repositories with process memory.
// Used by tests; everything is lost on shutdown.
type InMemoryRepositoryManager struct {
	users users.Repository
	books books.Repository
}

func NewInMemoryRepositoryManager() RepositoryManager {
	return &InMemoryRepositoryManager{
		users: users.NewInMemoryRepository(),
		books: books.NewInMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) Conn() *sql.DB {
	return nil
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m *InMemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Books() books.Repository {
	return m.books
}

func (m *InMemoryRepositoryManager) Close() error {
	return nil
}
