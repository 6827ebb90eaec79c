package repomanager

import (
	"context"

	"github.com/dmitrijs2005/todokeeper/internal/server/repositories/todos"
	"github.com/dmitrijs2005/todokeeper/internal/server/repositories/users"
)

// RepositoryManager vends the repositories of one storage backend and owns
// its lifecycle.
type RepositoryManager interface {
	Users() users.Repository
	Todos() todos.Repository
	RunMigrations(ctx context.Context) error
	Close() error
}
