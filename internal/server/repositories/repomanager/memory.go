package repomanager

import (
	"context"

	"github.com/dmitrijs2005/todokeeper/internal/server/repositories/todos"
	"github.com/dmitrijs2005/todokeeper/internal/server/repositories/users"
)

// MemoryRepositoryManager keeps all records in process memory. Repositories
// are created once so every caller sees the same data.
type MemoryRepositoryManager struct {
	users *users.MemoryRepository
	todos *todos.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		users: users.NewMemoryRepository(),
		todos: todos.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) Users() users.Repository { return m.users }

func (m *MemoryRepositoryManager) Todos() todos.Repository { return m.todos }

// RunMigrations is a no-op; there is no schema.
func (m *MemoryRepositoryManager) RunMigrations(context.Context) error { return nil }

func (m *MemoryRepositoryManager) Close() error { return nil }
