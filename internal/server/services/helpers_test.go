package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/server/auth"
	"github.com/dmitrijs2005/todokeeper/internal/server/models"
	"github.com/dmitrijs2005/todokeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/todokeeper/internal/server/repositories/todos"
	"github.com/dmitrijs2005/todokeeper/internal/server/repositories/users"
)

var errDBDown = errors.New("connection refused")

// brokenUsers fails every call with errDBDown unless a field overrides it.
type brokenUsers struct {
	users.Repository
	setRefErr error
}

func (b *brokenUsers) Create(context.Context, *models.User) (*models.User, error) {
	return nil, errDBDown
}
func (b *brokenUsers) GetByEmail(context.Context, string) (*models.User, error) {
	return nil, errDBDown
}
func (b *brokenUsers) GetByID(ctx context.Context, id string) (*models.User, error) {
	if b.Repository != nil {
		return b.Repository.GetByID(ctx, id)
	}
	return nil, errDBDown
}
func (b *brokenUsers) SetAttachmentRef(context.Context, string, string) error {
	return b.setRefErr
}

type brokenTodos struct{ todos.Repository }

func (brokenTodos) ListByOwner(context.Context, string) ([]*models.Todo, error) {
	return nil, errDBDown
}
func (brokenTodos) Create(context.Context, *models.Todo) (string, error) {
	return "", errDBDown
}

// stubManager lets a test swap single repositories.
type stubManager struct {
	repomanager.RepositoryManager
	users users.Repository
	todos todos.Repository
}

func (m *stubManager) Users() users.Repository {
	if m.users != nil {
		return m.users
	}
	return m.RepositoryManager.Users()
}

func (m *stubManager) Todos() todos.Repository {
	if m.todos != nil {
		return m.todos
	}
	return m.RepositoryManager.Todos()
}

func newTokenService(t *testing.T) *auth.TokenService {
	t.Helper()
	ts, err := auth.NewTokenService("test-secret", "HS256", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService error: %v", err)
	}
	return ts
}
