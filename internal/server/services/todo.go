package services

import (
	"context"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/logging"
	"github.com/dmitrijs2005/todokeeper/internal/server/models"
	"github.com/dmitrijs2005/todokeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/todokeeper/internal/server/repositories/todos"
)

// TodoService scopes every todo operation to the calling user.
type TodoService struct {
	repomanager      repomanager.RepositoryManager
	enforceOwnership bool
	logger           logging.Logger
}

// NewTodoService builds a TodoService. With enforceOwnership off, update and
// delete act on any existing todo regardless of who owns it.
func NewTodoService(m repomanager.RepositoryManager, enforceOwnership bool, logger logging.Logger) *TodoService {
	return &TodoService{repomanager: m, enforceOwnership: enforceOwnership, logger: logger}
}

func (s *TodoService) List(ctx context.Context, callerID string) ([]*models.Todo, error) {
	list, err := s.repomanager.Todos().ListByOwner(ctx, callerID)
	if err != nil {
		return nil, storageError("listing todos", err)
	}
	return list, nil
}

// Get returns the todo only if the caller owns it.
func (s *TodoService) Get(ctx context.Context, callerID, id string) (*models.Todo, error) {
	t, err := s.repomanager.Todos().Get(ctx, id)
	if err != nil {
		return nil, storageError("loading todo", err)
	}
	if t.OwnerID != callerID {
		return nil, common.ErrorNotFound
	}
	return t, nil
}

// Create stores a new todo owned by the caller.
func (s *TodoService) Create(ctx context.Context, callerID string, fields models.TodoFields) (*models.Todo, error) {
	t := &models.Todo{
		OwnerID:     callerID,
		Name:        fields.Name,
		Description: fields.Description,
		Complete:    fields.Complete,
	}

	if _, err := s.repomanager.Todos().Create(ctx, t); err != nil {
		return nil, storageError("creating todo", err)
	}

	s.logger.Info(ctx, "todo created", "user_id", callerID, "todo_id", t.ID)
	return t, nil
}

func (s *TodoService) Update(ctx context.Context, callerID, id string, patch models.TodoPatch) error {
	if err := s.repomanager.Todos().Update(ctx, id, s.ownerFilter(callerID), patch); err != nil {
		return storageError("updating todo", err)
	}
	return nil
}

func (s *TodoService) Delete(ctx context.Context, callerID, id string) error {
	if err := s.repomanager.Todos().Delete(ctx, id, s.ownerFilter(callerID)); err != nil {
		return storageError("deleting todo", err)
	}
	s.logger.Info(ctx, "todo deleted", "user_id", callerID, "todo_id", id)
	return nil
}

func (s *TodoService) ownerFilter(callerID string) string {
	if s.enforceOwnership {
		return callerID
	}
	return todos.AnyOwner
}
