package todos

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/server/models"
	"github.com/google/uuid"
)

// MemoryRepository keeps todos in process memory, listing them in
// insertion order.
type MemoryRepository struct {
	mu    sync.RWMutex
	items map[string]*models.Todo
	order []string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[string]*models.Todo)}
}

func (r *MemoryRepository) ListByOwner(_ context.Context, ownerID string) ([]*models.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*models.Todo{}
	for _, id := range r.order {
		if t := r.items[id]; t.OwnerID == ownerID {
			item := *t
			result = append(result, &item)
		}
	}
	return result, nil
}

func (r *MemoryRepository) Get(_ context.Context, id string) (*models.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	item := *t
	return &item, nil
}

func (r *MemoryRepository) Create(_ context.Context, todo *models.Todo) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item := *todo
	item.ID = uuid.NewString()
	r.items[item.ID] = &item
	r.order = append(r.order, item.ID)

	todo.ID = item.ID
	return item.ID, nil
}

func (r *MemoryRepository) Update(_ context.Context, id string, ownerID string, patch models.TodoPatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.items[id]
	if !ok || (ownerID != AnyOwner && t.OwnerID != ownerID) {
		return common.ErrorNotFound
	}
	patch.Apply(t)
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.items[id]
	if !ok || (ownerID != AnyOwner && t.OwnerID != ownerID) {
		return common.ErrorNotFound
	}

	delete(r.items, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
