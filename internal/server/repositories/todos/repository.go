// Package todos persists todo records. Every record carries the id of the
// user who created it; listing is always scoped to one owner.
package todos

import (
	"context"

	"github.com/dmitrijs2005/todokeeper/internal/server/models"
)

// AnyOwner disables the owner filter on Update and Delete.
const AnyOwner = ""

// Repository stores todos.
//
// Update and Delete take an ownerID: when it is not AnyOwner the record must
// also belong to that user, otherwise the call behaves as if the id did not
// exist and returns common.ErrorNotFound.
type Repository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Todo, error)
	Get(ctx context.Context, id string) (*models.Todo, error)
	Create(ctx context.Context, todo *models.Todo) (string, error)
	Update(ctx context.Context, id string, ownerID string, patch models.TodoPatch) error
	Delete(ctx context.Context, id string, ownerID string) error
}
