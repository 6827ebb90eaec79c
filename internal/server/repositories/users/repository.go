package users

import (
	"context"

	"github.com/dmitrijs2005/todokeeper/internal/server/models"
)

// Repository stores user records. Lookups that match nothing return
// common.ErrorNotFound; Create returns common.ErrDuplicateEmail when the
// email is taken.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	SetAttachmentRef(ctx context.Context, id string, ref string) error
}
