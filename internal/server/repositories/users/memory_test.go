package users

import (
	"context"
	"sync"
	"testing"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	u, err := repo.Create(ctx, &models.User{Email: "a@x.com", Name: "A", PasswordHash: "h"})
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)

	byEmail, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)

	byID, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", byID.Name)
	assert.Empty(t, byID.AttachmentRef)

	_, err = repo.GetByEmail(ctx, "A@x.com")
	assert.ErrorIs(t, err, common.ErrorNotFound, "emails are case-sensitive")
}

func TestMemoryRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	_, err := repo.Create(ctx, &models.User{Email: "a@x.com"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &models.User{Email: "a@x.com"})
	assert.ErrorIs(t, err, common.ErrDuplicateEmail)
}

func TestMemoryRepository_ConcurrentDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	const n = 16
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Create(ctx, &models.User{Email: "race@x.com"})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	created := 0
	for err := range errs {
		if err == nil {
			created++
			continue
		}
		assert.ErrorIs(t, err, common.ErrDuplicateEmail)
	}
	assert.Equal(t, 1, created)
}

func TestMemoryRepository_SetAttachmentRef(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	u, err := repo.Create(ctx, &models.User{Email: "a@x.com"})
	require.NoError(t, err)

	require.NoError(t, repo.SetAttachmentRef(ctx, u.ID, "ref-1"))
	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "ref-1", got.AttachmentRef)

	assert.ErrorIs(t, repo.SetAttachmentRef(ctx, "missing", "ref"), common.ErrorNotFound)
}

func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	u, err := repo.Create(ctx, &models.User{Email: "a@x.com", Name: "A"})
	require.NoError(t, err)
	u.Name = "mutated"

	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", got.Name)
}
