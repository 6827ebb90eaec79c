package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/logging"
	"github.com/dmitrijs2005/todokeeper/internal/server/models"
	"github.com/dmitrijs2005/todokeeper/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestTodoService_CreateAndList(t *testing.T) {
	ctx := context.Background()
	svc := NewTodoService(repomanager.NewMemoryRepositoryManager(), true, logging.NewNop())

	created, err := svc.Create(ctx, "U1", models.TodoFields{Name: "buy milk", Description: "2%"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "U1", created.OwnerID)

	list, err := svc.List(ctx, "U1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "buy milk", list[0].Name)
	assert.Equal(t, "2%", list[0].Description)
	assert.False(t, list[0].Complete)
}

func TestTodoService_ListIsolation(t *testing.T) {
	ctx := context.Background()
	svc := NewTodoService(repomanager.NewMemoryRepositoryManager(), true, logging.NewNop())

	_, err := svc.Create(ctx, "U1", models.TodoFields{Name: "mine"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "U2", models.TodoFields{Name: "theirs"})
	require.NoError(t, err)

	for _, caller := range []string{"U1", "U2"} {
		list, err := svc.List(ctx, caller)
		require.NoError(t, err)
		for _, item := range list {
			assert.Equal(t, caller, item.OwnerID)
		}
	}
}

func TestTodoService_Get(t *testing.T) {
	ctx := context.Background()
	svc := NewTodoService(repomanager.NewMemoryRepositoryManager(), true, logging.NewNop())

	created, err := svc.Create(ctx, "U1", models.TodoFields{Name: "n"})
	require.NoError(t, err)

	got, err := svc.Get(ctx, "U1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, "n", got.Name)

	_, err = svc.Get(ctx, "U2", created.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = svc.Get(ctx, "U1", "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestTodoService_PartialUpdate(t *testing.T) {
	ctx := context.Background()
	svc := NewTodoService(repomanager.NewMemoryRepositoryManager(), true, logging.NewNop())

	created, err := svc.Create(ctx, "U1", models.TodoFields{Name: "n", Description: "d"})
	require.NoError(t, err)

	require.NoError(t, svc.Update(ctx, "U1", created.ID, models.TodoPatch{Complete: ptr(true)}))

	got, err := svc.Get(ctx, "U1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, "n", got.Name)
	assert.Equal(t, "d", got.Description)
	assert.True(t, got.Complete)

	assert.ErrorIs(t, svc.Update(ctx, "U1", "missing", models.TodoPatch{Name: ptr("x")}), common.ErrorNotFound)
}

func TestTodoService_DeleteTwice(t *testing.T) {
	ctx := context.Background()
	svc := NewTodoService(repomanager.NewMemoryRepositoryManager(), true, logging.NewNop())

	created, err := svc.Create(ctx, "U1", models.TodoFields{Name: "n"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "U1", created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, "U1", created.ID), common.ErrorNotFound)
}

func TestTodoService_OwnershipPolicy(t *testing.T) {
	ctx := context.Background()

	t.Run("enforced", func(t *testing.T) {
		svc := NewTodoService(repomanager.NewMemoryRepositoryManager(), true, logging.NewNop())
		created, err := svc.Create(ctx, "U1", models.TodoFields{Name: "n"})
		require.NoError(t, err)

		assert.ErrorIs(t, svc.Update(ctx, "U2", created.ID, models.TodoPatch{Name: ptr("hijacked")}), common.ErrorNotFound)
		assert.ErrorIs(t, svc.Delete(ctx, "U2", created.ID), common.ErrorNotFound)

		got, err := svc.Get(ctx, "U1", created.ID)
		require.NoError(t, err)
		assert.Equal(t, "n", got.Name)
	})

	t.Run("not enforced", func(t *testing.T) {
		svc := NewTodoService(repomanager.NewMemoryRepositoryManager(), false, logging.NewNop())
		created, err := svc.Create(ctx, "U1", models.TodoFields{Name: "n"})
		require.NoError(t, err)

		require.NoError(t, svc.Update(ctx, "U2", created.ID, models.TodoPatch{Name: ptr("renamed")}))
		got, err := svc.Get(ctx, "U1", created.ID)
		require.NoError(t, err)
		assert.Equal(t, "renamed", got.Name)
		assert.Equal(t, "U1", got.OwnerID)

		require.NoError(t, svc.Delete(ctx, "U2", created.ID))
	})
}

func TestTodoService_StoreFailure(t *testing.T) {
	ctx := context.Background()
	m := &stubManager{RepositoryManager: repomanager.NewMemoryRepositoryManager(), todos: brokenTodos{}}
	svc := NewTodoService(m, true, logging.NewNop())

	_, err := svc.List(ctx, "U1")
	assert.ErrorIs(t, err, common.ErrStorage)

	_, err = svc.Create(ctx, "U1", models.TodoFields{})
	assert.ErrorIs(t, err, common.ErrStorage)
}
