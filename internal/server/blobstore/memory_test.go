package blobstore

import (
	"context"
	"strings"
	"testing"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	ref, err := s.Put(ctx, "u1_profile_photo.png", "image/png", []byte{1, 2, 3})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "attachments/"))
	assert.True(t, strings.HasSuffix(ref, "/u1_profile_photo.png"))

	a, err := s.Get(ctx, ref)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, a.Data)
	assert.Equal(t, "u1_profile_photo.png", a.Label)
	assert.Equal(t, "image/png", a.ContentType)

	a.Data[0] = 9
	again, err := s.Get(ctx, ref)
	require.NoError(t, err)
	assert.Equal(t, byte(1), again.Data[0])

	require.NoError(t, s.Delete(ctx, ref))
	assert.ErrorIs(t, s.Delete(ctx, ref), common.ErrorNotFound)

	_, err = s.Get(ctx, ref)
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.Equal(t, 0, s.Len())
}

func TestMemoryStore_DistinctRefs(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	r1, err := s.Put(ctx, "same", "", []byte("a"))
	require.NoError(t, err)
	r2, err := s.Put(ctx, "same", "", []byte("b"))
	require.NoError(t, err)
	assert.NotEqual(t, r1, r2)
	assert.Equal(t, 2, s.Len())
}
