package blobstore

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/server/models"
)

// MemoryStore keeps blobs in process memory.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string]models.Attachment
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string]models.Attachment)}
}

func (m *MemoryStore) Put(_ context.Context, label string, contentType string, data []byte) (string, error) {
	ref := NewStorageKey(time.Now().UTC(), label)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.blobs[ref] = models.Attachment{
		Ref:         ref,
		Label:       label,
		ContentType: contentType,
		Data:        append([]byte(nil), data...),
	}
	return ref, nil
}

func (m *MemoryStore) Get(_ context.Context, ref string) (*models.Attachment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	a, ok := m.blobs[ref]
	if !ok {
		return nil, common.ErrorNotFound
	}
	a.Data = append([]byte(nil), a.Data...)
	return &a, nil
}

func (m *MemoryStore) Delete(_ context.Context, ref string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.blobs[ref]; !ok {
		return common.ErrorNotFound
	}
	delete(m.blobs, ref)
	return nil
}

// Len reports the number of stored blobs.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.blobs)
}
