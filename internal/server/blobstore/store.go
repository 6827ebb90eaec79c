// Package blobstore keeps binary attachments outside the record store. A
// Store hands out opaque references on Put; Get and Delete report a missing
// reference as common.ErrorNotFound.
package blobstore

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/server/models"
	"github.com/google/uuid"
)

type Store interface {
	Put(ctx context.Context, label string, contentType string, data []byte) (string, error)
	Get(ctx context.Context, ref string) (*models.Attachment, error)
	Delete(ctx context.Context, ref string) error
}

// URLSigner is implemented by stores that can hand out time-limited direct
// download links.
type URLSigner interface {
	PresignGet(ctx context.Context, ref string, ttl time.Duration) (string, error)
}

// NewStorageKey returns a fresh object key for label, partitioned by date.
func NewStorageKey(now time.Time, label string) string {
	return fmt.Sprintf("attachments/%d/%d/%d/%v/%s", now.Year(), now.Month(), now.Day(), uuid.New(), label)
}
