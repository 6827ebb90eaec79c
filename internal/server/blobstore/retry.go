package blobstore

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/logging"
	"github.com/dmitrijs2005/todokeeper/internal/server/models"
	"github.com/sethvargo/go-retry"
)

// Retrying wraps a Store and retries failed calls with exponential backoff.
// NotFound answers are final and never retried.
type Retrying struct {
	next    Store
	retries uint64
	base    time.Duration
	logger  logging.Logger
}

func NewRetrying(next Store, retries int, logger logging.Logger) *Retrying {
	if retries < 0 {
		retries = 0
	}
	return &Retrying{next: next, retries: uint64(retries), base: 50 * time.Millisecond, logger: logger}
}

func (r *Retrying) do(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	attempt := 0
	b := retry.WithMaxRetries(r.retries, retry.NewExponential(r.base))
	return retry.Do(ctx, b, func(ctx context.Context) error {
		attempt++
		err := fn(ctx)
		if err == nil || errors.Is(err, common.ErrorNotFound) {
			return err
		}
		r.logger.Warn(ctx, "blob store call failed", "op", op, "attempt", attempt, "error", err)
		return retry.RetryableError(err)
	})
}

func (r *Retrying) Put(ctx context.Context, label string, contentType string, data []byte) (string, error) {
	var ref string
	err := r.do(ctx, "put", func(ctx context.Context) error {
		var err error
		ref, err = r.next.Put(ctx, label, contentType, data)
		return err
	})
	return ref, err
}

func (r *Retrying) Get(ctx context.Context, ref string) (*models.Attachment, error) {
	var a *models.Attachment
	err := r.do(ctx, "get", func(ctx context.Context) error {
		var err error
		a, err = r.next.Get(ctx, ref)
		return err
	})
	return a, err
}

func (r *Retrying) Delete(ctx context.Context, ref string) error {
	return r.do(ctx, "delete", func(ctx context.Context) error {
		return r.next.Delete(ctx, ref)
	})
}

// PresignGet delegates to the wrapped store when it can sign URLs.
func (r *Retrying) PresignGet(ctx context.Context, ref string, ttl time.Duration) (string, error) {
	s, ok := r.next.(URLSigner)
	if !ok {
		return "", common.ErrUnsupported
	}
	return s.PresignGet(ctx, ref, ttl)
}
