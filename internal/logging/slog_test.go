package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newBufferedSlog(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Levels(t *testing.T) {
	log, buf := newBufferedSlog(t)
	ctx := context.Background()

	log.Debug(ctx, "listing todos", "user_id", "u1")
	log.Info(ctx, "todo created", "todo_id", "t1")
	log.Warn(ctx, "old photo already gone", "ref", "r1")
	log.Error(ctx, "blob write failed", "attempt", 3)

	out := buf.String()
	for _, want := range []string{
		"level=DEBUG", `msg="listing todos"`, "user_id=u1",
		"level=INFO", "todo_id=t1",
		"level=WARN", "ref=r1",
		"level=ERROR", "attempt=3",
	} {
		assert.Contains(t, out, want)
	}
}

func TestSlogLogger_With(t *testing.T) {
	log, buf := newBufferedSlog(t)

	log.With("module", "http_gateway").Info(context.TODO(), "request", "status", 200)

	out := buf.String()
	assert.Contains(t, out, "module=http_gateway")
	assert.Contains(t, out, "status=200")
}
