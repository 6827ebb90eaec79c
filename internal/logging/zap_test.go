package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_LevelsAndFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewZapLogger(zap.New(core))
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	entries := logs.AllUntimed()
	require.Len(t, entries, 4)

	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "dbg", entries[0].Message)
	assert.Equal(t, int64(1), entries[0].ContextMap()["a"])
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
}

func TestZapLogger_With(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := NewZapLogger(zap.New(core)).With("module", "grpc_server")

	log.Info(context.Background(), "hello", "k", "v")

	entries := logs.FilterMessage("hello").AllUntimed()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "grpc_server", fields["module"])
	assert.Equal(t, "v", fields["k"])
}

func TestNew_PicksBackend(t *testing.T) {
	l, err := New("json")
	require.NoError(t, err)
	assert.IsType(t, &SlogLogger{}, l)

	l, err = New("zap")
	require.NoError(t, err)
	assert.IsType(t, &ZapLogger{}, l)
}
