package logging

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func Test_FromContextReturnsAttachedLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := Wrap(zap.New(core))

	ctx := l.GetContext(context.Background())
	FromContext(ctx).Info("hello", Container("jobs"))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "hello", entry.Message)
	assert.Equal(t, "jobs", entry.ContextMap()[ContainerKey])
}

func Test_FromContextWithoutLoggerFallsBackToProcessLogger(t *testing.T) {
	assert.NotNil(t, FromContext(nil))
	assert.Same(t, New(), FromContext(context.Background()))
}

func Test_WithAddsFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := Wrap(zap.New(core)).With(String(KindKey, "stack"))

	l.Debug("pushed", Size(3), Capacity(math.MaxInt))
	l.Warn("overflow", Capacity(4), Error(errors.New("full")))

	require.Equal(t, 2, logs.Len())
	first := logs.All()[0].ContextMap()
	assert.Equal(t, "stack", first[KindKey])
	assert.Equal(t, int64(3), first[SizeKey])
	assert.Equal(t, int64(-1), first[CapacityKey])

	second := logs.All()[1].ContextMap()
	assert.Equal(t, int64(4), second[CapacityKey])
	assert.Equal(t, "full", second["error"])
}

func Test_FieldHelpers(t *testing.T) {
	assert.Equal(t, zap.Duration("ttl", time.Second), Duration("ttl", time.Second))
	assert.Equal(t, zap.Bool(FullKey, true), Bool(FullKey, true))
	assert.Equal(t, zap.Int64(LineKey, 12), Int(LineKey, 12))
}

func Test_BuildRespectsLevel(t *testing.T) {
	l, err := Build(zapcore.WarnLevel)
	require.NoError(t, err)

	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
}
