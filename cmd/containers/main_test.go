package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/Philanthropists/linkedcontainers/internal/command"
	"github.com/Philanthropists/linkedcontainers/internal/config"
	"github.com/Philanthropists/linkedcontainers/internal/logging"
	"github.com/Philanthropists/linkedcontainers/internal/session"
)

func newInterpreter(capacity int) (*command.Interpreter, context.Context) {
	log := logging.Wrap(zap.NewNop())
	registry := session.NewRegistry(session.Options{}, log)
	return command.New(registry, capacity, log), log.GetContext(context.Background())
}

func Test_RunPrintsOneLinePerCommand(t *testing.T) {
	interp, ctx := newInterpreter(config.UnboundedCapacity)
	script := strings.Join([]string{
		"# stack round trip",
		"stack s",
		"push s 10",
		"push s 20",
		"",
		"pop s",
		"pop s",
		"pop s",
		"queue q",
		"enqueue q a",
		"rear q",
	}, "\n")

	var out bytes.Buffer
	failures := run(ctx, strings.NewReader(script), &out, interp)

	assert.Equal(t, 0, failures)
	assert.Equal(t, "ok\nok\nok\n20\n10\n<none>\nok\nok\na\n", out.String())
}

func Test_RunCountsFailures(t *testing.T) {
	interp, ctx := newInterpreter(1)
	script := "stack s\npush s a\npush s b\nbogus\n"

	var out bytes.Buffer
	failures := run(ctx, strings.NewReader(script), &out, interp)

	assert.Equal(t, 2, failures)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[2], "error: stack overflow"))
	assert.True(t, strings.HasPrefix(lines[3], "error: unknown command"))
}

func Test_FlagsOverrideConfig(t *testing.T) {
	cfg, err := getConfig(Options{
		ConfigPath: t.TempDir() + "/missing.json",
		Debug:      true,
		TTL:        5,
		Capacity:   0,
	})

	assert.NoError(t, err)
	assert.True(t, cfg.Debug)
	assert.Equal(t, uint(5), cfg.ContainerTTLSeconds)
	assert.Equal(t, 0, cfg.StackCapacity)

	cfg, err = getConfig(Options{
		ConfigPath: t.TempDir() + "/missing.json",
		TTL:        -1,
		Capacity:   -2,
	})
	assert.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func Test_RunHandlesLongValues(t *testing.T) {
	interp, ctx := newInterpreter(config.UnboundedCapacity)
	long := strings.Repeat("v", 100000)
	script := "queue q\nenqueue q " + long + "\nenqueue q short\nsize q\ndequeue q\nrear q\n"

	var out bytes.Buffer
	failures := run(ctx, strings.NewReader(script), &out, interp)

	assert.Equal(t, 0, failures)
	assert.Equal(t, "ok\nok\nok\n2\n"+long+"\nshort\n", out.String())
}
