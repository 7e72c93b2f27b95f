package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := NewDefault(&buf, slog.LevelDebug)
	ctx := context.Background()

	log.Debug(ctx, "debug msg", "k", "v")
	log.Info(ctx, "info msg")
	log.Warn(ctx, "warn msg")
	log.Error(ctx, "error msg")

	out := buf.String()
	assert.Contains(t, out, "debug msg")
	assert.Contains(t, out, "info msg")
	assert.Contains(t, out, "warn msg")
	assert.Contains(t, out, "error msg")
	assert.Contains(t, out, "k=v")
}

func TestSlogLogger_With(t *testing.T) {
	var buf bytes.Buffer
	log := NewDefault(&buf, slog.LevelInfo)

	child := log.With("component", "api")
	require.NotNil(t, child)
	child.Info(context.Background(), "request done")

	assert.Contains(t, buf.String(), "component=api")
}

func TestNewDefault_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewDefault(&buf, slog.LevelWarn)

	log.Info(context.Background(), "invisible")
	log.Warn(context.Background(), "visible")

	out := buf.String()
	assert.NotContains(t, out, "invisible")
	assert.Contains(t, out, "visible")
}
