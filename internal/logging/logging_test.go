package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	t.Run("text output honours level", func(t *testing.T) {
		var buf bytes.Buffer
		lg := New(Config{Out: &buf, Level: slog.LevelWarn, Version: "1.2.3"})

		lg.Info("hidden")
		lg.Warn("shown", "alias", "proj")

		out := buf.String()
		assert.NotContains(t, out, "hidden")
		assert.Contains(t, out, "msg=shown")
		assert.Contains(t, out, "alias=proj")
		assert.Contains(t, out, "version=1.2.3")
	})

	t.Run("json output", func(t *testing.T) {
		var buf bytes.Buffer
		lg := New(Config{Out: &buf, Level: slog.LevelDebug, JSON: true})

		lg.Debug("resolved", "token", "a/b")
		assert.Contains(t, buf.String(), `"msg":"resolved"`)
		assert.Contains(t, buf.String(), `"token":"a/b"`)
	})
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG", slog.LevelWarn))
	assert.Equal(t, slog.LevelInfo, ParseLevel(" info ", slog.LevelWarn))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning", slog.LevelError))
	assert.Equal(t, slog.LevelError, ParseLevel("error", slog.LevelWarn))
	assert.Equal(t, slog.LevelWarn, ParseLevel("", slog.LevelWarn))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose", slog.LevelInfo))
}

func TestContextWithLogger(t *testing.T) {
	var buf bytes.Buffer
	lg := New(Config{Out: &buf, Level: slog.LevelInfo})

	ctx := ContextWithLogger(context.Background(), lg)
	assert.Same(t, lg, FromContext(ctx))

	fallback := FromContext(context.Background())
	assert.NotNil(t, fallback)
	assert.False(t, fallback.Enabled(context.Background(), slog.LevelError))
}
