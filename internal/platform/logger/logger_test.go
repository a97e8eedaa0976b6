// Package logger_test contains tests for the logger package
package logger_test

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/til-api/internal/platform/logger"
)

func TestSetupRespectsLevel(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	tests := []struct {
		name        string
		level       string
		debugLogged bool
		infoLogged  bool
	}{
		{name: "debug", level: "debug", debugLogged: true, infoLogged: true},
		{name: "info", level: "info", debugLogged: false, infoLogged: true},
		{name: "upper case", level: "WARN", debugLogged: false, infoLogged: false},
		{name: "invalid falls back to info", level: "verbose", debugLogged: false, infoLogged: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf := &logger.TestLogBuffer{}
			l, err := logger.Setup(logger.LoggerConfig{Level: tc.level, Output: buf})
			require.NoError(t, err)
			require.NotNil(t, l)

			l.Debug("debug message")
			l.Info("info message")

			assert.Equal(t, tc.debugLogged, strings.Contains(buf.String(), "debug message"))
			assert.Equal(t, tc.infoLogged, strings.Contains(buf.String(), "info message"))
			assert.Same(t, l, slog.Default(), "Setup should install the logger as default")
		})
	}
}

func TestSetupWritesJSON(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	buf := &logger.TestLogBuffer{}
	l, err := logger.Setup(logger.LoggerConfig{Level: "info", Output: buf})
	require.NoError(t, err)

	l.Info("hello", "component", "test")

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "hello", entries[0]["msg"])
	assert.Equal(t, "test", entries[0]["component"])
	assert.Equal(t, "INFO", entries[0]["level"])
}

func TestContextLogger(t *testing.T) {
	buf, testLogger, cleanup := logger.SetupTestLogger(t)
	defer cleanup()

	fallback := slog.New(slog.NewTextHandler(&logger.TestLogBuffer{}, nil))

	t.Run("empty context yields fallback", func(t *testing.T) {
		assert.Same(t, fallback, logger.FromContextOrDefault(context.Background(), fallback))
		assert.Same(t, testLogger, logger.FromContext(context.Background()))
	})

	t.Run("stored logger wins", func(t *testing.T) {
		scoped := testLogger.With("trace_id", "abc")
		ctx := logger.WithLogger(context.Background(), scoped)

		got := logger.FromContextOrDefault(ctx, fallback)
		assert.Same(t, scoped, got)

		got.Info("scoped message")
		assert.Contains(t, buf.String(), `"trace_id":"abc"`)
	})
}
