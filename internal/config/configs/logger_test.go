package configs

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerLevels(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"err":     slog.LevelError,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, Logger{Level: in}.SlogLevel(), in)
	}
}

func TestLoggerHandlerFormat(t *testing.T) {
	var buf bytes.Buffer
	slog.New(Logger{Format: "JSON"}.NewHandler(&buf)).Info("hello", slog.String("run_id", "r1"))
	assert.Contains(t, buf.String(), `"run_id":"r1"`)

	buf.Reset()
	slog.New(Logger{Format: "logfmt"}.NewHandler(&buf)).Info("hello", slog.String("run_id", "r1"))
	assert.Contains(t, buf.String(), "run_id=r1")

	buf.Reset()
	slog.New(Logger{Level: "warn"}.NewHandler(&buf)).Info("dropped")
	assert.Empty(t, buf.String())
}
