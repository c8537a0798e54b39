package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Context tests

func TestFromContext_NilContext(t *testing.T) {
	logger := FromContext(nil) //nolint:staticcheck // Testing nil guard intentionally
	assert.NotNil(t, logger)
	assert.Equal(t, defaultLogger, logger)
}

func TestFromContext_NoLogger(t *testing.T) {
	logger := FromContext(context.Background())
	assert.NotNil(t, logger)
	assert.Equal(t, defaultLogger, logger)
}

func TestFromContext_WithLogger(t *testing.T) {
	customLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := WithContext(context.Background(), customLogger)
	assert.Equal(t, customLogger, FromContext(ctx))
}

func TestWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	ctx := WithContext(context.Background(), logger)
	ctx = WithRequestID(ctx, "req-123")

	FromContext(ctx).InfoContext(ctx, "test message")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-123", entry["request_id"])
}

func TestWithCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	ctx := WithContext(context.Background(), logger)
	ctx = WithCorrelationID(ctx, "corr-456")

	FromContext(ctx).InfoContext(ctx, "test message")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "corr-456", entry["correlation_id"])
}

// Logger construction tests

func TestNewWithWriter_JSONFormat(t *testing.T) {
	var buf bytes.Buffer

	logger := NewWithWriter(&Config{
		Level:   "info",
		Format:  "json",
		Service: "futurama-quotes",
		Version: "1.0.0",
	}, &buf)

	logger.Info("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "futurama-quotes", entry["service_name"])
	assert.Equal(t, "1.0.0", entry["service_version"])
}

func TestNewWithWriter_TextFormat(t *testing.T) {
	var buf bytes.Buffer

	logger := NewWithWriter(&Config{
		Level:   "debug",
		Format:  "text",
		Service: "futurama-quotes",
		Version: "1.0.0",
	}, &buf)

	logger.Debug("debug message")

	output := buf.String()
	assert.Contains(t, output, "debug message")
	assert.Contains(t, output, "futurama-quotes")
}

func TestNewWithWriter_PrettyFormat(t *testing.T) {
	var buf bytes.Buffer

	logger := NewWithWriter(&Config{
		Level:   "info",
		Format:  "pretty",
		Service: "futurama-quotes",
		Version: "1.0.0",
	}, &buf)

	logger.Info("pretty message")

	assert.Contains(t, buf.String(), "pretty message")
}

func TestNewWithWriter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	logger := NewWithWriter(&Config{
		Level:   "warn",
		Format:  "json",
		Service: "futurama-quotes",
		Version: "1.0.0",
	}, &buf)

	logger.Info("filtered out")
	logger.Warn("kept")

	output := buf.String()
	assert.NotContains(t, output, "filtered out")
	assert.Contains(t, output, "kept")
}

func TestNewWithWriter_WithFileConfig(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "test.log")

	var buf bytes.Buffer

	logger := NewWithWriter(&Config{
		Level:   "info",
		Format:  "json",
		Service: "futurama-quotes",
		Version: "1.0.0",
		File: FileConfig{
			Enabled:    true,
			Path:       logFile,
			MaxSizeMB:  1,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
	}, &buf)

	logger.Info("test message to file")

	assert.Contains(t, buf.String(), "test message to file")

	require.FileExists(t, logFile)

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "test message to file")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"nonsense", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, parseLevel(tt.input), "level %q", tt.input)
	}
}

// Redaction tests

func TestRedaction_SensitiveFields(t *testing.T) {
	var buf bytes.Buffer

	logger := NewWithWriter(&Config{
		Level:   "info",
		Format:  "json",
		Service: "futurama-quotes",
		Version: "1.0.0",
	}, &buf)

	logger.Info("auth attempt",
		slog.String("password", "hunter2"),
		slog.String("api_key", "sk-12345"),
	)

	output := buf.String()
	assert.NotContains(t, output, "hunter2")
	assert.NotContains(t, output, "sk-12345")
}

// MultiHandler tests

func TestMultiHandler_WritesToAll(t *testing.T) {
	var buf1, buf2 bytes.Buffer

	multi := NewMultiHandler(
		slog.NewJSONHandler(&buf1, nil),
		slog.NewTextHandler(&buf2, nil),
	)

	slog.New(multi).Info("fan out")

	assert.Contains(t, buf1.String(), "fan out")
	assert.Contains(t, buf2.String(), "fan out")
}

func TestMultiHandler_RespectsLevels(t *testing.T) {
	var debugBuf, errorBuf bytes.Buffer

	multi := NewMultiHandler(
		slog.NewJSONHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewJSONHandler(&errorBuf, &slog.HandlerOptions{Level: slog.LevelError}),
	)

	logger := slog.New(multi)
	logger.Debug("debug only")
	logger.Error("both")

	assert.Contains(t, debugBuf.String(), "debug only")
	assert.Contains(t, debugBuf.String(), "both")
	assert.NotContains(t, errorBuf.String(), "debug only")
	assert.Contains(t, errorBuf.String(), "both")
}

func TestMultiHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer

	multi := NewMultiHandler(slog.NewJSONHandler(&buf, nil))
	logger := slog.New(multi).With(slog.String("component", "store"))

	logger.Info("attributed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "store", entry["component"])
}
