package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreDefault(t *testing.T) {
	t.Helper()
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })
}

func TestJSONLogging(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer

	InitLoggerWithWriter(Config{
		Level:       LogLevelInfo,
		Format:      LogFormatJSON,
		ServiceName: "test-service",
		Version:     "1.2.3",
		Environment: EnvironmentTest,
	}, &buf)

	Info("test message", "key", "value", "number", 42)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-service", entry[AttrKeyService])
	assert.Equal(t, "1.2.3", entry[AttrKeyVersion])
	assert.Equal(t, EnvironmentTest, entry[AttrKeyEnvironment])
	assert.Equal(t, "test message", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "value", entry["key"])
	assert.Equal(t, float64(42), entry["number"])
}

func TestLevelFiltering(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer

	l := InitLoggerWithWriter(Config{Level: LogLevelWarn, Format: LogFormatText}, &buf)
	l.Info("hidden")
	l.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestRequestIDContext(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer
	InitLoggerWithWriter(Config{Level: LogLevelDebug, Format: LogFormatJSON}, &buf)

	ctx := WithRequestID(context.Background(), "test-req-123")
	assert.Equal(t, "test-req-123", GetRequestID(ctx))
	assert.Empty(t, GetRequestID(context.Background()))

	FromContext(ctx).Info("traced")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-req-123", entry[AttrKeyRequestID])
}

func TestWithAttrs(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer
	InitLoggerWithWriter(Config{Level: LogLevelDebug, Format: LogFormatJSON}, &buf)

	ctx := WithRequestID(context.Background(), "req-7")
	ctx = WithAttrs(ctx, AttrKeyItem, "planks")
	ctx = WithAttrs(ctx, AttrKeyCatalog, "abc123")
	assert.Equal(t, ctx, WithAttrs(ctx))

	FromContext(ctx).Debug("resolving")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-7", entry[AttrKeyRequestID])
	assert.Equal(t, "planks", entry[AttrKeyItem])
	assert.Equal(t, "abc123", entry[AttrKeyCatalog])
}

func TestBaseAttributesSkipEmpty(t *testing.T) {
	attrs := Config{ServiceName: "svc"}.BaseAttributes()
	require.Len(t, attrs, 1)
	assert.Equal(t, AttrKeyService, attrs[0].Key)
}

func TestCLIConfig(t *testing.T) {
	cfg := CLIConfig("")
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel())
	assert.False(t, cfg.IsJSON())
	assert.Equal(t, EnvironmentCLI, cfg.Environment)

	assert.Equal(t, slog.LevelDebug, CLIConfig(LogLevelDebug).LogLevel())
}

func TestGenerateRequestID(t *testing.T) {
	a, b := GenerateRequestID(), GenerateRequestID()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}

func TestConfigDefaults(t *testing.T) {
	config := DefaultConfig()
	assert.NotEmpty(t, config.ServiceName)
	assert.NotEmpty(t, config.Level)
	assert.NotEmpty(t, config.Format)
}

func TestProductionConfig(t *testing.T) {
	config := ProductionConfig()
	assert.True(t, config.IsJSON())
	assert.Equal(t, slog.LevelInfo, config.LogLevel())
	assert.Equal(t, EnvironmentProduction, config.Environment)
	assert.False(t, config.AddSource)
}

func TestDevelopmentConfig(t *testing.T) {
	config := DevelopmentConfig()
	assert.False(t, config.IsJSON())
	assert.Equal(t, slog.LevelDebug, config.LogLevel())
	assert.True(t, config.AddSource)
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.expected, Config{Level: tt.level}.LogLevel())
		})
	}
}
