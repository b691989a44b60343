package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ponyexpress/pkg/environment"
	"github.com/dmitrymomot/ponyexpress/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Run("creates JSON logger", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		require.NotNil(t, log)
		log.Info("hello")
		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text formatter option", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithTextFormatter())
		log.Info("hello")
		assert.Contains(t, buf.String(), "level=INFO")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("last formatter wins", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithTextFormatter(),
			logger.WithJSONFormatter(),
		)
		log.Info("hello")
		assert.Equal(t, "hello", decode(t, buf)["msg"])
	})

	t.Run("level filters records", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelWarn))
		log.Info("dropped")
		assert.Empty(t, buf.String())
	})

	t.Run("includes default attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithAttr(slog.String("svc", "test")),
		)
		log.Info("msg")
		assert.Equal(t, "test", decode(t, buf)["svc"])
	})

	t.Run("extracts from context", func(t *testing.T) {
		buf := &bytes.Buffer{}
		type key string
		ctxKey := key("id")
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextExtractors(nil, func(ctx context.Context) (slog.Attr, bool) {
				if v := ctx.Value(ctxKey); v != nil {
					return slog.String("id", v.(string)), true
				}
				return slog.Attr{}, false
			}),
		)
		ctx := context.WithValue(context.Background(), ctxKey, "42")
		log.InfoContext(ctx, "context msg")
		assert.Equal(t, "42", decode(t, buf)["id"])
	})

	t.Run("context value option", func(t *testing.T) {
		buf := &bytes.Buffer{}
		type key struct{}
		log := logger.New(logger.WithOutput(buf), logger.WithContextValue("trace_id", key{}))
		log.With("a", 1).InfoContext(context.WithValue(context.Background(), key{}, "t-1"), "msg")
		entry := decode(t, buf)
		assert.Equal(t, "t-1", entry["trace_id"])
		assert.Equal(t, float64(1), entry["a"])
	})

	t.Run("discard", func(t *testing.T) {
		log := logger.New(logger.WithDiscard())
		assert.NotPanics(t, func() { log.Error("nowhere") })
	})
}

func TestWithEnvironment(t *testing.T) {
	t.Run("development uses text at debug", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithEnvironment(environment.Development, "relay"),
		)
		log.Debug("dbg")
		out := buf.String()
		assert.Contains(t, out, "level=DEBUG")
		assert.Contains(t, out, "service=relay")
		assert.Contains(t, out, "env=development")
	})

	t.Run("production uses json at info", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithEnvironment(environment.Production, "relay"),
		)
		log.Debug("dropped")
		assert.Empty(t, buf.String())
		log.Info("kept")
		entry := decode(t, buf)
		assert.Equal(t, "relay", entry["service"])
		assert.Equal(t, "production", entry["env"])
	})

	t.Run("empty service is ignored", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithEnvironment(environment.Production, ""),
		)
		log.Info("msg")
		entry := decode(t, buf)
		assert.NotContains(t, entry, "service")
	})
}

func TestNewFromConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log, err := logger.NewFromConfig(logger.Config{
			Level:   "warn",
			Format:  "json",
			Env:     "prod",
			Service: "relay",
		}, logger.WithOutput(buf))
		require.NoError(t, err)
		log.Info("dropped")
		assert.Empty(t, buf.String())
		log.Warn("kept")
		entry := decode(t, buf)
		assert.Equal(t, "WARN", entry["level"])
		assert.Equal(t, "production", entry["env"])
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := logger.NewFromConfig(logger.Config{Level: "loud", Format: "json"})
		assert.ErrorIs(t, err, logger.ErrInvalidLevel)
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := logger.NewFromConfig(logger.Config{Level: "info", Format: "xml"})
		assert.ErrorIs(t, err, logger.ErrInvalidFormat)
	})
}

func TestParseLevel(t *testing.T) {
	l, err := logger.ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, l)

	l, err = logger.ParseLevel(" ERROR ")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelError, l)

	_, err = logger.ParseLevel("")
	assert.ErrorIs(t, err, logger.ErrInvalidLevel)
}

func TestSetAsDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	buf := &bytes.Buffer{}
	logger.SetAsDefault(logger.New(logger.WithOutput(buf)))
	slog.Info("default")
	assert.Equal(t, "default", decode(t, buf)["msg"])
}

func TestWithFormatPanics(t *testing.T) {
	assert.Panics(t, func() {
		logger.New(logger.WithFormat(logger.Format("xml")))
	})
}
