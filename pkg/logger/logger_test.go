package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/localetree/localetree/pkg/logger"
)

func TestNewWithWriter(t *testing.T) {
	t.Parallel()

	t.Run("info level by default", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, false)
		require.False(t, log.Enabled(context.Background(), slog.LevelDebug))

		log.Info("hello", "locale", "en")
		require.Contains(t, buf.String(), "hello")
		require.Contains(t, buf.String(), "locale=en")
	})

	t.Run("verbose enables debug", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, true)
		require.True(t, log.Enabled(context.Background(), slog.LevelDebug))
	})
}
