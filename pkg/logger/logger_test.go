package logger_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/architeacher/monitoring/pkg/logger"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_JSONFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.NewWithWriter(logger.LogLevelInfo, logger.JSONLoggingFormat, buf)

	log.Info().Str("component", "test").Msg("hello")

	output := buf.String()
	require.True(t, strings.HasPrefix(output, "{"))
	require.Contains(t, output, `"component":"test"`)
	require.Contains(t, output, `"message":"hello"`)
}

func TestNewWithWriter_LevelFiltering(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.NewWithWriter(logger.LogLevelError, logger.JSONLoggingFormat, buf)

	log.Info().Msg("should be filtered")
	require.Empty(t, buf.String())

	log.Error().Msg("should appear")
	require.Contains(t, buf.String(), "should appear")
}

func TestWithContext_RequestID(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.NewBufferedTestLogger(buf)

	ctx := logger.WithRequestID(context.Background(), "req-42")
	ctxLogger := log.WithContext(ctx)
	ctxLogger.Info().Msg("with request id")

	require.Contains(t, buf.String(), `"request_id":"req-42"`)
}

func TestWithContext_NoRequestID(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.NewBufferedTestLogger(buf)

	ctxLogger := log.WithContext(context.Background())
	ctxLogger.Info().Msg("bare")

	require.NotContains(t, buf.String(), "request_id")
}
