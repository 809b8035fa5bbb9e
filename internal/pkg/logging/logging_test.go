package logging_test

import (
	"context"
	"testing"

	grpclogging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/KirkDiggler/greed-island/internal/errors"
	"github.com/KirkDiggler/greed-island/internal/pkg/logging"
)

func TestNew(t *testing.T) {
	logger, err := logging.New("debug", true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = logging.New("warn", false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := logging.New("loud", false)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestGRPCLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := logging.GRPCLogger(zap.New(core))

	logger.Log(context.Background(), grpclogging.LevelWarn, "finished call",
		"grpc.method", "Explore", "grpc.code", "OK", "dangling")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "finished call", entries[0].Message)

	fields := entries[0].ContextMap()
	assert.Equal(t, "Explore", fields["grpc.method"])
	assert.Equal(t, "OK", fields["grpc.code"])
	assert.Len(t, fields, 2)
}
