// Package logging builds the zap logger shared by the server and bridges it
// to the gRPC middleware logger
package logging

import (
	"context"
	"fmt"

	grpclogging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/KirkDiggler/greed-island/internal/errors"
)

// New builds a logger at level. Development mode uses the console encoder.
func New(level string, development bool) (*zap.Logger, error) {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, errors.InvalidArgumentf("invalid log level %q", level)
	}

	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(parsed)

	logger, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build logger")
	}
	return logger, nil
}

// GRPCLogger adapts logger to the go-grpc-middleware logging interceptors
func GRPCLogger(logger *zap.Logger) grpclogging.Logger {
	return grpclogging.LoggerFunc(func(_ context.Context, lvl grpclogging.Level, msg string, fields ...any) {
		zapFields := make([]zap.Field, 0, len(fields)/2)
		for i := 0; i+1 < len(fields); i += 2 {
			key, ok := fields[i].(string)
			if !ok {
				key = fmt.Sprint(fields[i])
			}
			zapFields = append(zapFields, zap.Any(key, fields[i+1]))
		}

		switch lvl {
		case grpclogging.LevelDebug:
			logger.Debug(msg, zapFields...)
		case grpclogging.LevelWarn:
			logger.Warn(msg, zapFields...)
		case grpclogging.LevelError:
			logger.Error(msg, zapFields...)
		default:
			logger.Info(msg, zapFields...)
		}
	})
}
