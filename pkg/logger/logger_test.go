package logger_test

import (
	"cmsscan/pkg/logger"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		level       string
		wantErr     bool
	}{
		{
			name:        "Development Environment",
			environment: logger.DevelopmentEnvironment,
		},
		{
			name:        "Production Environment",
			environment: logger.ProductionEnvironment,
		},
		{
			name:        "Explicit Level",
			environment: logger.ProductionEnvironment,
			level:       "debug",
		},
		{
			name:        "Invalid Level",
			environment: logger.DevelopmentEnvironment,
			level:       "loud",
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := logger.Setup(tt.environment, tt.level)
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			require.NotNil(t, logger.Get(context.Background()))
		})
	}
}

func TestGet(t *testing.T) {
	require.NoError(t, logger.Setup(logger.DevelopmentEnvironment, ""))

	ctx := context.Background()
	require.NotNil(t, logger.Get(ctx), "Should return default logger when context has no logger")

	customLogger, _ := zap.NewDevelopment()
	ctxWithLogger := logger.WithLogger(ctx, customLogger)
	require.Equal(t, customLogger, logger.Get(ctxWithLogger), "Should return logger from context")
}

func TestWithTarget(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	logger.Info(logger.WithTarget(ctx, "http://192.168.1.1/", "example.com"), "probing")
	logger.Info(logger.WithTarget(ctx, "http://example.com/", ""), "probing")

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, "http://192.168.1.1/", entries[0].ContextMap()["url"])
	require.Equal(t, "example.com", entries[0].ContextMap()["host"])
	require.NotContains(t, entries[1].ContextMap(), "host")
}

func TestIsDebug(t *testing.T) {
	require.NoError(t, logger.Setup(logger.DevelopmentEnvironment, ""))
	ctx := context.Background()

	require.True(t, logger.IsDebug(ctx), "Development logger should be at debug level")

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	infoLogger, _ := cfg.Build()

	require.False(t, logger.IsDebug(logger.WithLogger(ctx, infoLogger)), "Info level logger should not be at debug level")
}

func TestLoggingFunctions(t *testing.T) {
	require.NoError(t, logger.Setup(logger.DevelopmentEnvironment, ""))
	ctx := context.Background()

	require.NotPanics(t, func() {
		logger.Debug(ctx, "debug message", zap.String("key", "value"))
		logger.Info(ctx, "info message", zap.String("key", "value"))
		logger.Warn(ctx, "warn message", zap.String("key", "value"))
		logger.Error(ctx, "error message", zap.String("key", "value"))
		logger.Sync()
	})
}

func TestSlog(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	logger.Slog(ctx, "river").Info("job completed", "kind", "IdentifyURLFileJob")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "job completed", entries[0].Message)
	require.Equal(t, "river", entries[0].LoggerName)
	require.Equal(t, "IdentifyURLFileJob", entries[0].ContextMap()["kind"])
}
