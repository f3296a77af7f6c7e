package main

import (
	"cmsscan/internal/config"
	"cmsscan/internal/identify"
	"cmsscan/internal/scanner"
	"cmsscan/pkg/cache/rediscache"
	"cmsscan/pkg/fingerprint"
	"cmsscan/pkg/logger"
	"cmsscan/pkg/probe/httpprobe"
	"cmsscan/pkg/tracing"
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// engineStack is the line engine together with the resources it owns.
type engineStack struct {
	Engine scanner.Engine
	// Cache is nil unless the tally cache is enabled.
	Cache *rediscache.Cache
}

// Close releases the cache connection, if any.
func (s *engineStack) Close(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	logger.Info(ctx, "closing redis client...")
	if err := s.Cache.Close(); err != nil {
		logger.Warn(ctx, "could not close redis client", zap.Error(err))
	}
}

// buildEngine loads the fingerprint database and wires the probe client, the
// scheduler, the optional tally cache and the line engine. meter may be nil.
func buildEngine(ctx context.Context, cfg *config.Config, meter metric.Meter) (*engineStack, error) {
	db, err := fingerprint.Load(cfg.Scan.FingerprintsPath)
	if err != nil {
		return nil, fmt.Errorf("could not load fingerprints: %w", err)
	}

	identifyOpts := identify.NewOptions(cfg)
	if len(identifyOpts.Plugins) == 0 {
		identifyOpts.Plugins = db.Names()
	}
	// also rejects unknown plugins before anything is probed
	namespace, err := identify.Namespace(ctx, db, identifyOpts.Plugins)
	if err != nil {
		return nil, fmt.Errorf("could not resolve active plugins: %w", err)
	}

	client, err := httpprobe.New(httpprobe.NewOptions(cfg, meter))
	if err != nil {
		return nil, fmt.Errorf("could not create probe client: %w", err)
	}

	stack := &engineStack{}
	identifier := identify.New(db, client, identifyOpts)
	if cfg.Cache.Enabled {
		stack.Cache, err = rediscache.New(ctx, rediscache.NewOptions(cfg))
		if err != nil {
			return nil, fmt.Errorf("could not create tally cache: %w", err)
		}
		identifier = identify.Cached(identifier, stack.Cache, namespace)
	}

	stack.Engine, err = scanner.New(client, identifier, db, scanner.NewOptions(cfg, meter))
	if err != nil {
		stack.Close(ctx)

		return nil, fmt.Errorf("could not create engine: %w", err)
	}

	logger.Info(ctx, "engine ready",
		zap.Strings("plugins", identifyOpts.Plugins),
		zap.Bool("cache", cfg.Cache.Enabled),
		zap.String("catalog", namespace))

	return stack, nil
}

// setupTracing installs the log-backed tracer provider when tracing is
// enabled. The returned func flushes pending spans.
func setupTracing(ctx context.Context, cfg *config.Config) func(ctx context.Context) {
	if !cfg.Tracing.Enabled {
		return func(context.Context) {}
	}

	tp := tracing.NewTracerProvider(logger.Get(ctx).Named("trace"), tracing.NewOptions(cfg))
	otel.SetTracerProvider(tp)
	logger.Info(ctx, "tracing enabled", zap.Float64("sampleRatio", cfg.Tracing.SampleRatio))

	return func(ctx context.Context) {
		if err := tp.Shutdown(ctx); err != nil {
			logger.Warn(ctx, "could not shutdown tracer provider", zap.Error(err))
		}
	}
}
