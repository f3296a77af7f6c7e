package main

import (
	"cmsscan/internal/api"
	"cmsscan/internal/config"
	"cmsscan/internal/worker"
	"cmsscan/pkg/controller"
	"cmsscan/pkg/logger"
	"cmsscan/pkg/metrics"
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, deps api.Deps, cfg *config.Config) func(ctx context.Context) {
	server := api.NewServer(deps, api.NewOptions(cfg))

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

// workerCommand constructs the 'worker' subcommand that processes queued
// files and serves metrics, health and pprof until interrupted.
func workerCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Starts queue workers and the ops server",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			mp, err := metrics.NewMeterProvider(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}

			stopTracing := setupTracing(ctx, cfg)

			stack, err := buildEngine(ctx, cfg, metrics.Meter(mp))
			if err != nil {
				logger.Fatal(ctx, "could not build engine", zap.Error(err))
			}
			defer stack.Close(ctx)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			checks := map[string]controller.Check{"postgres": strg.Ping}
			if stack.Cache != nil {
				checks["redis"] = stack.Cache.Ping
			}
			stopWebserver := setupServer(ctx, api.Deps{Checks: checks}, cfg)

			// river keeps working on jobs until Stop, so it runs on its own context
			riverClient, err := worker.Start(context.WithoutCancel(ctx), strg.Pool, stack.Engine, strg, worker.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			logger.Info(ctx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(ctx, "could not stop workers gracefully", zap.Error(err))
			}
			stopWebserver(shutdownCtx)
			if err := mp.Shutdown(shutdownCtx); err != nil {
				logger.Warn(ctx, "could not shutdown meter provider", zap.Error(err))
			}
			stopTracing(shutdownCtx)
		},
	}

	return cmd
}
