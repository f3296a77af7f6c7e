package worker

import (
	"cmsscan/internal/config"
	"cmsscan/internal/scanner"
	"cmsscan/pkg/logger"
	"cmsscan/pkg/storage"
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
)

// Options configure the River client that runs batch jobs.
type Options struct {
	// MaxWorkers is the number of batches processed concurrently.
	MaxWorkers int
	// JobTimeout bounds one batch; zero disables the timeout.
	JobTimeout time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxWorkers: cfg.Queue.MaxWorkers,
		JobTimeout: cfg.Queue.JobTimeout,
	}
}

// Start registers the batch worker and starts a River client on dbPool. The
// caller stops it with Stop on shutdown.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	engine scanner.Engine,
	results storage.ResultStorage,
	options Options) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewIdentifyFileWorker(engine, results, options.JobTimeout))

	maxWorkers := options.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = 1
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers: workers,
		Logger:  logger.Slog(ctx, "river"),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
