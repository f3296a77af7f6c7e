package main

import (
	"cmsscan/internal/config"
	"cmsscan/internal/scanner"
	"cmsscan/pkg/domain"
	"cmsscan/pkg/logger"
	"cmsscan/pkg/report"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// enqueueCommand constructs the 'enqueue' subcommand that queues a URL file
// for a worker and prints the batch id its results will be stored under.
func enqueueCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enqueue <file>",
		Short: "Queues a URL file for the workers",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			// workers resolve the path on their own filesystem
			path, err := filepath.Abs(args[0])
			if err != nil {
				logger.Fatal(ctx, "could not resolve file path", zap.Error(err))
			}

			batchID := domain.NewBatchID()
			if raw, _ := cmd.Flags().GetString("batch"); raw != "" {
				if batchID, err = domain.ParseBatchID(raw); err != nil {
					logger.Fatal(ctx, "invalid batch id", zap.String("batch", raw), zap.Error(err))
				}
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			inserted, err := strg.AddJob(ctx, scanner.NewJobArgs(path, batchID, cfg.Queue.MaxAttempts), nil)
			if err != nil {
				logger.Fatal(ctx, "could not enqueue file", zap.Error(err))
			}
			if !inserted {
				logger.Info(ctx, "batch is already queued", zap.String("batchId", batchID.String()))
			}

			fmt.Println(batchID.String()) //nolint: forbidigo
		},
	}

	cmd.Flags().String("batch", "", "Batch id to use instead of a random one")

	return cmd
}

// resultsCommand constructs the 'results' subcommand that prints the stored
// results of a batch in the same format as 'scan'.
func resultsCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "results <batch-id>",
		Short: "Prints the stored results of a batch",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			batchID, err := domain.ParseBatchID(args[0])
			if err != nil {
				logger.Fatal(ctx, "invalid batch id", zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			results, err := strg.BatchResults(ctx, batchID)
			if err != nil {
				logger.Fatal(ctx, "could not load results", zap.Error(err))
			}
			if len(results) == 0 {
				logger.Warn(ctx, "no results stored for batch yet", zap.String("batchId", batchID.String()))
			}

			if err := report.NewWriter(os.Stdout).WriteAll(results); err != nil {
				logger.Fatal(ctx, "could not write report", zap.Error(err))
			}
		},
	}
}
