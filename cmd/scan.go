package main

import (
	"cmsscan/internal/config"
	"cmsscan/pkg/domain"
	"cmsscan/pkg/logger"
	"cmsscan/pkg/report"
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// scanCommand constructs the 'scan' subcommand that identifies every line of
// a URL file in-process and writes one JSON line per input line to stdout.
func scanCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <file>",
		Short: "Identifies every URL of a file and prints the results",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			stopTracing := setupTracing(ctx, cfg)
			defer stopTracing(context.WithoutCancel(ctx))

			stack, err := buildEngine(ctx, cfg, nil)
			if err != nil {
				logger.Fatal(ctx, "could not build engine", zap.Error(err))
			}
			defer stack.Close(ctx)

			results, err := stack.Engine.IdentifyURLFile(ctx, args[0])
			if err != nil {
				logger.Fatal(ctx, "could not scan file", zap.Error(err))
			}

			if err := report.NewWriter(os.Stdout).WriteAll(results); err != nil {
				logger.Fatal(ctx, "could not write report", zap.Error(err))
			}

			store, _ := cmd.Flags().GetBool("store")
			if !store {
				return
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			batchID := domain.NewBatchID()
			if err := strg.StoreResults(ctx, batchID, results...); err != nil {
				logger.Error(ctx, "could not store results", zap.Error(err))

				return
			}
			logger.Info(ctx, "results stored", zap.String("batchId", batchID.String()))
		},
	}

	cmd.Flags().Bool("store", false, "Also persist the results under a new batch id")

	return cmd
}
