package main

import (
	root "cmsscan"
	"cmsscan/internal/config"
	"cmsscan/pkg/logger"
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCommand constructs the 'migrate' subcommand that brings the result
// schema and the queue tables to their latest versions.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			version, err := strg.MigrateResults(ctx, root.Migrations())
			if err != nil {
				logger.Fatal(ctx, "could not migrate pgsql", zap.Error(err))
			}
			logger.Info(ctx, "result schema is up to date", zap.Int64("version", version))

			if skipQueue, _ := cmd.Flags().GetBool("skip-queue"); skipQueue {
				return
			}
			if err := strg.MigrateQueue(ctx); err != nil {
				logger.Fatal(ctx, "could not migrate river queue", zap.Error(err))
			}
		},
	}

	cmd.Flags().Bool("skip-queue", false, "Only migrate the result schema")

	return cmd
}
