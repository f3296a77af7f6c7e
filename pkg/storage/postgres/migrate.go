package postgres

import (
	"cmsscan/pkg/logger"
	"cmsscan/pkg/storage"
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"go.uber.org/zap"
)

func (p *PgSQL) sqlDB() (*sql.DB, error) {
	db, ok := p.DB.(*sql.DB)
	if !ok {
		return nil, fmt.Errorf("could not migrate: %w", storage.ErrAlreadyInTx)
	}

	return db, nil
}

// MigrateResults applies the goose migrations found at the root of fsys and
// returns the resulting schema version.
func (p *PgSQL) MigrateResults(ctx context.Context, fsys fs.FS) (int64, error) {
	db, err := p.sqlDB()
	if err != nil {
		return 0, err
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		return 0, fmt.Errorf("could not create goose provider: %w", err)
	}

	applied, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not apply result migrations: %w", err)
	}
	for _, res := range applied {
		logger.Info(ctx, "applied result migration",
			zap.Int64("version", res.Source.Version),
			zap.Duration("took", res.Duration))
	}

	version, err := provider.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not read result schema version: %w", err)
	}

	return version, nil
}

// MigrateQueue brings river's tables to the latest version.
func (p *PgSQL) MigrateQueue(ctx context.Context) error {
	db, err := p.sqlDB()
	if err != nil {
		return err
	}

	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return fmt.Errorf("could not create river queue migrator: %w", err)
	}

	res, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, nil)
	if err != nil {
		return fmt.Errorf("could not migrate river queue: %w", err)
	}
	for _, v := range res.Versions {
		logger.Info(ctx, "applied river queue migration", zap.Int("version", v.Version))
	}

	return nil
}
