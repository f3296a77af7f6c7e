package postgres_test

import (
	"cmsscan/pkg/domain"
	"cmsscan/pkg/storage"
	"cmsscan/pkg/storage/postgres"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func failedLine(line string) domain.LineResult {
	return domain.LineResult{Line: line, Status: domain.LineStatusFailed}
}

func countResults(t *testing.T, pg *postgres.PgSQL, batchID domain.BatchID) int {
	t.Helper()

	res, err := pg.BatchResults(context.Background(), batchID)
	require.NoError(t, err)

	return len(res)
}

func TestPgSQL_Begin_SuccessAndAlreadyInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.NotNil(t, txStorage)

	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)

	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	require.NoError(t, inner.Rollback())
}

func TestPgSQL_Commit_SuccessAndNotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	batchID := domain.NewBatchID()

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, txStorage.StoreResults(ctx, batchID, failedLine("http://a/")))

	// not visible before commit
	require.Equal(t, 0, countResults(t, pg, batchID))
	require.NoError(t, txStorage.Commit())
	require.Equal(t, 1, countResults(t, pg, batchID))
}

func TestPgSQL_Rollback_SuccessAndNotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	batchID := domain.NewBatchID()

	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, txStorage.StoreResults(ctx, batchID, failedLine("http://a/")))
	require.NoError(t, txStorage.Rollback())

	require.Equal(t, 0, countResults(t, pg, batchID))
}

func TestPgSQL_WithTx_CommitAndRollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	committed, rolledBack := domain.NewBatchID(), domain.NewBatchID()

	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		return s.StoreResults(ctx, committed, failedLine("http://a/"), failedLine("http://b/"))
	})
	require.NoError(t, err)
	require.Equal(t, 2, countResults(t, pg, committed))

	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		require.NoError(t, s.StoreResults(ctx, rolledBack, failedLine("http://a/")))

		return errors.New("boom")
	})
	require.Error(t, err)
	require.Equal(t, 0, countResults(t, pg, rolledBack))
}
