package postgres

import (
	"cmsscan/pkg/domain"
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	resultsTable = "line_results"
)

// StoreResults inserts results under batchID using their index as position.
// Rows whose (batch_id, position) already exist are left untouched, so a
// retried batch job does not fail on its own earlier attempt.
func (p *PgSQL) StoreResults(ctx context.Context, batchID domain.BatchID, results ...domain.LineResult) error {
	if len(results) == 0 {
		return nil
	}

	rows, err := domainResultsToPg(batchID, results)
	if err != nil {
		return err
	}

	if _, err := p.Builder.Insert(resultsTable).
		Rows(rows).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store results into pg: %w", err)
	}

	return nil
}

// BatchResults returns the stored results of a batch ordered by position.
func (p *PgSQL) BatchResults(ctx context.Context, batchID domain.BatchID) ([]domain.LineResult, error) {
	var rows []PgLineResult
	if err := p.Builder.From(resultsTable).
		Where(goqu.I("batch_id").Eq(uuid.UUID(batchID))).
		Order(goqu.I("position").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch batch results from pg: %w", err)
	}

	return pgResultsToDomain(rows)
}
