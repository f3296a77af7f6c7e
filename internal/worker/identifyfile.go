package worker

import (
	"cmsscan/internal/scanner"
	"cmsscan/pkg/domain"
	"cmsscan/pkg/logger"
	"cmsscan/pkg/serrors"
	"cmsscan/pkg/storage"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// IdentifyFileWorker is a River worker that processes a queued URL file with
// the line engine and stores the ordered results under the job's batch id.
//
// Error handling: a file that can't be read, or a malformed batch id, cancels
// the job since retrying can't help. A storage failure is returned so River
// retries the job; already stored positions are skipped on the next attempt.
type IdentifyFileWorker struct {
	river.WorkerDefaults[scanner.JobArgs]

	engine  scanner.Engine
	results storage.ResultStorage
	timeout time.Duration
}

// NewIdentifyFileWorker constructs an IdentifyFileWorker. A zero timeout
// disables River's per-job timeout.
func NewIdentifyFileWorker(engine scanner.Engine, results storage.ResultStorage, timeout time.Duration) *IdentifyFileWorker {
	return &IdentifyFileWorker{
		engine:  engine,
		results: results,
		timeout: timeout,
	}
}

// Timeout overrides River's default job timeout, which is too short for large files.
func (w *IdentifyFileWorker) Timeout(*river.Job[scanner.JobArgs]) time.Duration {
	if w.timeout <= 0 {
		return -1
	}

	return w.timeout
}

// Work identifies every line of the job's file and stores the results.
func (w *IdentifyFileWorker) Work(ctx context.Context, job *river.Job[scanner.JobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("path", job.Args.Path),
		zap.String("batchID", job.Args.BatchID))

	batchID, err := domain.ParseBatchID(job.Args.BatchID)
	if err != nil {
		logger.Error(ctx, "invalid batch id", zap.Error(err))

		return river.JobCancel(serrors.Wrap(serrors.ErrBadRequest, err, "invalid batch id")) //nolint: wrapcheck
	}

	results, err := w.engine.IdentifyURLFile(ctx, job.Args.Path)
	if err != nil {
		logger.Error(ctx, "error in processing URL file", zap.Error(err))

		if errors.Is(err, serrors.ErrFileAccess) {
			return river.JobCancel(err) //nolint: wrapcheck
		}

		return fmt.Errorf("could not process URL file: %w", err)
	}

	if err := w.results.StoreResults(ctx, batchID, results...); err != nil {
		logger.Error(ctx, "error in storing results", zap.Error(err))

		return fmt.Errorf("could not store results: %w", err)
	}

	logger.Info(ctx, "URL file processed successfully", zap.Int("lines", len(results)))

	return nil
}
