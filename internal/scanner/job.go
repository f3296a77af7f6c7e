package scanner

import (
	"cmsscan/pkg/domain"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// JobArgs contains the arguments for a batch job submitted to River: a URL
// file to process and the batch its results are stored under.
type JobArgs struct {
	// Path is the URL file, as seen by the worker process.
	Path string `json:"path"`
	// BatchID is marked as unique so a batch is never enqueued twice.
	BatchID string `json:"batchId" river:"unique"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
}

// NewJobArgs returns the arguments of a job that identifies the lines of path
// and stores them under batchID.
func NewJobArgs(path string, batchID domain.BatchID, maxAttempts int) JobArgs {
	return JobArgs{
		Path:        path,
		BatchID:     batchID.String(),
		maxAttempts: maxAttempts,
	}
}

// Kind returns the River job kind used to register and dispatch the batch worker.
func (args JobArgs) Kind() string { return "IdentifyURLFileJob" }

// InsertOpts returns the River options that control how the job is enqueued.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
