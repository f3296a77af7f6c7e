package postgres

import (
	"context"
	"fmt"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// AddJob inserts a river job. On a transaction handle the job joins the
// transaction and becomes visible to workers only on commit. It reports false
// when a unique job with the same arguments already exists.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	var (
		res *rivertype.JobInsertResult
		err error
	)

	if tx, txErr := p.tx(); txErr == nil {
		res, err = p.queue.InsertTx(ctx, tx, args, opts)
	} else {
		res, err = p.queue.Insert(ctx, args, opts)
	}
	if err != nil {
		return false, fmt.Errorf("could not insert %s job: %w", args.Kind(), err)
	}

	return !res.UniqueSkippedAsDuplicate, nil
}
