package scanner

import (
	"cmsscan/pkg/domain"
	"context"
)

//go:generate mockgen -package mockscanner -source=interface.go -destination=mock/mockscanner.go *
type Engine interface {
	// IdentifyLine runs the preliminary probe for one input line, follows at
	// most one redirect and identifies the resulting base URL. Failures are
	// reported through ErrorLine and returned as a FAILED result.
	IdentifyLine(ctx context.Context, line string) domain.LineResult
	// IdentifyLines processes every line concurrently and returns the results
	// in input order once all of them have resolved.
	IdentifyLines(ctx context.Context, lines []string) []domain.LineResult
	// ErrorLine reports a line that could not be identified. It never fails.
	ErrorLine(ctx context.Context, line string, err error)
	// IdentifyURLFile reads the file at path and processes its lines as one
	// batch. It fails with serrors.ErrFileAccess before dispatching anything
	// when the file can't be read.
	IdentifyURLFile(ctx context.Context, path string) ([]domain.LineResult, error)
}
