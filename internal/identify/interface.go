package identify

import (
	"cmsscan/pkg/domain"
	"context"
)

//go:generate mockgen -package mockidentify -source=interface.go -destination=mock/mockidentify.go *
type Identifier interface {
	// Identify probes every catalog path of the active plugins under baseURL
	// and returns the finalized tally once all probes have resolved. Probe
	// failures are recorded in the tally; an error is only returned when the
	// catalog could not be read, in which case nothing is dispatched.
	Identify(ctx context.Context, baseURL, host string) (*domain.IdentificationTally, error)
}

// TallyCache stores finalized tallies keyed by namespace, base URL and host
// override. The namespace identifies the catalog the tally was probed with.
type TallyCache interface {
	// Get returns the cached tally, or nil without error on a miss.
	Get(ctx context.Context, namespace, baseURL, host string) (*domain.IdentificationTally, error)
	Set(ctx context.Context, namespace string, tally *domain.IdentificationTally) error
}
