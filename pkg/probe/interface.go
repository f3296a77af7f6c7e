// Package probe defines the request layer of the scanner: a single HTTP(S)
// fetch of one URL, reported as a domain.ProbeOutcome.
package probe

import (
	"cmsscan/pkg/domain"
	"context"
)

// Client issues probes. Implementations apply process-wide request defaults
// to every call and never follow redirects or retry.
//
//go:generate mockgen -package mockprobe -source=interface.go -destination=mock/mockprobe.go *
type Client interface {
	// Issue fetches rawURL. The connection target is always derived from
	// rawURL; host, when non-empty, only replaces the Host request header.
	Issue(ctx context.Context, rawURL, host string) domain.ProbeOutcome
}
