// Package fingerprint holds the externally supplied knowledge the scanner
// works from: the per-plugin catalog of relative paths, the predicate that
// classifies probe outcomes, and the version signature tables.
package fingerprint

import (
	"cmsscan/pkg/domain"
	"context"
)

// Catalog supplies the ordered relative paths probed for a plugin. It is
// read-only and safe for concurrent use.
//
//go:generate mockgen -package mockfingerprint -source=interface.go -destination=mock/mockfingerprint.go *
type Catalog interface {
	// RelativePaths returns the ordered catalog of plugin. Paths are appended
	// verbatim to a base URL.
	RelativePaths(ctx context.Context, plugin string) ([]string, error)
}

// VersionMatcher narrows the candidate versions of a plugin from a tally.
type VersionMatcher interface {
	// Narrow returns the versions of plugin consistent with tally, or nil when
	// the tally carries no usable signature.
	Narrow(plugin string, tally *domain.IdentificationTally) []string
}

// Classifier decides whether a probe outcome counts as a match.
type Classifier func(outcome domain.ProbeOutcome) domain.Classification

// StatusClassifier matches successful probes answered with 200 OK.
func StatusClassifier(outcome domain.ProbeOutcome) domain.Classification {
	return domain.Classification(outcome.Kind == domain.OutcomeSuccess && outcome.StatusCode == 200)
}
