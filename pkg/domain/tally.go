package domain

import "github.com/google/uuid"

// ScanLine is a parsed input line: a target URL and an optional Host header override.
type ScanLine struct {
	TargetURL    string `json:"url"`
	HostOverride string `json:"host,omitempty"`
}

// ProbeRecord describes one catalog probe dispatched during identification.
type ProbeRecord struct {
	// Plugin is the fingerprint plugin whose catalog supplied Path.
	Plugin string `json:"plugin"`
	// Path is the catalog entry, relative to the base URL.
	Path string `json:"path"`
	// URL is the full URL that was probed.
	URL string `json:"url"`
	// Kind is the outcome variant of the probe.
	Kind OutcomeKind `json:"kind"`
	// StatusCode is the HTTP status for successful probes.
	StatusCode int `json:"status,omitempty"`
	// BodyMD5 is the hex MD5 digest of the body of successful probes.
	BodyMD5 string `json:"md5,omitempty"`
	// Error is the failure reason for failed probes.
	Error string `json:"error,omitempty"`
	// Match is the classification handed back by the classifier.
	Match Classification `json:"match"`
}

// IdentificationTally aggregates every probe issued for one base URL.
type IdentificationTally struct {
	BaseURL      string `json:"baseUrl"`
	HostOverride string `json:"host,omitempty"`

	// Requested is the number of probes dispatched.
	Requested int `json:"requested"`
	// Succeeded counts probes that produced a response (success or redirect).
	Succeeded int `json:"succeeded"`
	// Failed counts probes that ended in a failure.
	Failed int `json:"failed"`

	// Probes holds one record per dispatched probe, in dispatch order.
	Probes []ProbeRecord `json:"probes"`
}

// MatchedPaths returns the paths of plugin that were classified as a match,
// in dispatch order. An empty plugin selects all plugins.
func (t *IdentificationTally) MatchedPaths(plugin string) []string {
	var out []string
	for _, p := range t.Probes {
		if p.Match == Match && (plugin == "" || p.Plugin == plugin) {
			out = append(out, p.Path)
		}
	}

	return out
}

// LineStatus is the final state of a processed input line.
type LineStatus string

const (
	// LineStatusDone means the line was identified, possibly after one redirect.
	LineStatusDone LineStatus = "DONE"
	// LineStatusFailed means the preliminary probe (or identification) failed.
	LineStatusFailed LineStatus = "FAILED"
)

// LineResult is the per-line outcome handed to reporting and storage.
type LineResult struct {
	// Line is the raw input line.
	Line string
	// Target is the parsed line; zero when parsing failed.
	Target ScanLine
	// Status is DONE or FAILED.
	Status LineStatus
	// BaseURL is the URL that was identified. It differs from Target.TargetURL
	// when the preliminary probe was redirected.
	BaseURL string
	// Redirected reports whether the preliminary probe was redirected.
	Redirected bool
	// Generator is the content of the preliminary page's generator meta tag, if any.
	Generator string
	// Tally is nil for failed lines.
	Tally *IdentificationTally
	// Versions holds the narrowed candidate versions, per plugin.
	Versions map[string][]string
	// Err is the failure reason for failed lines.
	Err error
}

// BatchID identifies a set of line results produced from one input file.
type BatchID uuid.UUID

// String returns the canonical textual form of the id.
func (id BatchID) String() string { return uuid.UUID(id).String() }

// NewBatchID returns a random batch id.
func NewBatchID() BatchID { return BatchID(uuid.New()) }

// ParseBatchID parses the canonical textual form of a batch id.
func ParseBatchID(s string) (BatchID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return BatchID{}, err //nolint: wrapcheck
	}

	return BatchID(id), nil
}
