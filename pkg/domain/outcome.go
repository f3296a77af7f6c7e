package domain

import "fmt"

// OutcomeKind tags which variant a ProbeOutcome holds.
type OutcomeKind int

const (
	// OutcomeSuccess means the target answered with a non-redirect response.
	OutcomeSuccess OutcomeKind = iota + 1
	// OutcomeRedirect means the target answered with a 3xx carrying a Location header.
	OutcomeRedirect
	// OutcomeFailure means no usable response was obtained.
	OutcomeFailure
)

// String returns the lower-case name of the kind, used as a metric attribute.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeRedirect:
		return "redirect"
	case OutcomeFailure:
		return "failure"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// ProbeOutcome is the result of a single probe. Exactly one variant is set,
// as indicated by Kind; use the Success, Redirect and Failure constructors.
type ProbeOutcome struct {
	Kind OutcomeKind

	// StatusCode and Body are set for OutcomeSuccess.
	StatusCode int
	Body       []byte
	// Location is the verbatim Location header for OutcomeRedirect.
	Location string
	// Err is set for OutcomeFailure.
	Err error
}

// Success builds a successful outcome.
func Success(body []byte, statusCode int) ProbeOutcome {
	return ProbeOutcome{Kind: OutcomeSuccess, StatusCode: statusCode, Body: body}
}

// Redirect builds a redirect outcome carrying location exactly as received.
func Redirect(location string) ProbeOutcome {
	return ProbeOutcome{Kind: OutcomeRedirect, Location: location}
}

// Failure builds a failed outcome.
func Failure(err error) ProbeOutcome {
	return ProbeOutcome{Kind: OutcomeFailure, Err: err}
}

// Classification is the verdict of a classifier over a single probe outcome.
type Classification bool

const (
	// NoMatch means the probe does not count towards identification.
	NoMatch Classification = false
	// Match means the probed path exists in the sense the fingerprint expects.
	Match Classification = true
)
