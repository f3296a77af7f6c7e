package scanner

import (
	"cmsscan/pkg/domain"
	"cmsscan/pkg/serrors"
	"net/url"
	"strings"
)

// ParseLine splits an input line into a target URL and an optional Host
// header override, separated by whitespace. Surrounding whitespace is ignored.
// An empty line yields an empty target, which fails at the preliminary probe.
func ParseLine(line string) (domain.ScanLine, error) {
	fields := strings.Fields(line)

	switch len(fields) {
	case 0:
		return domain.ScanLine{}, nil
	case 1:
		return domain.ScanLine{TargetURL: fields[0]}, nil
	case 2: //nolint: mnd
		return domain.ScanLine{TargetURL: fields[0], HostOverride: fields[1]}, nil
	default:
		return domain.ScanLine{}, serrors.With(serrors.ErrBadRequest,
			"expected \"<url> [host]\", got %d fields", len(fields))
	}
}

// StripQuery resolves location against the URL that produced the redirect and
// drops its query string and fragment. "http://urlb.com/?aoeu=1" becomes
// "http://urlb.com/".
func StripQuery(probedURL, location string) (string, error) {
	base, err := url.Parse(probedURL)
	if err != nil {
		return "", serrors.Wrap(serrors.ErrBadRequest, err, "could not parse probed URL")
	}

	loc, err := url.Parse(location)
	if err != nil {
		return "", serrors.Wrap(serrors.ErrProtocol, err, "could not parse redirect location %q", location)
	}

	u := base.ResolveReference(loc)
	u.RawQuery = ""
	u.ForceQuery = false
	u.Fragment = ""
	u.RawFragment = ""

	return u.String(), nil
}

// SplitLines splits file content into lines. Line endings (\n or \r\n) are
// removed and a trailing newline does not produce an extra empty line.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}

	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}

	return lines
}
