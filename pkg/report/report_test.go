package report_test

import (
	"bytes"
	"cmsscan/pkg/domain"
	"cmsscan/pkg/report"
	"cmsscan/pkg/serrors"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriter_WriteAll(t *testing.T) {
	results := []domain.LineResult{
		{
			Line:       "http://192.168.1.1/ example.com",
			Target:     domain.ScanLine{TargetURL: "http://192.168.1.1/", HostOverride: "example.com"},
			Status:     domain.LineStatusDone,
			BaseURL:    "http://192.168.1.1/drupal/",
			Redirected: true,
			Generator:  "Drupal 7",
			Tally: &domain.IdentificationTally{
				Requested: 3,
				Succeeded: 2,
				Failed:    1,
				Probes: []domain.ProbeRecord{
					{Plugin: "drupal", Path: "misc/drupal.js", Match: domain.Match},
					{Plugin: "drupal", Path: "CHANGELOG.txt", Match: domain.NoMatch},
					{Plugin: "drupal", Path: "core/misc/drupal.js", Match: domain.Match},
				},
			},
			Versions: map[string][]string{"drupal": {"7.22", "7.23"}},
		},
		{
			Line:   "http://down.example/",
			Target: domain.ScanLine{TargetURL: "http://down.example/"},
			Status: domain.LineStatusFailed,
			Err:    serrors.With(serrors.ErrTimeout, "could not probe http://down.example/"),
		},
		{
			Line:   "",
			Status: domain.LineStatusFailed,
			Err:    errors.New("boom"),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, report.NewWriter(&buf).WriteAll(results))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)

	require.JSONEq(t, `{
		"line": "http://192.168.1.1/ example.com",
		"url": "http://192.168.1.1/",
		"host": "example.com",
		"status": "DONE",
		"baseUrl": "http://192.168.1.1/drupal/",
		"redirected": true,
		"generator": "Drupal 7",
		"requested": 3,
		"succeeded": 2,
		"failed": 1,
		"matches": {"drupal": ["misc/drupal.js", "core/misc/drupal.js"]},
		"versions": {"drupal": ["7.22", "7.23"]}
	}`, lines[0])
	require.JSONEq(t, `{
		"line": "http://down.example/",
		"url": "http://down.example/",
		"status": "FAILED",
		"error": "could not probe http://down.example/",
		"errorKind": "TIMEOUT"
	}`, lines[1])
	require.JSONEq(t, `{"line": "", "status": "FAILED", "error": "boom", "errorKind": "INTERNAL"}`, lines[2])
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriter_WriteError(t *testing.T) {
	err := report.NewWriter(failingWriter{}).WriteAll([]domain.LineResult{{Line: "x"}})
	require.ErrorContains(t, err, "disk full")
	require.ErrorContains(t, err, "line 1")
}
