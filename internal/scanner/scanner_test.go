package scanner_test

import (
	"cmsscan/internal/scanner"
	"cmsscan/pkg/domain"
	"cmsscan/pkg/serrors"
	"context"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	mockidentify "cmsscan/internal/identify/mock"
	mockfingerprint "cmsscan/pkg/fingerprint/mock"
	mockprobe "cmsscan/pkg/probe/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testEngine struct {
	engine     scanner.Engine
	client     *mockprobe.MockClient
	identifier *mockidentify.MockIdentifier
	matcher    *mockfingerprint.MockVersionMatcher

	mu         sync.Mutex
	failedLine []string
}

func (te *testEngine) FailedLines() []string {
	te.mu.Lock()
	defer te.mu.Unlock()

	return append([]string(nil), te.failedLine...)
}

func newTestEngine(t *testing.T, mutate ...func(*scanner.Options)) *testEngine {
	t.Helper()

	ctrl := gomock.NewController(t)
	te := &testEngine{
		client:     mockprobe.NewMockClient(ctrl),
		identifier: mockidentify.NewMockIdentifier(ctrl),
		matcher:    mockfingerprint.NewMockVersionMatcher(ctrl),
	}

	opts := scanner.Options{
		OnLineError: func(_ context.Context, line string, _ error) {
			te.mu.Lock()
			te.failedLine = append(te.failedLine, line)
			te.mu.Unlock()
		},
	}
	for _, m := range mutate {
		m(&opts)
	}

	engine, err := scanner.New(te.client, te.identifier, te.matcher, opts)
	require.NoError(t, err)
	te.engine = engine

	return te
}

func tallyFor(baseURL, host string) *domain.IdentificationTally {
	return &domain.IdentificationTally{BaseURL: baseURL, HostOverride: host, Requested: 1, Succeeded: 1}
}

func TestEngine_IdentifyLine_Success(t *testing.T) {
	te := newTestEngine(t)

	te.client.EXPECT().Issue(gomock.Any(), "http://example.com/", "").
		Return(domain.Success([]byte(`<meta name="generator" content="Drupal 7">`), 200))
	te.identifier.EXPECT().Identify(gomock.Any(), "http://example.com/", "").
		Return(tallyFor("http://example.com/", ""), nil)

	res := te.engine.IdentifyLine(context.Background(), "http://example.com/")
	require.Equal(t, domain.LineStatusDone, res.Status)
	require.Equal(t, "http://example.com/", res.BaseURL)
	require.False(t, res.Redirected)
	require.Equal(t, "Drupal 7", res.Generator)
	require.NotNil(t, res.Tally)
	require.NoError(t, res.Err)
	require.Empty(t, te.FailedLines())
}

func TestEngine_IdentifyLine_StripsWhitespace(t *testing.T) {
	te := newTestEngine(t)

	te.client.EXPECT().Issue(gomock.Any(), "http://example.com/", "").Return(domain.Success(nil, 200))
	te.identifier.EXPECT().Identify(gomock.Any(), "http://example.com/", "").
		Return(tallyFor("http://example.com/", ""), nil)

	res := te.engine.IdentifyLine(context.Background(), "  http://example.com/  ")
	require.Equal(t, domain.LineStatusDone, res.Status)
}

func TestEngine_IdentifyLine_HostOverride(t *testing.T) {
	te := newTestEngine(t)

	// the override is only a header: the target URL still names the address to connect to
	te.client.EXPECT().Issue(gomock.Any(), "http://192.168.1.1/", "example.com").Return(domain.Success(nil, 200))
	te.identifier.EXPECT().Identify(gomock.Any(), "http://192.168.1.1/", "example.com").
		Return(tallyFor("http://192.168.1.1/", "example.com"), nil)

	res := te.engine.IdentifyLine(context.Background(), "http://192.168.1.1/ example.com")
	require.Equal(t, domain.LineStatusDone, res.Status)
	require.Equal(t, domain.ScanLine{TargetURL: "http://192.168.1.1/", HostOverride: "example.com"}, res.Target)
}

func TestEngine_IdentifyLine_RedirectIsFollowedOnce(t *testing.T) {
	te := newTestEngine(t)

	// only the preliminary probe goes through the client: the redirect target is
	// identified directly, even if it would redirect again
	te.client.EXPECT().Issue(gomock.Any(), "http://urla.com/", "").Return(domain.Redirect("http://urlb.com/?aoeu=1"))
	te.identifier.EXPECT().Identify(gomock.Any(), "http://urlb.com/", "").
		Return(tallyFor("http://urlb.com/", ""), nil)

	res := te.engine.IdentifyLine(context.Background(), "http://urla.com/")
	require.Equal(t, domain.LineStatusDone, res.Status)
	require.True(t, res.Redirected)
	require.Equal(t, "http://urlb.com/", res.BaseURL)
}

func TestEngine_IdentifyLine_RedirectKeepsHostOverride(t *testing.T) {
	te := newTestEngine(t)

	te.client.EXPECT().Issue(gomock.Any(), "http://10.0.0.1/", "example.com").Return(domain.Redirect("/drupal/?q=node"))
	te.identifier.EXPECT().Identify(gomock.Any(), "http://10.0.0.1/drupal/", "example.com").
		Return(tallyFor("http://10.0.0.1/drupal/", "example.com"), nil)

	res := te.engine.IdentifyLine(context.Background(), "http://10.0.0.1/ example.com")
	require.Equal(t, domain.LineStatusDone, res.Status)
}

func TestEngine_IdentifyLine_PreliminaryFailure(t *testing.T) {
	te := newTestEngine(t)

	te.client.EXPECT().Issue(gomock.Any(), "http://down.example/", "").
		Return(domain.Failure(serrors.With(serrors.ErrConnection, "connection refused")))

	res := te.engine.IdentifyLine(context.Background(), "http://down.example/")
	require.Equal(t, domain.LineStatusFailed, res.Status)
	require.ErrorIs(t, res.Err, serrors.ErrConnection)
	require.Nil(t, res.Tally)
	require.Equal(t, []string{"http://down.example/"}, te.FailedLines())
}

func TestEngine_IdentifyLine_TooManyFields(t *testing.T) {
	te := newTestEngine(t)

	res := te.engine.IdentifyLine(context.Background(), "http://a/ b c")
	require.Equal(t, domain.LineStatusFailed, res.Status)
	require.ErrorIs(t, res.Err, serrors.ErrBadRequest)
	require.Equal(t, []string{"http://a/ b c"}, te.FailedLines())
}

func TestEngine_IdentifyLine_IdentifyError(t *testing.T) {
	te := newTestEngine(t)

	te.client.EXPECT().Issue(gomock.Any(), "http://example.com/", "").Return(domain.Success(nil, 200))
	te.identifier.EXPECT().Identify(gomock.Any(), "http://example.com/", "").
		Return(nil, serrors.With(serrors.ErrNotFound, "plugin not found"))

	res := te.engine.IdentifyLine(context.Background(), "http://example.com/")
	require.Equal(t, domain.LineStatusFailed, res.Status)
	require.ErrorIs(t, res.Err, serrors.ErrNotFound)
	require.Len(t, te.FailedLines(), 1)
}

func TestEngine_IdentifyLine_NarrowsMatchedPlugins(t *testing.T) {
	te := newTestEngine(t)

	tally := &domain.IdentificationTally{
		BaseURL: "http://example.com/",
		Probes: []domain.ProbeRecord{
			{Plugin: "drupal", Path: "misc/drupal.js", Match: domain.Match},
			{Plugin: "drupal", Path: "CHANGELOG.txt", Match: domain.Match},
			{Plugin: "wordpress", Path: "wp-login.php", Match: domain.NoMatch},
		},
	}
	te.client.EXPECT().Issue(gomock.Any(), "http://example.com/", "").Return(domain.Success(nil, 200))
	te.identifier.EXPECT().Identify(gomock.Any(), "http://example.com/", "").Return(tally, nil)
	te.matcher.EXPECT().Narrow("drupal", tally).Return([]string{"7.22", "7.23"})

	res := te.engine.IdentifyLine(context.Background(), "http://example.com/")
	require.Equal(t, map[string][]string{"drupal": {"7.22", "7.23"}}, res.Versions)
}

func TestEngine_IdentifyLines(t *testing.T) {
	te := newTestEngine(t)

	lines := []string{
		"http://a.example/",
		"http://down.example/",
		"",
		"http://b.example/ vhost.example",
	}

	te.client.EXPECT().Issue(gomock.Any(), "http://a.example/", "").Return(domain.Success(nil, 200))
	te.client.EXPECT().Issue(gomock.Any(), "http://down.example/", "").
		Return(domain.Failure(serrors.KindOnly(serrors.ErrTimeout)))
	te.client.EXPECT().Issue(gomock.Any(), "", "").
		Return(domain.Failure(serrors.With(serrors.ErrBadRequest, "empty target URL")))
	te.client.EXPECT().Issue(gomock.Any(), "http://b.example/", "vhost.example").Return(domain.Redirect("http://c.example/?x"))
	te.identifier.EXPECT().Identify(gomock.Any(), "http://a.example/", "").Return(tallyFor("http://a.example/", ""), nil)
	te.identifier.EXPECT().Identify(gomock.Any(), "http://c.example/", "vhost.example").
		Return(tallyFor("http://c.example/", "vhost.example"), nil)

	results := te.engine.IdentifyLines(context.Background(), lines)
	require.Len(t, results, len(lines))

	// results come back in input order
	for i, line := range lines {
		require.Equal(t, line, results[i].Line)
	}
	require.Equal(t, domain.LineStatusDone, results[0].Status)
	require.Equal(t, domain.LineStatusFailed, results[1].Status)
	require.Equal(t, domain.LineStatusFailed, results[2].Status)
	require.Equal(t, domain.LineStatusDone, results[3].Status)
	require.Equal(t, "http://c.example/", results[3].BaseURL)

	// ErrorLine runs exactly once per failing line
	require.ElementsMatch(t, []string{"http://down.example/", ""}, te.FailedLines())
}

func TestEngine_IdentifyLines_AllFailing(t *testing.T) {
	te := newTestEngine(t)

	te.client.EXPECT().Issue(gomock.Any(), gomock.Any(), "").Times(3).
		Return(domain.Failure(serrors.KindOnly(serrors.ErrConnection)))

	results := te.engine.IdentifyLines(context.Background(), []string{"http://a/", "http://b/", "http://c/"})
	require.Len(t, results, 3)
	for _, r := range results {
		require.Equal(t, domain.LineStatusFailed, r.Status)
	}
	require.Len(t, te.FailedLines(), 3)
}

func TestEngine_IdentifyLines_Empty(t *testing.T) {
	te := newTestEngine(t)

	require.Empty(t, te.engine.IdentifyLines(context.Background(), nil))
}

func TestEngine_IdentifyLines_ConcurrencyLimit(t *testing.T) {
	te := newTestEngine(t, func(o *scanner.Options) {
		o.MaxConcurrentLines = 2
	})

	var inFlight, peak atomic.Int32
	te.client.EXPECT().Issue(gomock.Any(), gomock.Any(), "").Times(6).DoAndReturn(
		func(context.Context, string, string) domain.ProbeOutcome {
			n := inFlight.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(20 * time.Millisecond)
			inFlight.Add(-1)

			return domain.Failure(serrors.KindOnly(serrors.ErrTimeout))
		},
	)

	results := te.engine.IdentifyLines(context.Background(), []string{"http://1/", "http://2/", "http://3/", "http://4/", "http://5/", "http://6/"})
	require.Len(t, results, 6)
	require.LessOrEqual(t, peak.Load(), int32(2))
}

func TestEngine_ErrorLine(t *testing.T) {
	te := newTestEngine(t)

	require.NotPanics(t, func() {
		te.engine.ErrorLine(context.Background(), "http://x/", serrors.KindOnly(serrors.ErrTimeout))
		te.engine.ErrorLine(context.Background(), "http://y/", nil)
	})
	require.Equal(t, []string{"http://x/", "http://y/"}, te.FailedLines())

	// without a hook ErrorLine only logs
	engine, err := scanner.New(te.client, te.identifier, nil, scanner.Options{})
	require.NoError(t, err)
	require.NotPanics(t, func() {
		engine.ErrorLine(context.Background(), "http://z/", serrors.KindOnly(serrors.ErrConnection))
	})
}

func TestEngine_IdentifyURLFile(t *testing.T) {
	te := newTestEngine(t)

	path := filepath.Join(t.TempDir(), "urls.txt")
	require.NoError(t, os.WriteFile(path, []byte("http://a/\nhttp://b/ host.b\r\nhttp://c/\n"), 0o600))

	for _, target := range []domain.ScanLine{
		{TargetURL: "http://a/"},
		{TargetURL: "http://b/", HostOverride: "host.b"},
		{TargetURL: "http://c/"},
	} {
		te.client.EXPECT().Issue(gomock.Any(), target.TargetURL, target.HostOverride).Return(domain.Success(nil, 200))
		te.identifier.EXPECT().Identify(gomock.Any(), target.TargetURL, target.HostOverride).
			Return(tallyFor(target.TargetURL, target.HostOverride), nil)
	}

	results, err := te.engine.IdentifyURLFile(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, results, 3)
	require.Equal(t, "http://b/ host.b", results[1].Line)
	for _, r := range results {
		require.Equal(t, domain.LineStatusDone, r.Status)
	}
}

func TestEngine_IdentifyURLFile_FileAccessError(t *testing.T) {
	te := newTestEngine(t)

	// no expectations: nothing may be dispatched
	_, err := te.engine.IdentifyURLFile(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, serrors.ErrFileAccess)

	_, err = te.engine.IdentifyURLFile(context.Background(), t.TempDir())
	require.ErrorIs(t, err, serrors.ErrFileAccess)
}
