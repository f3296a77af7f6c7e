package scanner_test

import (
	"cmsscan/internal/identify"
	"cmsscan/internal/scanner"
	"cmsscan/pkg/domain"
	"cmsscan/pkg/fingerprint"
	"cmsscan/pkg/probe/httpprobe"
	"context"
	"crypto/md5" //nolint: gosec
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestEngine_EndToEnd runs the real probe client and scheduler against a local
// site that redirects its root into a drupal install.
func TestEngine_EndToEnd(t *testing.T) {
	const drupalJS = "var Drupal = Drupal || {};"

	var hits atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Path == "/" {
			http.Redirect(w, r, "/site/?from=root", http.StatusFound)

			return
		}
		http.NotFound(w, r)
	})
	mux.HandleFunc("/site/misc/drupal.js", func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = fmt.Fprint(w, drupalJS)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	sum := md5.Sum([]byte(drupalJS)) //nolint: gosec
	db, err := fingerprint.Parse(fmt.Appendf(nil, `
plugins:
  drupal:
    paths: [misc/drupal.js, CHANGELOG.txt]
    versions:
      "7.22": {misc/drupal.js: "%s"}
      "7.23": {misc/drupal.js: ffffffffffffffffffffffffffffffff}
`, hex.EncodeToString(sum[:])))
	require.NoError(t, err)

	client, err := httpprobe.New(httpprobe.Options{Timeout: 2 * time.Second, MaxIdleConnsPerHost: 4})
	require.NoError(t, err)

	engine, err := scanner.New(client,
		identify.New(db, client, identify.Options{Plugins: db.Names()}),
		db,
		scanner.Options{})
	require.NoError(t, err)

	results := engine.IdentifyLines(context.Background(), []string{srv.URL + "/", "http://127.0.0.1:1/"})
	require.Len(t, results, 2)

	ok := results[0]
	require.Equal(t, domain.LineStatusDone, ok.Status, "unexpected failure: %v", ok.Err)
	require.True(t, ok.Redirected)
	require.Equal(t, srv.URL+"/site/", ok.BaseURL)
	require.Equal(t, 2, ok.Tally.Requested)
	require.Equal(t, 2, ok.Tally.Succeeded)
	require.Equal(t, []string{"misc/drupal.js"}, ok.Tally.MatchedPaths("drupal"))
	require.Equal(t, map[string][]string{"drupal": {"7.22"}}, ok.Versions)

	// preliminary probe + one probe per catalog entry
	require.Equal(t, int32(3), hits.Load())

	require.Equal(t, domain.LineStatusFailed, results[1].Status)
	require.Error(t, results[1].Err)
}
