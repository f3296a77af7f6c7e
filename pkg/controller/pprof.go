package controller

import (
	"net/http"
	"net/http/pprof"
	"strings"
)

// Pprof returns a handler serving the net/http/pprof endpoints under prefix,
// e.g. "/debug/pprof/". Named profiles (heap, goroutine, ...) are served by the index.
func Pprof(prefix string) http.Handler {
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	mux := http.NewServeMux()
	mux.HandleFunc(prefix+"cmdline", pprof.Cmdline)
	mux.HandleFunc(prefix+"profile", pprof.Profile)
	mux.HandleFunc(prefix+"symbol", pprof.Symbol)
	mux.HandleFunc(prefix+"trace", pprof.Trace)
	mux.HandleFunc(prefix, func(w http.ResponseWriter, r *http.Request) {
		// pprof.Index expects the /debug/pprof/ prefix
		r.URL.Path = "/debug/pprof/" + strings.TrimPrefix(r.URL.Path, prefix)
		pprof.Index(w, r)
	})

	return mux
}
