// Package controller contains HTTP middlewares and helper handlers used by the ops server.
//
// Provided middlewares:
//   - WithLogger: Attaches a request-scoped logger and request ID to the context and logs access info.
//
// Provided helpers:
//   - Healthz: Runs named dependency checks and reports them as JSON.
//   - Pprof: Returns a handler exposing net/http/pprof under a path prefix.
package controller
