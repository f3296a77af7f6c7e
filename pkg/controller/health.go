package controller

import (
	"cmsscan/pkg/logger"
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// Check reports whether a dependency is usable.
type Check func(ctx context.Context) error

// Healthz returns a handler that runs every check with timeout and answers
// 200 when all pass, 503 otherwise. The body lists each check by name:
//
//	{"status":"ok","checks":{"postgres":"ok"}}
func Healthz(checks map[string]Check, timeout time.Duration) http.Handler {
	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		healthy := true
		results := make([]string, len(names))
		for i, name := range names {
			results[i] = "ok"
			if err := checks[name](ctx); err != nil {
				healthy = false
				results[i] = err.Error()
				logger.Warn(ctx, "health check failed", zap.String("check", name), zap.Error(err))
			}
		}

		var e jx.Encoder
		e.Obj(func(e *jx.Encoder) {
			e.Field("status", func(e *jx.Encoder) {
				if healthy {
					e.Str("ok")
				} else {
					e.Str("unavailable")
				}
			})
			e.Field("checks", func(e *jx.Encoder) {
				e.Obj(func(e *jx.Encoder) {
					for i, name := range names {
						e.Field(name, func(e *jx.Encoder) { e.Str(results[i]) })
					}
				})
			})
		})

		w.Header().Set("Content-Type", "application/json")
		if !healthy {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		_, _ = w.Write(e.Bytes())
	})
}
