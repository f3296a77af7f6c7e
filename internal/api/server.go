// Package api configures and exposes the ops HTTP server of the batch worker:
// metrics, health checks and profiling endpoints.
package api

import (
	"cmsscan/internal/config"
	"cmsscan/pkg/controller"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	healthzPath = "/healthz"
	pprofPath   = "/debug/pprof/"
)

// Options holds configuration for the HTTP server.
// It is typically created from a config.Config via NewOptions.
type Options struct {
	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	// CPU profiles are bounded by it.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		MetricsPath:       cfg.HTTP.MetricsPath,
	}
}

// Deps are the collaborators exposed by the server.
type Deps struct {
	// Gatherer is scraped at MetricsPath. Defaults to prometheus.DefaultGatherer,
	// where metrics.NewMeterProvider registers the otel exporter.
	Gatherer prometheus.Gatherer
	// Checks are run by the health endpoint.
	Checks map[string]controller.Check
}

// NewHandler builds the routes of the ops server:
// - Prometheus metrics endpoint (MetricsPath)
// - health checks (/healthz)
// - pprof endpoints for profiling
// wrapped with the logging middleware.
func NewHandler(deps Deps, opts Options) http.Handler {
	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	mux := http.NewServeMux()
	mux.Handle(opts.MetricsPath, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	mux.Handle(healthzPath, controller.Healthz(deps.Checks, opts.ReadTimeout))
	mux.Handle(pprofPath, controller.Pprof(pprofPath))

	return controller.WithLogger(mux, opts.MetricsPath, healthzPath)
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
func NewServer(deps Deps, opts Options) *http.Server {
	return &http.Server{
		Addr:              opts.Addr,
		Handler:           NewHandler(deps, opts),
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
	}
}
