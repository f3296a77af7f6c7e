// Package identify implements the probe scheduler: for one base URL it fans
// out a probe per catalog path and joins on all of them before reporting.
package identify

import (
	"cmsscan/internal/config"
	"cmsscan/pkg/domain"
	"cmsscan/pkg/fingerprint"
	"cmsscan/pkg/logger"
	"cmsscan/pkg/probe"
	"context"
	"crypto/md5" //nolint: gosec
	"encoding/hex"
	"fmt"
	"slices"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// TracerName is the instrumentation scope of identification spans.
const TracerName = "cmsscan/identify"

// Options configure a scheduler.
type Options struct {
	// Plugins are the active plugins, probed in this order.
	Plugins []string
	// Classifier decides which outcomes count as a match. Defaults to
	// fingerprint.StatusClassifier.
	Classifier fingerprint.Classifier
	// Tracer defaults to the global tracer provider.
	Tracer trace.Tracer
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Plugins: slices.Clone(cfg.Scan.Plugins),
	}
}

type scheduler struct {
	plugins    []string
	catalog    fingerprint.Catalog
	client     probe.Client
	classifier fingerprint.Classifier
	tracer     trace.Tracer
}

type entry struct {
	plugin string
	path   string
}

// Identify resolves the catalog of every active plugin, then issues one
// concurrent probe per entry and waits for all of them. Each goroutine only
// writes its own slot of the probe slice.
func (s *scheduler) Identify(ctx context.Context, baseURL, host string) (*domain.IdentificationTally, error) {
	ctx, span := s.tracer.Start(ctx, "identify", trace.WithAttributes(
		attribute.String("url", baseURL),
		attribute.String("host", host),
	))
	defer span.End()

	var entries []entry
	for _, plugin := range s.plugins {
		paths, err := s.catalog.RelativePaths(ctx, plugin)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "catalog")

			return nil, fmt.Errorf("could not get catalog of plugin %s: %w", plugin, err)
		}
		for _, p := range paths {
			entries = append(entries, entry{plugin: plugin, path: p})
		}
	}

	tally := &domain.IdentificationTally{
		BaseURL:      baseURL,
		HostOverride: host,
		Requested:    len(entries),
		Probes:       make([]domain.ProbeRecord, len(entries)),
	}

	var wg sync.WaitGroup
	for i, e := range entries {
		wg.Go(func() {
			fullURL := baseURL + e.path
			outcome := s.client.Issue(ctx, fullURL, host)
			tally.Probes[i] = s.record(e, fullURL, outcome)
		})
	}
	wg.Wait()

	for _, rec := range tally.Probes {
		if rec.Kind == domain.OutcomeFailure {
			tally.Failed++
		} else {
			tally.Succeeded++
		}
	}

	span.SetAttributes(
		attribute.Int("probes.requested", tally.Requested),
		attribute.Int("probes.succeeded", tally.Succeeded),
		attribute.Int("probes.failed", tally.Failed),
	)
	logger.Debug(ctx, "identification finished",
		zap.Int("requested", tally.Requested),
		zap.Int("succeeded", tally.Succeeded),
		zap.Int("failed", tally.Failed),
		zap.Strings("matched", tally.MatchedPaths("")))

	return tally, nil
}

func (s *scheduler) record(e entry, fullURL string, outcome domain.ProbeOutcome) domain.ProbeRecord {
	rec := domain.ProbeRecord{
		Plugin: e.plugin,
		Path:   e.path,
		URL:    fullURL,
		Kind:   outcome.Kind,
		Match:  s.classifier(outcome),
	}

	switch outcome.Kind {
	case domain.OutcomeSuccess:
		sum := md5.Sum(outcome.Body) //nolint: gosec
		rec.StatusCode = outcome.StatusCode
		rec.BodyMD5 = hex.EncodeToString(sum[:])
	case domain.OutcomeRedirect:
		// the location is not kept; probes never follow redirects
	case domain.OutcomeFailure:
		if outcome.Err != nil {
			rec.Error = outcome.Err.Error()
		}
	}

	return rec
}

// New creates an Identifier that probes through client the catalog paths
// supplied by catalog.
func New(catalog fingerprint.Catalog, client probe.Client, options Options) Identifier {
	s := &scheduler{
		plugins:    slices.Clone(options.Plugins),
		catalog:    catalog,
		client:     client,
		classifier: options.Classifier,
		tracer:     options.Tracer,
	}
	if s.classifier == nil {
		s.classifier = fingerprint.StatusClassifier
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer(TracerName)
	}

	return s
}
