package scanner

import (
	"cmsscan/internal/config"
	"cmsscan/internal/identify"
	"cmsscan/pkg/domain"
	"cmsscan/pkg/fingerprint"
	"cmsscan/pkg/logger"
	"cmsscan/pkg/probe"
	"cmsscan/pkg/serrors"
	"context"
	"fmt"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// LineErrorHook is called for every line that could not be identified.
type LineErrorHook func(ctx context.Context, line string, err error)

// Options configure how lines are processed.
type Options struct {
	// MaxConcurrentLines caps how many lines are processed at once. Zero means
	// every line of a batch is dispatched immediately.
	MaxConcurrentLines int
	// OnLineError is an optional hook invoked by ErrorLine.
	OnLineError LineErrorHook
	// Meter records line metrics. A nil Meter disables them.
	Meter metric.Meter
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config, meter metric.Meter) Options {
	return Options{
		MaxConcurrentLines: cfg.Scan.MaxConcurrentLines,
		Meter:              meter,
	}
}

// engine is the concrete implementation of the Engine interface. It drives the
// preliminary probe of each line and hands the resulting base URL to the
// identifier.
type engine struct {
	options Options
	// client issues the preliminary probe of every line.
	client probe.Client
	// identifier fans out the catalog probes for a base URL.
	identifier identify.Identifier
	// matcher narrows versions from a tally; optional.
	matcher fingerprint.VersionMatcher

	lines metric.Int64Counter
}

// IdentifyLine implements the per-line state machine:
// Requesting -> (Redirected -> Identifying | Identifying) -> Done, or Failed.
func (e *engine) IdentifyLine(ctx context.Context, line string) domain.LineResult {
	result := domain.LineResult{Line: line, Status: domain.LineStatusFailed}

	target, err := ParseLine(line)
	if err != nil {
		return e.fail(ctx, result, err)
	}
	result.Target = target
	ctx = logger.WithTarget(ctx, target.TargetURL, target.HostOverride)

	baseURL := target.TargetURL
	outcome := e.client.Issue(ctx, target.TargetURL, target.HostOverride)
	switch outcome.Kind {
	case domain.OutcomeSuccess:
		result.Generator = Generator(outcome.Body)
	case domain.OutcomeRedirect:
		// exactly one hop: the redirected URL is identified without being probed first
		baseURL, err = StripQuery(target.TargetURL, outcome.Location)
		if err != nil {
			return e.fail(ctx, result, err)
		}
		result.Redirected = true
		logger.Debug(ctx, "following redirect", zap.String("location", outcome.Location), zap.String("baseURL", baseURL))
	case domain.OutcomeFailure:
		return e.fail(ctx, result, outcome.Err)
	default:
		return e.fail(ctx, result, serrors.With(serrors.ErrInternal, "unknown probe outcome %s", outcome.Kind))
	}
	result.BaseURL = baseURL

	tally, err := e.identifier.Identify(ctx, baseURL, target.HostOverride)
	if err != nil {
		return e.fail(ctx, result, fmt.Errorf("could not identify %s: %w", baseURL, err))
	}
	result.Tally = tally
	result.Versions = e.narrow(tally)
	result.Status = domain.LineStatusDone
	e.count(ctx, result.Status)

	logger.Info(ctx, "line identified",
		zap.String("baseURL", baseURL),
		zap.Bool("redirected", result.Redirected),
		zap.Int("matched", len(tally.MatchedPaths(""))),
		zap.Int("failedProbes", tally.Failed))

	return result
}

func (e *engine) fail(ctx context.Context, result domain.LineResult, err error) domain.LineResult {
	e.ErrorLine(ctx, result.Line, err)
	result.Status = domain.LineStatusFailed
	result.Err = err
	e.count(ctx, result.Status)

	return result
}

func (e *engine) count(ctx context.Context, status domain.LineStatus) {
	e.lines.Add(ctx, 1, metric.WithAttributes(attribute.String("status", string(status))))
}

// narrow asks the matcher for the candidate versions of every plugin that has
// at least one matched path.
func (e *engine) narrow(tally *domain.IdentificationTally) map[string][]string {
	if e.matcher == nil {
		return nil
	}

	var versions map[string][]string
	for _, rec := range tally.Probes {
		if rec.Match != domain.Match {
			continue
		}
		if _, done := versions[rec.Plugin]; done {
			continue
		}
		if versions == nil {
			versions = map[string][]string{}
		}
		versions[rec.Plugin] = e.matcher.Narrow(rec.Plugin, tally)
	}

	return versions
}

// IdentifyLines dispatches IdentifyLine for every line in input order and
// waits for all of them. Each goroutine writes only its own result slot.
func (e *engine) IdentifyLines(ctx context.Context, lines []string) []domain.LineResult {
	results := make([]domain.LineResult, len(lines))

	var g errgroup.Group
	if e.options.MaxConcurrentLines > 0 {
		g.SetLimit(e.options.MaxConcurrentLines)
	}
	for i, line := range lines {
		g.Go(func() error {
			results[i] = e.IdentifyLine(ctx, line)

			return nil
		})
	}
	_ = g.Wait()

	var failed int
	for _, r := range results {
		if r.Status == domain.LineStatusFailed {
			failed++
		}
	}
	logger.Info(ctx, "batch finished", zap.Int("lines", len(lines)), zap.Int("failed", failed))

	return results
}

// ErrorLine logs the failure of a line together with its error kind and passes
// it to the OnLineError hook, if any.
func (e *engine) ErrorLine(ctx context.Context, line string, err error) {
	kind := "UNKNOWN"
	if k := serrors.KindOf(err); k != nil {
		kind = k.Error()
	}

	logger.Warn(ctx, "could not identify line",
		zap.String("line", line),
		zap.String("kind", kind),
		zap.Error(err))

	if e.options.OnLineError != nil {
		e.options.OnLineError(ctx, line, err)
	}
}

// IdentifyURLFile reads the whole file, then processes its lines as one batch.
func (e *engine) IdentifyURLFile(ctx context.Context, path string) ([]domain.LineResult, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrFileAccess, err, "could not read %s", path)
	}

	lines := SplitLines(string(content))
	logger.Info(ctx, "processing file", zap.String("path", path), zap.Int("lines", len(lines)))

	return e.IdentifyLines(ctx, lines), nil
}

// New creates a new Engine. matcher may be nil, in which case no version
// narrowing is done.
func New(client probe.Client,
	identifier identify.Identifier,
	matcher fingerprint.VersionMatcher,
	options Options) (Engine, error) {
	meter := options.Meter
	if meter == nil {
		meter = noop.NewMeterProvider().Meter("")
	}

	lines, err := meter.Int64Counter("cmsscan.lines",
		metric.WithDescription("Number of processed input lines, by final status"))
	if err != nil {
		return nil, fmt.Errorf("could not create lines counter: %w", err)
	}

	return &engine{
		options:    options,
		client:     client,
		identifier: identifier,
		matcher:    matcher,
		lines:      lines,
	}, nil
}
