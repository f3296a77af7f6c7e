// Package tracing installs an OpenTelemetry tracer provider whose finished
// spans are written to the structured log.
package tracing

import (
	"cmsscan/internal/config"
	"context"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

// Options configure the tracer provider.
type Options struct {
	// SampleRatio is the fraction of root spans kept, between 0 and 1.
	SampleRatio float64
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{SampleRatio: cfg.Tracing.SampleRatio}
}

// NewTracerProvider returns a provider that batches sampled spans to a
// LogExporter writing to l. Callers install it with otel.SetTracerProvider and
// must Shutdown it to flush the last batch.
func NewTracerProvider(l *zap.Logger, opts Options) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(NewLogExporter(l)),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(opts.SampleRatio))),
	)
}

// LogExporter is a sdktrace.SpanExporter that logs one entry per span.
type LogExporter struct {
	logger *zap.Logger
}

var _ sdktrace.SpanExporter = (*LogExporter)(nil)

// NewLogExporter returns an exporter writing to l.
func NewLogExporter(l *zap.Logger) *LogExporter {
	return &LogExporter{logger: l}
}

// ExportSpans logs spans at info level, or error level for failed spans.
func (e *LogExporter) ExportSpans(_ context.Context, spans []sdktrace.ReadOnlySpan) error {
	for _, s := range spans {
		fields := make([]zap.Field, 0, len(s.Attributes())+5)
		fields = append(fields,
			zap.String("trace_id", s.SpanContext().TraceID().String()),
			zap.String("span_id", s.SpanContext().SpanID().String()),
			zap.Duration("duration", s.EndTime().Sub(s.StartTime())),
		)
		if p := s.Parent(); p.IsValid() {
			fields = append(fields, zap.String("parent_span_id", p.SpanID().String()))
		}
		for _, kv := range s.Attributes() {
			fields = append(fields, zap.Any(string(kv.Key), kv.Value.AsInterface()))
		}

		log := e.logger.Info
		if st := s.Status(); st.Code == codes.Error {
			fields = append(fields, zap.String("status", st.Description))
			log = e.logger.Error
		}
		log("span "+s.Name(), fields...)
	}

	return nil
}

// Shutdown is a no-op; the logger is owned by the caller.
func (e *LogExporter) Shutdown(context.Context) error {
	return nil
}
