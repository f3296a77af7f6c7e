// Package httpprobe provides a probe.Client implementation backed by net/http.
package httpprobe

import (
	"cmsscan/internal/config"
	"cmsscan/pkg/domain"
	"cmsscan/pkg/metrics"
	"cmsscan/pkg/probe"
	"cmsscan/pkg/serrors"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"golang.org/x/time/rate"
)

// Options are the process-wide defaults applied to every probe. Redirects are
// never followed and certificates are never validated; neither is configurable.
type Options struct {
	// Timeout bounds a single probe, from dial to the end of the body.
	Timeout time.Duration
	// UserAgent is sent with every probe.
	UserAgent string
	// MaxBodyBytes caps how much of a response body is read. Zero means no cap.
	MaxBodyBytes int64
	// MaxIdleConnsPerHost sizes the keep-alive pool per target.
	MaxIdleConnsPerHost int
	// RateLimit is the maximum number of probes per second; zero disables limiting.
	RateLimit float64
	// RateBurst is the token bucket size used with RateLimit.
	RateBurst int
	// Meter records probe metrics. A nil Meter disables them.
	Meter metric.Meter
	// DialContext replaces the default dialer. It always receives the address
	// derived from the probed URL.
	DialContext func(ctx context.Context, network, addr string) (net.Conn, error)
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config, meter metric.Meter) Options {
	return Options{
		Timeout:             cfg.Request.Timeout,
		UserAgent:           cfg.Request.UserAgent,
		MaxBodyBytes:        cfg.Request.MaxBodyBytes,
		MaxIdleConnsPerHost: cfg.Request.MaxIdleConnsPerHost,
		RateLimit:           cfg.Request.RateLimit,
		RateBurst:           cfg.Request.RateBurst,
		Meter:               meter,
	}
}

// Client issues single GET probes and reports them as domain.ProbeOutcome.
// It is safe for concurrent use.
type Client struct {
	httpClient   *http.Client
	userAgent    string
	maxBodyBytes int64
	limiter      *rate.Limiter

	probes   metric.Int64Counter
	duration metric.Float64Histogram
}

// Ensure Client conforms to the probe.Client interface at compile time.
var _ probe.Client = (*Client)(nil)

// New constructs a Client from opts.
func New(opts Options) (*Client, error) {
	dial := opts.DialContext
	if dial == nil {
		dial = (&net.Dialer{Timeout: opts.Timeout}).DialContext
	}

	transport := &http.Transport{
		DialContext:         dial,
		TLSClientConfig:     &tls.Config{InsecureSkipVerify: true}, //nolint: gosec
		TLSHandshakeTimeout: opts.Timeout,
		MaxIdleConns:        opts.MaxIdleConnsPerHost * 4,
		MaxIdleConnsPerHost: opts.MaxIdleConnsPerHost,
	}

	c := &Client{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   opts.Timeout,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		userAgent:    opts.UserAgent,
		maxBodyBytes: opts.MaxBodyBytes,
	}

	if opts.RateLimit > 0 {
		burst := opts.RateBurst
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
	}

	meter := opts.Meter
	if meter == nil {
		meter = noop.NewMeterProvider().Meter("")
	}

	var err error
	c.probes, err = meter.Int64Counter("cmsscan.probes",
		metric.WithDescription("Number of probes issued, by outcome"))
	if err != nil {
		return nil, fmt.Errorf("could not create probes counter: %w", err)
	}
	c.duration, err = meter.Float64Histogram("cmsscan.probe.duration",
		metric.WithDescription("Probe latency"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create probe duration histogram: %w", err)
	}

	return c, nil
}

// Issue fetches rawURL with a GET request. The connection goes to the host
// and port of rawURL (80 for http and 443 for https unless the URL names a
// port); host only replaces the Host header.
func (c *Client) Issue(ctx context.Context, rawURL, host string) domain.ProbeOutcome {
	start := time.Now()
	outcome := c.issue(ctx, rawURL, host)

	attrs := metric.WithAttributes(attribute.String("outcome", outcome.Kind.String()))
	c.probes.Add(ctx, 1, attrs)
	c.duration.Record(ctx, time.Since(start).Seconds(), attrs)

	return outcome
}

func (c *Client) issue(ctx context.Context, rawURL, host string) domain.ProbeOutcome {
	target, err := ParseTarget(rawURL)
	if err != nil {
		return domain.Failure(err)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return domain.Failure(serrors.Wrap(serrors.ErrTimeout, err, "could not wait for rate limit"))
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return domain.Failure(serrors.Wrap(serrors.ErrBadRequest, err, "could not create request"))
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if host != "" {
		req.Host = host
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Failure(ClassifyError(rawURL, err))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= 300 && resp.StatusCode < 400 {
		if location := resp.Header.Get("Location"); location != "" {
			_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

			return domain.Redirect(location)
		}
	}

	var body io.Reader = resp.Body
	if c.maxBodyBytes > 0 {
		body = io.LimitReader(resp.Body, c.maxBodyBytes)
	}
	b, err := io.ReadAll(body)
	if err != nil {
		return domain.Failure(ClassifyError(rawURL, err))
	}

	return domain.Success(b, resp.StatusCode)
}

// ParseTarget parses rawURL and checks that it is an absolute http or https URL.
func ParseTarget(rawURL string) (*url.URL, error) {
	if rawURL == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "empty target URL")
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "could not parse target URL")
	}

	u.Scheme = strings.ToLower(u.Scheme)
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, serrors.With(serrors.ErrBadRequest, "unsupported scheme %q in %s", u.Scheme, rawURL)
	}
	if u.Hostname() == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "missing host in %s", rawURL)
	}

	return u, nil
}

// ClassifyError maps a transport error onto the scanner's error kinds:
// deadline errors become ErrTimeout, dial/DNS/TLS errors ErrConnection, and
// anything else (malformed or truncated responses) ErrProtocol.
func ClassifyError(rawURL string, err error) error {
	var (
		netErr    net.Error
		opErr     *net.OpError
		dnsErr    *net.DNSError
		recordErr tls.RecordHeaderError
		certErr   *tls.CertificateVerificationError
		kind      serrors.Kind
	)

	switch {
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled),
		errors.As(err, &netErr) && netErr.Timeout():
		kind = serrors.ErrTimeout
	case errors.As(err, &opErr),
		errors.As(err, &dnsErr),
		errors.As(err, &recordErr),
		errors.As(err, &certErr):
		kind = serrors.ErrConnection
	default:
		kind = serrors.ErrProtocol
	}

	return serrors.Wrap(kind, err, "could not probe %s", rawURL)
}
