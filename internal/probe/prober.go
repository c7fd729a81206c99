package probe

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/nao1215/sfac/internal/model"
)

// drainLimit caps how much of a response body is read before closing it,
// so connections can be reused without downloading large pages.
const drainLimit = 64 << 10

// Prober checks a single candidate.
type Prober interface {
	// Probe returns the result for candidate. It must be safe for
	// concurrent use and must not block past its configured timeout.
	Probe(ctx context.Context, candidate string) model.ProbeResult
}

// HTTPProber probes candidates with an HTTP GET.
type HTTPProber struct {
	client  *http.Client
	timeout time.Duration
	scheme  string
	logger  *slog.Logger
}

// Option configures an HTTPProber.
type Option func(*HTTPProber)

// WithTimeout bounds each probe, connection and response included.
// Non-positive values leave the client's own timeout in charge.
func WithTimeout(d time.Duration) Option {
	return func(p *HTTPProber) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// WithScheme sets the URL scheme; the default is "http".
func WithScheme(scheme string) Option {
	return func(p *HTTPProber) {
		if scheme != "" {
			p.scheme = scheme
		}
	}
}

// WithLogger sets the logger for per-probe debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(p *HTTPProber) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewHTTPProber returns a prober that sends requests with client.
// A nil client uses http.DefaultClient.
func NewHTTPProber(client *http.Client, opts ...Option) *HTTPProber {
	if client == nil {
		client = http.DefaultClient
	}
	p := &HTTPProber{
		client: client,
		scheme: "http",
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Probe validates candidate and, if it is well-formed, requests
// <scheme>://candidate once. Invalid candidates cause no network traffic.
func (p *HTTPProber) Probe(ctx context.Context, candidate string) model.ProbeResult {
	if !model.IsValidSubdomain(candidate) {
		p.logger.Debug("skipping invalid candidate", "subdomain", candidate)
		return model.NewFailedResult(candidate, model.OutcomeInvalid)
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.scheme+"://"+candidate, nil)
	if err != nil {
		p.logger.Debug("failed to build request", "subdomain", candidate, "error", err)
		return model.NewFailedResult(candidate, model.OutcomeConnectionError)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		outcome := classify(err)
		p.logger.Debug("probe failed", "subdomain", candidate, "outcome", outcome, "error", err)
		return model.NewFailedResult(candidate, outcome)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, drainLimit)) //nolint:errcheck // status already known

	p.logger.Debug("probe finished", "subdomain", candidate, "status", resp.StatusCode)
	return model.NewOKResult(candidate, resp.StatusCode)
}

// classify maps a transport error to a failure outcome.
func classify(err error) model.Outcome {
	if errors.Is(err, context.DeadlineExceeded) {
		return model.OutcomeTimedOut
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return model.OutcomeTimedOut
	}
	return model.OutcomeConnectionError
}
