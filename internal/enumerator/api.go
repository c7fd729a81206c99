package enumerator

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

// defaultAPITimeout bounds one request to an HTTP API source.
const defaultAPITimeout = 60 * time.Second

// APIOption configures an HTTP API source.
type APIOption func(*apiSource)

// WithBaseURL overrides the API endpoint.
func WithBaseURL(u string) APIOption {
	return func(a *apiSource) {
		if u != "" {
			a.baseURL = u
		}
	}
}

// WithRate limits requests per second. Non-positive values disable pacing.
func WithRate(perSecond float64) APIOption {
	return func(a *apiSource) {
		if perSecond > 0 {
			a.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
		} else {
			a.limiter = rate.NewLimiter(rate.Inf, 1)
		}
	}
}

// WithUserAgent sets the User-Agent sent to the API.
func WithUserAgent(ua string) APIOption {
	return func(a *apiSource) {
		a.userAgent = ua
	}
}

// WithAPITimeout bounds each API request.
func WithAPITimeout(d time.Duration) APIOption {
	return func(a *apiSource) {
		if d > 0 {
			a.timeout = d
		}
	}
}

// apiSource holds what the HTTP API sources share: a resty client over
// the caller's transport and a request pacer.
type apiSource struct {
	baseURL   string
	userAgent string
	timeout   time.Duration
	limiter   *rate.Limiter
	client    *resty.Client
}

func newAPISource(httpClient *http.Client, baseURL string, opts []APIOption) apiSource {
	a := apiSource{
		baseURL: baseURL,
		timeout: defaultAPITimeout,
		limiter: rate.NewLimiter(rate.Limit(1), 1),
	}
	for _, opt := range opts {
		opt(&a)
	}

	// resty mutates the client it wraps, so work on a copy.
	hc := &http.Client{}
	if httpClient != nil {
		copied := *httpClient
		hc = &copied
	}
	a.client = resty.NewWithClient(hc).
		SetBaseURL(a.baseURL).
		SetTimeout(a.timeout).
		SetRetryCount(2).
		SetRetryWaitTime(2 * time.Second).
		SetRetryMaxWaitTime(10 * time.Second)
	if a.userAgent != "" {
		a.client.SetHeader("User-Agent", a.userAgent)
	}
	return a
}
