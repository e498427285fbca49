// Package httpclient is the outbound HTTP transport shared by the catalog and
// cover art adapters: default headers, client-side rate limiting and optional
// retry with backoff.
package httpclient

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultMaxRetries = 1
	defaultBackoff    = 500 * time.Millisecond
	defaultTimeout    = 10 * time.Second
)

// Client wraps an *http.Client.
type Client struct {
	httpClient  *http.Client
	limiter     *rate.Limiter
	userAgent   string
	maxRetries  int
	baseBackoff time.Duration
	name        string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithUserAgent sets the User-Agent sent on every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithRetries sets the total number of attempts (1 disables retrying) and the
// base of the exponential backoff.
func WithRetries(attempts int, backoff time.Duration) Option {
	return func(c *Client) {
		if attempts > 0 {
			c.maxRetries = attempts
		}
		if backoff > 0 {
			c.baseBackoff = backoff
		}
	}
}

// WithRateLimit caps outgoing requests per second. A non-positive rate
// leaves requests unthrottled.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(c *Client) {
		if perSecond <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// WithName sets the prefix used in log lines and errors.
func WithName(name string) Option {
	return func(c *Client) { c.name = name }
}

// New constructs a Client.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient:  &http.Client{Timeout: defaultTimeout},
		maxRetries:  defaultMaxRetries,
		baseBackoff: defaultBackoff,
		name:        "http client",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
