// Package fetch retrieves contribution-graph SVGs from the remote API.
//
// A fetch is a bounded retry loop over single HTTP attempts. Every failed
// attempt (transport error, non-2xx status, blank body) is treated the same:
// wait a fixed delay and try again, up to the configured attempt count.
package fetch

import (
	"net"
	"net/http"
	"time"

	"github.com/Beebek-Sharma/pacsync/internal/clock"
	"github.com/Beebek-Sharma/pacsync/internal/config"
	"github.com/Beebek-Sharma/pacsync/internal/constants"
)

// HTTPClient is the subset of *http.Client used by Client.
// Tests substitute it to simulate transport failures.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches SVG documents with retry.
// A Client is used sequentially; it holds no per-request state.
type Client struct {
	endpoint  string
	timeout   time.Duration
	attempts  int
	delay     time.Duration
	userAgent string
	http      HTTPClient
	clock     clock.Clock
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc HTTPClient) Option {
	return func(c *Client) { c.http = hc }
}

// WithClock replaces the clock used for retry delays.
func WithClock(clk clock.Clock) Option {
	return func(c *Client) { c.clock = clk }
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// New builds a Client from the endpoint, timeout and retry settings of cfg.
func New(cfg *config.Config, opts ...Option) *Client {
	c := &Client{
		endpoint:  cfg.Endpoint,
		timeout:   cfg.Timeout,
		attempts:  cfg.Retry.Attempts,
		delay:     cfg.Retry.Delay,
		userAgent: constants.AppName,
		clock:     clock.RealClock{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = newHTTPClient(c.timeout)
	}
	if c.attempts < 1 {
		c.attempts = 1
	}
	return c
}

// Attempts returns the total number of attempts per fetch.
func (c *Client) Attempts() int {
	return c.attempts
}

// newHTTPClient builds an *http.Client whose dial and header timeouts fit
// inside the per-attempt timeout.
func newHTTPClient(timeout time.Duration) *http.Client {
	dialer := &net.Dialer{
		Timeout:   min(5*time.Second, timeout),
		KeepAlive: 30 * time.Second,
	}

	tr := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          4,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   min(5*time.Second, timeout),
		ResponseHeaderTimeout: timeout,
		ExpectContinueTimeout: time.Second,
	}

	return &http.Client{
		Transport: tr,
		Timeout:   timeout,
	}
}
