// Package client wraps the upstream posts API: one method per remote
// operation, each performing exactly one HTTP round trip.
//
// The client keeps no state between calls. It does not cache, retry or
// batch; callers decide how to surface a failure.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const maxBodyBytes = 10 << 20

type options struct {
	httpClient *http.Client
	timeout    time.Duration
	registerer prometheus.Registerer
}

// Option configures a Client.
type Option func(*options)

// WithHTTPClient replaces the default traced HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) { o.httpClient = hc }
}

// WithTimeout bounds every call. Ignored when WithHTTPClient is given.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithMetrics registers upstream call metrics on reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *options) { o.registerer = reg }
}

// Client talks to a posts API rooted at a base URL.
// It is safe for concurrent use by multiple goroutines.
type Client struct {
	baseURL string
	hc      *http.Client
	metrics *metrics
}

// New constructs a Client for baseURL, e.g. https://jsonplaceholder.typicode.com.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrBaseURL, baseURL)
	}

	o := options{timeout: 10 * time.Second}
	for _, opt := range opts {
		opt(&o)
	}

	hc := o.httpClient
	if hc == nil {
		hc = &http.Client{
			Timeout:   o.timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      hc,
	}
	if o.registerer != nil {
		m, err := newMetrics(o.registerer)
		if err != nil {
			return nil, fmt.Errorf("register client metrics: %w", err)
		}
		c.metrics = m
	}
	return c, nil
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// do sends one request and returns the status code and the raw body.
// Only transport-level failures are returned as errors.
func (c *Client) do(ctx context.Context, method, path string, in any) (int, []byte, error) {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return 0, nil, err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json; charset=UTF-8")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, raw, nil
}

// statusError maps a non-2xx status to a sentinel.
func statusError(status int) error {
	if status == http.StatusNotFound {
		return ErrNotFound
	}
	return fmt.Errorf("%w %d", ErrUnexpectedStatus, status)
}

func ok(status int) bool { return status >= 200 && status < 300 }
