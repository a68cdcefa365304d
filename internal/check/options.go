package check

import (
	"net/http"
	"time"
)

const (
	// DefaultScheme is prepended to registry hosts when building manifest URLs.
	DefaultScheme = "https://"

	// DefaultTimeout bounds every token and manifest request.
	DefaultTimeout = 10 * time.Second
)

// Option is a functional option for a Checker.
type Option func(*options)

// options carries options for availability checks.
type options struct {
	client  *http.Client
	scheme  string
	timeout time.Duration
}

// makeOptions processes option functions and returns the resulting options.
func makeOptions(opts ...Option) *options {
	o := &options{
		client:  http.DefaultClient,
		scheme:  DefaultScheme,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithHTTPClient sets the client used for token and manifest requests.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		if client != nil {
			o.client = client
		}
	}
}

// WithScheme sets the URL scheme, including the "://" separator, used to
// reach registries (e.g. "http://" for tests against a local registry).
func WithScheme(scheme string) Option {
	return func(o *options) {
		o.scheme = scheme
	}
}

// WithTimeout bounds each individual request. A zero or negative timeout
// disables the bound.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}
