package client

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const DefaultTimeout = 10 * time.Second

type Options struct {
	HTTPClient *http.Client
	Header     http.Header
}

type OptionFunc func(opts *Options)

func WithHTTPClient(httpClient *http.Client) OptionFunc {
	return func(opts *Options) {
		opts.HTTPClient = httpClient
	}
}

// WithHeader sets an additional header sent with every request. Default
// headers can be overridden this way.
func WithHeader(key, value string) OptionFunc {
	return func(opts *Options) {
		opts.Header.Set(key, value)
	}
}

// NewHTTPClient returns an HTTP client with the given timeout whose
// requests are throttled to one every interval (with burst). A zero
// interval disables throttling.
func NewHTTPClient(timeout time.Duration, interval time.Duration, burst int) *http.Client {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}

	if burst < 1 {
		burst = 1
	}

	return &http.Client{
		Timeout: timeout,
		Transport: &RateLimitTransport{
			Base:    http.DefaultTransport,
			Limiter: rate.NewLimiter(limit, burst),
		},
	}
}

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		HTTPClient: NewHTTPClient(DefaultTimeout, 0, 1),
		Header:     DefaultHeaders(),
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}
