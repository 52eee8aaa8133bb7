package client

import (
	"net/http"
)

// Client looks up and searches RFC documents. It holds no mutable state and
// is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	header     http.Header
}

func New(funcs ...OptionFunc) *Client {
	opts := NewOptions(funcs...)
	return &Client{
		httpClient: opts.HTTPClient,
		header:     opts.Header,
	}
}
