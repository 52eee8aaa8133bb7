package client

import (
	"net/http"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// RateLimitTransport delays outgoing requests to respect its limiter. It
// never replays a request.
type RateLimitTransport struct {
	Base    http.RoundTripper
	Limiter *rate.Limiter
}

func (t *RateLimitTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	transport := t.Base
	if transport == nil {
		transport = http.DefaultTransport
	}

	if t.Limiter != nil {
		if err := t.Limiter.Wait(req.Context()); err != nil {
			return nil, errors.WithStack(err)
		}
	}

	return transport.RoundTrip(req)
}

var _ http.RoundTripper = &RateLimitTransport{}
