package client

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/rfc-lookup/internal/metrics"
	"github.com/pkg/errors"
	"github.com/rs/xid"
)

// Fetch issues a single GET request to rawURL, with params encoded as its
// query string when not nil, and returns the response body.
//
// Only http and https URLs are requested: any other scheme is rejected with
// ErrBlockedScheme before reaching the transport. Transport failures are
// logged and reported as ErrNetworkUnavailable.
func (c *Client) Fetch(ctx context.Context, rawURL string, params url.Values) ([]byte, error) {
	if rawURL == "" {
		metrics.FetchRequests.WithLabelValues(metrics.OutcomeRejected).Inc()
		return nil, errors.Wrap(ErrInvalidInput, "url cannot be empty")
	}

	fullURL := rawURL
	if params != nil {
		fullURL = rawURL + "?" + params.Encode()
	}

	u, err := checkURL(fullURL)
	if err != nil {
		metrics.FetchRequests.WithLabelValues(metrics.OutcomeRejected).Inc()
		return nil, errors.WithStack(err)
	}

	ctx = slogx.WithAttrs(ctx, slog.String("requestID", xid.New().String()))

	slog.DebugContext(ctx, "new client request", slog.String("host", u.Host), slog.String("path", u.Path))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		metrics.FetchRequests.WithLabelValues(metrics.OutcomeRejected).Inc()
		return nil, errors.Wrap(ErrInvalidInput, err.Error())
	}

	for k, v := range c.header {
		req.Header[k] = v
	}

	req.Close = true

	res, err := c.httpClient.Do(req)
	if err != nil {
		slog.WarnContext(ctx, "could not execute request", slog.String("url", u.String()), slogx.Error(err))
		metrics.FetchRequests.WithLabelValues(metrics.OutcomeNetworkError).Inc()
		return nil, errors.Wrapf(ErrNetworkUnavailable, "could not fetch '%s': %s", u.String(), err)
	}

	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		metrics.FetchRequests.WithLabelValues(metrics.OutcomeStatusError).Inc()
		return nil, errors.Wrapf(ErrUnexpectedStatus, "unexpected response code %d (%s)", res.StatusCode, res.Status)
	}

	data, err := io.ReadAll(res.Body)
	if err != nil {
		slog.WarnContext(ctx, "could not read response body", slog.String("url", u.String()), slogx.Error(err))
		metrics.FetchRequests.WithLabelValues(metrics.OutcomeNetworkError).Inc()
		return nil, errors.Wrapf(ErrNetworkUnavailable, "could not read '%s': %s", u.String(), err)
	}

	metrics.FetchRequests.WithLabelValues(metrics.OutcomeOK).Inc()

	slog.DebugContext(ctx, "client request done", slog.Int("status", res.StatusCode), slog.Int("size", len(data)))

	return data, nil
}

func (c *Client) fetchText(ctx context.Context, rawURL string, params url.Values) (string, error) {
	data, err := c.Fetch(ctx, rawURL, params)
	if err != nil {
		return "", errors.WithStack(err)
	}

	if !utf8.Valid(data) {
		return "", errors.Wrapf(ErrInvalidEncoding, "response from '%s'", rawURL)
	}

	return string(data), nil
}

func checkURL(rawURL string) (*url.URL, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, &blockedSchemeError{scheme: ""}
	}

	scheme := strings.ToLower(u.Scheme)
	if _, allowed := AllowedSchemes[scheme]; !allowed {
		return nil, &blockedSchemeError{scheme: u.Scheme}
	}

	return u, nil
}
