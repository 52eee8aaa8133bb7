package client

import (
	"bytes"
	"io"
	"net/http"
	"sync"

	"github.com/pkg/errors"
)

type stubResponse struct {
	Status int
	Body   []byte
	Err    error
}

// stubTransport answers requests from a table keyed by URL, query string
// excluded.
type stubTransport struct {
	responses map[string]stubResponse
	mutex     sync.Mutex
	requests  []*http.Request
}

func (t *stubTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.mutex.Lock()
	t.requests = append(t.requests, req)
	t.mutex.Unlock()

	key := *req.URL
	key.RawQuery = ""

	res, exists := t.responses[key.String()]
	if !exists {
		return nil, errors.Errorf("no stub response for '%s'", key.String())
	}

	if res.Err != nil {
		return nil, res.Err
	}

	status := res.Status
	if status == 0 {
		status = http.StatusOK
	}

	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Header:     http.Header{},
		Body:       io.NopCloser(bytes.NewReader(res.Body)),
		Request:    req,
	}, nil
}

func (t *stubTransport) Requests() []*http.Request {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return append([]*http.Request{}, t.requests...)
}

func newStubClient(responses map[string]stubResponse) (*Client, *stubTransport) {
	transport := &stubTransport{responses: responses}
	client := New(WithHTTPClient(&http.Client{Transport: transport}))
	return client, transport
}
