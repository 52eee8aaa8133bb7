package command

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/bornholm/rfc-lookup/internal/command/common"
	"github.com/bornholm/rfc-lookup/internal/command/get"
	"github.com/bornholm/rfc-lookup/internal/command/index"
	"github.com/bornholm/rfc-lookup/internal/command/search"
	"github.com/bornholm/rfc-lookup/internal/config"
	"github.com/bornholm/rfc-lookup/pkg/client"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const searchPage = `<table class="gridtable">
<tr><th>Number</th></tr>
<tr>
<td><a href="/info/rfc1234">RFC 1234</a></td>
<td><a href="/rfc/rfc1234.txt">TXT</a></td>
<td>RFC Report 1</td>
<td>John Doe</td>
<td>January 1991</td>
<td></td>
<td>Informational</td>
</tr>
<tr>
<td><a href="/info/rfc5678">RFC 5678</a></td>
<td><a href="/rfc/rfc5678.txt">TXT</a></td>
<td>RFC Report 2</td>
<td>Jane Doe, Ed.</td>
<td>March 2009</td>
<td></td>
<td>Proposed Standard (errata)</td>
</tr>
</table>`

type routeTransport struct {
	routes   map[string]string
	requests []string
}

func (t *routeTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	key := *req.URL
	key.RawQuery = ""

	t.requests = append(t.requests, key.String())

	body, exists := t.routes[key.String()]
	if !exists {
		return &http.Response{
			StatusCode: http.StatusNotFound,
			Status:     http.StatusText(http.StatusNotFound),
			Header:     http.Header{},
			Body:       io.NopCloser(strings.NewReader("")),
			Request:    req,
		}, nil
	}

	return &http.Response{
		StatusCode: http.StatusOK,
		Status:     http.StatusText(http.StatusOK),
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(body)),
		Request:    req,
	}, nil
}

type runResult struct {
	Err      error
	Stdout   string
	Stderr   string
	Requests []string
	FS       afero.Fs
	ExitCode int
}

func run(t *testing.T, fs afero.Fs, routes map[string]string, args ...string) runResult {
	t.Helper()

	conf, err := config.ParseWithEnvironment(map[string]string{})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	app := NewApp(conf, "rfc", "test", get.Command(), search.Command(), index.Command())

	var stdout, stderr bytes.Buffer
	app.Writer = &stdout
	app.ErrWriter = &stderr

	if fs == nil {
		fs = afero.NewMemMapFs()
	}

	transport := &routeTransport{routes: routes}

	common.SetFilesystem(app, fs)
	common.SetTransport(app, transport)

	err = app.RunContext(context.Background(), append([]string{"rfc"}, args...))

	return runResult{
		Err:      err,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Requests: transport.requests,
		FS:       fs,
		ExitCode: ExitCode(err),
	}
}

func TestVersion(t *testing.T) {
	for _, flag := range []string{"--version", "-V"} {
		res := run(t, nil, nil, flag)

		if e, g := 0, res.ExitCode; e != g {
			t.Errorf("%s: exit code: expected '%d', got '%d' (%v)", flag, e, g, res.Err)
		}

		if !strings.Contains(res.Stdout, "rfc version") {
			t.Errorf("%s: expected version in output, got '%s'", flag, res.Stdout)
		}
	}
}

func TestGet(t *testing.T) {
	res := run(t, nil, map[string]string{
		client.LatestIndexURL:  "1234 Some RFC\n",
		client.ReportURL(1234): "RFC Report",
	}, "get", "1234")

	if e, g := 0, res.ExitCode; e != g {
		t.Fatalf("exit code: expected '%d', got '%d' (%+v)", e, g, res.Err)
	}

	if e, g := "RFC Report", res.Stdout; e != g {
		t.Errorf("stdout: expected '%s', got '%s'", e, g)
	}
}

func TestGetURLOnly(t *testing.T) {
	res := run(t, nil, nil, "get", "--url", "1234")

	if e, g := 0, res.ExitCode; e != g {
		t.Fatalf("exit code: expected '%d', got '%d' (%+v)", e, g, res.Err)
	}

	if e, g := "https://www.rfc-editor.org/rfc/rfc1234.html\n", res.Stdout; e != g {
		t.Errorf("stdout: expected '%s', got '%s'", e, g)
	}

	if e, g := 0, len(res.Requests); e != g {
		t.Errorf("len(requests): expected '%d', got '%d'", e, g)
	}
}

func TestGetOutOfRange(t *testing.T) {
	res := run(t, nil, map[string]string{
		client.LatestIndexURL: "500 Some RFC\n",
	}, "get", "99999999")

	if e, g := 1, res.ExitCode; e != g {
		t.Fatalf("exit code: expected '%d', got '%d' (%+v)", e, g, res.Err)
	}

	expected := "Invalid RFC ID 99999999, must be between 0 and 500"
	if !strings.Contains(res.Stderr, expected) {
		t.Errorf("expected stderr to contain '%s', got '%s'", expected, res.Stderr)
	}
}

func TestGetInvalidID(t *testing.T) {
	res := run(t, nil, nil, "get", "abc")

	if e, g := 2, res.ExitCode; e != g {
		t.Fatalf("exit code: expected '%d', got '%d' (%+v)", e, g, res.Err)
	}

	expected := "Invalid value for 'ID': 'abc' is not a valid integer"
	if !strings.Contains(res.Stderr, expected) {
		t.Errorf("expected stderr to contain '%s', got '%s'", expected, res.Stderr)
	}
}

func TestGetNegativeID(t *testing.T) {
	res := run(t, nil, map[string]string{
		client.LatestIndexURL: "500 Some RFC\n",
	}, "get", "--", "-1")

	if e, g := 1, res.ExitCode; e != g {
		t.Fatalf("exit code: expected '%d', got '%d' (%+v)", e, g, res.Err)
	}

	expected := "Invalid RFC ID -1, must be between 0 and 500"
	if !strings.Contains(res.Stderr, expected) {
		t.Errorf("expected stderr to contain '%s', got '%s'", expected, res.Stderr)
	}
}

func TestGetOutputFile(t *testing.T) {
	res := run(t, nil, map[string]string{
		client.LatestIndexURL:  "9204 QPACK\n",
		client.ReportURL(9204): "QPACK: Field Compression for HTTP/3\n",
	}, "get", "--output", "/tmp/rfc9204.txt", "9204")

	if e, g := 0, res.ExitCode; e != g {
		t.Fatalf("exit code: expected '%d', got '%d' (%+v)", e, g, res.Err)
	}

	data, err := afero.ReadFile(res.FS, "/tmp/rfc9204.txt")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "QPACK: Field Compression for HTTP/3\n", string(data); e != g {
		t.Errorf("file content: expected '%s', got '%s'", e, g)
	}

	if e, g := "", res.Stdout; e != g {
		t.Errorf("stdout: expected '%s', got '%s'", e, g)
	}
}

func TestSearch(t *testing.T) {
	res := run(t, nil, map[string]string{
		client.SearchURL: searchPage,
	}, "search", "1234")

	if e, g := 0, res.ExitCode; e != g {
		t.Fatalf("exit code: expected '%d', got '%d' (%+v)", e, g, res.Err)
	}

	expected := "Search '1234' with 2 results.\n1234: RFC Report 1\n5678: RFC Report 2\n"
	if e, g := expected, res.Stdout; e != g {
		t.Errorf("stdout: expected '%s', got '%s'", e, g)
	}
}

func TestSearchNoResults(t *testing.T) {
	res := run(t, nil, map[string]string{
		client.SearchURL: "<p>No results</p>",
	}, "search", "nothing")

	if e, g := 0, res.ExitCode; e != g {
		t.Fatalf("exit code: expected '%d', got '%d' (%+v)", e, g, res.Err)
	}

	if e, g := "Search 'nothing' with 0 results.\n", res.Stdout; e != g {
		t.Errorf("stdout: expected '%s', got '%s'", e, g)
	}
}

func TestSearchJSON(t *testing.T) {
	res := run(t, nil, map[string]string{
		client.SearchURL: searchPage,
	}, "search", "--format", "json", "1234")

	if e, g := 0, res.ExitCode; e != g {
		t.Fatalf("exit code: expected '%d', got '%d' (%+v)", e, g, res.Err)
	}

	var results []client.SearchResult
	if err := json.Unmarshal([]byte(res.Stdout), &results); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 2, len(results); e != g {
		t.Fatalf("len(results): expected '%d', got '%d'", e, g)
	}

	if e, g := "Jane Doe, Ed.", results[1].Authors[0]; e != g {
		t.Errorf("results[1].Authors[0]: expected '%s', got '%s'", e, g)
	}

	if e, g := "Proposed Standard", results[1].Status; e != g {
		t.Errorf("results[1].Status: expected '%s', got '%s'", e, g)
	}
}

func TestSearchUnknownFormat(t *testing.T) {
	res := run(t, nil, nil, "search", "--format", "xml", "1234")

	if e, g := 2, res.ExitCode; e != g {
		t.Errorf("exit code: expected '%d', got '%d' (%+v)", e, g, res.Err)
	}

	if e, g := 0, len(res.Requests); e != g {
		t.Errorf("len(requests): expected '%d', got '%d'", e, g)
	}
}

func TestSearchNetworkFailure(t *testing.T) {
	res := run(t, nil, map[string]string{}, "search", "1234")

	if e, g := 1, res.ExitCode; e != g {
		t.Errorf("exit code: expected '%d', got '%d' (%+v)", e, g, res.Err)
	}

	if strings.Contains(res.Stdout, "results.") {
		t.Errorf("expected no result header on failure, got '%s'", res.Stdout)
	}
}

func TestIndex(t *testing.T) {
	routes := map[string]string{
		client.LatestIndexURL: "9114 HTTP/3\n9204 QPACK\n     2022 (Format: TXT)\n",
	}

	res := run(t, nil, routes, "index")
	if e, g := 0, res.ExitCode; e != g {
		t.Fatalf("exit code: expected '%d', got '%d' (%+v)", e, g, res.Err)
	}

	if e, g := "Latest RFC: 9204 (2 indexed)\n", res.Stdout; e != g {
		t.Errorf("stdout: expected '%s', got '%s'", e, g)
	}

	res = run(t, nil, routes, "index", "--all")
	if e, g := "9114\n9204\n", res.Stdout; e != g {
		t.Errorf("stdout: expected '%s', got '%s'", e, g)
	}

	res = run(t, nil, routes, "index", "--format", "yaml")
	if e, g := "latest: 9204\ncount: 2\n", res.Stdout; e != g {
		t.Errorf("stdout: expected '%s', got '%s'", e, g)
	}
}

func TestConfigFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	if err := afero.WriteFile(fs, "/etc/rfc.yml", []byte("log-level: debug\n"), 0o644); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	res := run(t, fs, nil, "--config", "/etc/rfc.yml", "get", "--url", "1")

	if e, g := 0, res.ExitCode; e != g {
		t.Fatalf("exit code: expected '%d', got '%d' (%+v)", e, g, res.Err)
	}

	res = run(t, fs, map[string]string{
		client.LatestIndexURL: "0001 Host Software\n",
		client.ReportURL(1):   "Host Software",
	}, "--config", "/etc/rfc.yml", "get", "1")

	if !strings.Contains(res.Stderr, "level=DEBUG") {
		t.Errorf("expected debug logs on stderr, got '%s'", res.Stderr)
	}
}

func TestRequestScopedLogAttrs(t *testing.T) {
	res := run(t, nil, map[string]string{
		client.LatestIndexURL: "0001 Host Software\n",
		client.ReportURL(1):   "Host Software",
	}, "--log-level", "debug", "get", "1")

	if e, g := 0, res.ExitCode; e != g {
		t.Fatalf("exit code: expected '%d', got '%d' (%+v)", e, g, res.Err)
	}

	var requestLines int
	for _, line := range strings.Split(res.Stderr, "\n") {
		if !strings.Contains(line, "msg=\"client request done\"") {
			continue
		}

		requestLines++

		if !strings.Contains(line, "requestID=") {
			t.Errorf("expected log line to carry a request id, got '%s'", line)
		}
	}

	if e, g := 2, requestLines; e != g {
		t.Errorf("request log lines: expected '%d', got '%d' (%s)", e, g, res.Stderr)
	}

	if !strings.Contains(res.Stderr, "rfc=1") {
		t.Errorf("expected report log lines to carry the rfc id, got '%s'", res.Stderr)
	}
}

func TestMissingConfigFile(t *testing.T) {
	res := run(t, nil, nil, "--config", "/missing.yml", "get", "--url", "1")

	if e, g := 1, res.ExitCode; e != g {
		t.Errorf("exit code: expected '%d', got '%d' (%+v)", e, g, res.Err)
	}
}

func TestMetricsDump(t *testing.T) {
	res := run(t, nil, map[string]string{
		client.SearchURL: searchPage,
	}, "--metrics", "search", "1234")

	if !strings.Contains(res.Stderr, "rfc_lookup_total_search_requests") {
		t.Errorf("expected metrics on stderr, got '%s'", res.Stderr)
	}
}
