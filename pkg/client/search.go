package client

import (
	"bytes"
	"context"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/rfc-lookup/internal/metrics"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	resultsTableClass = "gridtable"
	resultsRowCells   = 7
)

type FileLink struct {
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`
}

// Files lists the downloadable formats of an RFC in table column order.
// Labels are unique.
type Files []FileLink

// Set records url for label. An existing label keeps its position.
func (f *Files) Set(label, url string) {
	for i := range *f {
		if (*f)[i].Label == label {
			(*f)[i].URL = url
			return
		}
	}

	*f = append(*f, FileLink{Label: label, URL: url})
}

func (f Files) Get(label string) (string, bool) {
	for _, l := range f {
		if l.Label == label {
			return l.URL, true
		}
	}

	return "", false
}

type SearchResult struct {
	ID              int      `json:"id" yaml:"id"`
	Link            string   `json:"link" yaml:"link"`
	Files           Files    `json:"files" yaml:"files"`
	Title           string   `json:"title" yaml:"title"`
	Authors         []string `json:"authors" yaml:"authors"`
	PublicationDate string   `json:"publicationDate" yaml:"publicationDate"`
	MoreInfo        string   `json:"moreInfo" yaml:"moreInfo"`
	Status          string   `json:"status" yaml:"status"`
}

func searchParams(title string) url.Values {
	return url.Values{
		"title":         []string{title},
		"pubstatus[]":   []string{"Any"},
		"pub_date_type": []string{"any"},
		"page":          []string{"All"},
		"sortkey":       []string{"Number"},
		"sorting":       []string{"ASC"},
	}
}

// Search queries the RFC editor for documents whose title matches the given
// value. Results are returned in the order of the results grid, ascending
// RFC number.
func (c *Client) Search(ctx context.Context, title string) ([]SearchResult, error) {
	metrics.TotalSearchRequests.Inc()

	ctx = slogx.WithAttrs(ctx, slog.String("title", title))

	data, err := c.Fetch(ctx, SearchURL, searchParams(title))
	if err != nil {
		return nil, errors.Wrap(err, "could not fetch search results")
	}

	results, err := ParseSearchResults(ctx, data)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return results, nil
}

// ParseSearchResults extracts the records of the first results grid found in
// the given HTML page. A page without results grid yields no result. Rows
// that do not have the expected shape are skipped.
func ParseSearchResults(ctx context.Context, data []byte) ([]SearchResult, error) {
	if !utf8.Valid(data) {
		return nil, errors.Wrap(ErrInvalidEncoding, "search results")
	}

	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	results := make([]SearchResult, 0)

	table := findFirst(doc, func(n *html.Node) bool {
		return n.DataAtom == atom.Table && hasClass(n, resultsTableClass)
	})
	if table == nil {
		slog.DebugContext(ctx, "no results table found")
		return results, nil
	}

	rows := findAll(table, atom.Tr)
	if len(rows) == 0 {
		return results, nil
	}

	// The first row holds the column headers
	for idx, row := range rows[1:] {
		cells := findAll(row, atom.Td)

		if len(cells) != resultsRowCells {
			slog.WarnContext(ctx, "skipping row with unexpected number of columns", slog.Int("row", idx+1), slog.Int("columns", len(cells)))
			metrics.SkippedSearchRows.Inc()
			continue
		}

		result, err := parseSearchRow(cells)
		if err != nil {
			slog.WarnContext(ctx, "skipping malformed row", slog.Int("row", idx+1), slogx.Error(err))
			metrics.SkippedSearchRows.Inc()
			continue
		}

		results = append(results, *result)
	}

	metrics.SearchResults.Add(float64(len(results)))

	return results, nil
}

func parseSearchRow(cells []*html.Node) (*SearchResult, error) {
	anchors := findAll(cells[0], atom.A)
	if len(anchors) == 0 {
		return nil, errors.New("no report anchor in first column")
	}

	reportAnchor := anchors[0]

	// Anchor text has the form "RFC 1234"
	fields := strings.Fields(Clean(textContent(reportAnchor)))
	if len(fields) < 2 {
		return nil, errors.Errorf("unexpected report label '%s'", textContent(reportAnchor))
	}

	id, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, errors.Wrapf(err, "unexpected report number '%s'", fields[1])
	}

	link, _ := getAttribute(reportAnchor, "href")

	files := make(Files, 0)
	for _, a := range findAll(cells[1], atom.A) {
		href, _ := getAttribute(a, "href")
		files.Set(cellText(a), href)
	}

	status, _, _ := strings.Cut(cellText(cells[6]), " (")

	return &SearchResult{
		ID:              id,
		Link:            link,
		Files:           files,
		Title:           cellText(cells[2]),
		Authors:         ExtractAuthors(cellText(cells[3])),
		PublicationDate: cellText(cells[4]),
		MoreInfo:        cellText(cells[5]),
		Status:          status,
	}, nil
}

func cellText(n *html.Node) string {
	return Clean(strings.TrimSpace(textContent(n)))
}

func textContent(n *html.Node) string {
	var sb strings.Builder

	var walk func(node *html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}

		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)

	return sb.String()
}

func findFirst(node *html.Node, match func(n *html.Node) bool) *html.Node {
	if node.Type == html.ElementNode && match(node) {
		return node
	}

	for c := node.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, match); found != nil {
			return found
		}
	}

	return nil
}

// findAll returns the descendants of node with the given tag, in document
// order.
func findAll(node *html.Node, tag atom.Atom) []*html.Node {
	nodes := make([]*html.Node, 0)

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.DataAtom == tag {
				nodes = append(nodes, c)
			}
			walk(c)
		}
	}
	walk(node)

	return nodes
}

func getAttribute(n *html.Node, key string) (string, bool) {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val, true
		}
	}

	return "", false
}

func hasClass(n *html.Node, class string) bool {
	classes, ok := getAttribute(n, "class")
	if !ok {
		return false
	}

	for _, c := range strings.Fields(classes) {
		if c == class {
			return true
		}
	}

	return false
}
