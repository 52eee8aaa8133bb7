package client

import (
	"context"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
)

// LatestIDs downloads the latest RFC index and returns the RFC numbers it
// lists, in ascending order.
func (c *Client) LatestIDs(ctx context.Context) ([]int, error) {
	data, err := c.Fetch(ctx, LatestIndexURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "could not fetch rfc index")
	}

	ids, err := ParseIndex(data)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return ids, nil
}

// ParseIndex extracts the RFC numbers of an index document. A line
// contributes when its first token, delimited by a space or a tab, is made
// only of decimal digits. Indented lines never contribute.
func ParseIndex(data []byte) ([]int, error) {
	if !utf8.Valid(data) {
		return nil, errors.Wrap(ErrInvalidEncoding, "rfc index")
	}

	ids := make([]int, 0)

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")

		token := line
		if i := strings.IndexAny(line, " \t"); i >= 0 {
			token = line[:i]
		}

		if !isDigits(token) {
			continue
		}

		id, err := strconv.Atoi(token)
		if err != nil {
			slog.Warn("ignoring unparsable rfc index entry", slog.String("token", token), slogx.Error(err))
			continue
		}

		ids = append(ids, id)
	}

	sort.Ints(ids)

	return ids, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
