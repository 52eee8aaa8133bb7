package client

import (
	"context"
	"log/slog"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/rfc-lookup/internal/metrics"
	"github.com/pkg/errors"
)

// Report returns the plain text of the RFC identified by id.
//
// The index is downloaded again on every call to find the latest RFC
// number; callers looking up many documents pay for one index download
// each time.
func (c *Client) Report(ctx context.Context, id int) (string, error) {
	metrics.TotalReportRequests.Inc()

	ctx = slogx.WithAttrs(ctx, slog.Int("rfc", id))

	ids, err := c.LatestIDs(ctx)
	if err != nil {
		return "", errors.WithStack(err)
	}

	if len(ids) == 0 {
		return "", errors.Wrap(ErrIndexUnavailable, "rfc index lists no document")
	}

	latest := ids[len(ids)-1]

	if id <= 0 || id > latest {
		return "", errors.WithStack(&InvalidIDError{ID: id, Latest: latest})
	}

	slog.DebugContext(ctx, "fetching rfc report", slog.Int("latest", latest))

	report, err := c.fetchText(ctx, ReportURL(id), nil)
	if err != nil {
		return "", errors.Wrapf(err, "could not fetch rfc %d", id)
	}

	return report, nil
}
