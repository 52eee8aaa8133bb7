package metrics

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Dump writes the application metrics gathered by g in the Prometheus text
// exposition format.
func Dump(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return errors.WithStack(err)
	}

	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), Namespace+"_") {
			continue
		}

		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return errors.WithStack(err)
		}
	}

	return nil
}
