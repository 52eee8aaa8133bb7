package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameTotalReportRequests = "total_report_requests"
	NameTotalSearchRequests = "total_search_requests"
	NameSearchResults       = "search_results"
	NameSkippedSearchRows   = "skipped_search_rows"
)

var TotalReportRequests = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameTotalReportRequests,
		Help:      "Total report requests",
		Namespace: Namespace,
	},
)

var TotalSearchRequests = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameTotalSearchRequests,
		Help:      "Total search requests",
		Namespace: Namespace,
	},
)

var SearchResults = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameSearchResults,
		Help:      "Total search results extracted from results grids",
		Namespace: Namespace,
	},
)

// SkippedSearchRows counts results grid rows dropped because of their shape.
var SkippedSearchRows = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameSkippedSearchRows,
		Help:      "Results grid rows skipped because of an unexpected shape",
		Namespace: Namespace,
	},
)
