package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameFetchRequests = "fetch_requests"
	LabelOutcome      = "outcome"
)

const (
	OutcomeOK           = "ok"
	OutcomeRejected     = "rejected"
	OutcomeNetworkError = "network_error"
	OutcomeStatusError  = "status_error"
)

var FetchRequests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameFetchRequests,
		Help:      "Total outgoing fetch requests, by outcome",
		Namespace: Namespace,
	},
	[]string{LabelOutcome},
)
