package store

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	fetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "opsdesk_client",
			Subsystem: "store",
			Name:      "fetches_total",
			Help:      "Fetches issued per collection.",
		},
		[]string{"store"},
	)

	fetchFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "opsdesk_client",
			Subsystem: "store",
			Name:      "fetch_failures_total",
			Help:      "Fetches that ended in a transport error.",
		},
		[]string{"store"},
	)

	staleFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "opsdesk_client",
			Subsystem: "store",
			Name:      "stale_fetches_discarded_total",
			Help:      "Fetch responses discarded because a newer fetch was issued.",
		},
		[]string{"store"},
	)

	staleTargetsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "opsdesk_client",
			Subsystem: "store",
			Name:      "stale_update_targets_total",
			Help:      "Updates dropped because the target id was not in the local collection.",
		},
		[]string{"store"},
	)

	writeFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "opsdesk_client",
			Subsystem: "store",
			Name:      "write_failures_total",
			Help:      "Write operations that surfaced an error to the caller.",
		},
		[]string{"store"},
	)
)
