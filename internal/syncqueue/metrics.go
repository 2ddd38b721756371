package syncqueue

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	submissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "opsdesk_client",
			Subsystem: "syncqueue",
			Name:      "submissions_total",
			Help:      "Jobs accepted into the write queue.",
		},
		[]string{"shard"},
	)

	queueFullTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "opsdesk_client",
			Subsystem: "syncqueue",
			Name:      "queue_full_total",
			Help:      "Submissions rejected because a shard was full.",
		},
		[]string{"shard"},
	)

	queueDepth = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "opsdesk_client",
			Subsystem: "syncqueue",
			Name:      "queue_depth",
			Help:      "Jobs waiting per shard.",
		},
		[]string{"shard"},
	)

	runDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "opsdesk_client",
			Subsystem: "syncqueue",
			Name:      "job_duration_seconds",
			Help:      "Wall time of job execution per attempt.",
		},
		[]string{"shard"},
	)
)

func labelFor(shard int) string { return strconv.Itoa(shard) }
