package console

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var loginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "opsdesk_client",
		Name:      "logins_total",
		Help:      "Login attempts by outcome.",
	},
	[]string{"outcome"},
)
