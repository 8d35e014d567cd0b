package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	analyticsRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "labstock_insights",
			Name:      "analytics_requests_total",
			Help:      "Analytics operations served, by operation and outcome.",
		},
		[]string{"operation", "outcome"},
	)

	digestRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "labstock_insights",
			Name:      "digest_runs_total",
			Help:      "Scheduled stock digest runs, by outcome.",
		},
		[]string{"outcome"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(analyticsRequests, digestRuns)
	})
}

// IncAnalytics increments the counter for an analytics operation.
func IncAnalytics(operation, outcome string) {
	analyticsRequests.WithLabelValues(operation, outcome).Inc()
}

// IncDigestRun increments the digest run counter for an outcome label.
func IncDigestRun(outcome string) {
	digestRuns.WithLabelValues(outcome).Inc()
}
