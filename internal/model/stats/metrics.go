package stats

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var histogramComputeTime = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "expenses",
		Subsystem: "stats",
		Name:      "histogram_compute_time_seconds",
		Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2},
	},
	[]string{"period", "status"},
)

var counterCacheRequests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "expenses",
		Subsystem: "stats",
		Name:      "cache_requests_total",
	},
	[]string{"result"},
)

func observeCompute(period Period, elapsed time.Duration, failed bool) {
	label := string(period)
	if !period.Valid() {
		label = "invalid"
	}
	status := "ok"
	if failed {
		status = "error"
	}
	histogramComputeTime.
		WithLabelValues(label, status).
		Observe(elapsed.Seconds())
}

func countCache(result string) {
	counterCacheRequests.WithLabelValues(result).Inc()
}
