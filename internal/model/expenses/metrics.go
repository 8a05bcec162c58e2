package expenses

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var histogramOperationTime = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "expenses",
		Subsystem: "service",
		Name:      "histogram_operation_time_seconds",
		Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2},
	},
	[]string{"operation", "error"},
)

var counterEventsFailed = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: "expenses",
		Subsystem: "service",
		Name:      "events_failed_total",
	},
)

func observeOperation(operation string, elapsed time.Duration, err bool) {
	histogramOperationTime.
		WithLabelValues(operation, strconv.FormatBool(err)).
		Observe(elapsed.Seconds())
}
