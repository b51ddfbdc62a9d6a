package cheapshark

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK           = "ok"
	outcomeNetworkError = "network_error"
	outcomeHTTPError    = "http_error"
	outcomeParseError   = "parse_error"
)

//nolint:gochecknoglobals // skip
var (
	requests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "deal_browser",
		Subsystem: "cheapshark",
		Name:      "requests_total",
		Help:      "CheapShark API requests by operation and outcome.",
	}, []string{"operation", "outcome"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "deal_browser",
		Subsystem: "cheapshark",
		Name:      "request_duration_seconds",
		Help:      "CheapShark API request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})

	shapeErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "deal_browser",
		Subsystem: "cheapshark",
		Name:      "payload_shape_errors_total",
		Help:      "Decoded CheapShark payloads that failed validation.",
	}, []string{"operation"})
)

func observe(operation, outcome string, start time.Time) {
	requests.WithLabelValues(operation, outcome).Inc()
	requestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
