package browser

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	kindListing = "listing"
	kindSearch  = "search"
	kindMore    = "more"
	kindDetail  = "detail"
)

//nolint:gochecknoglobals // skip
var staleResponses = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "deal_browser",
	Name:      "stale_responses_total",
	Help:      "Responses discarded because the query changed while they were in flight.",
}, []string{"kind"})
