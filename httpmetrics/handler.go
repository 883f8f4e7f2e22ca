package httpmetrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler returns an http.Handler which renders the current state of
// every metric gathered by g in the Prometheus text exposition format.
//
// Mount it wherever the application chooses; it is not exempt from
// instrumentation, so a scrape shows up in its own metrics as an
// in-progress request while rendering.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
