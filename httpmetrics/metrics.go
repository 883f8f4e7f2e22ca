package httpmetrics

import (
	kitmetrics "github.com/go-kit/kit/metrics"
	kitprometheus "github.com/go-kit/kit/metrics/prometheus"
	"github.com/prometheus/client_golang/prometheus"
)

// Label names shared by the request instruments.
const (
	labelMethod    = "method"
	labelTemplate  = "path_template"
	labelStatus    = "status_code"
	labelException = "exception_type"
)

// Metrics holds the instruments updated by the Middleware for each
// request. They are exposed as go-kit metric interfaces so handlers and
// tests can record through them without knowing about the Prometheus
// registry underneath.
type Metrics struct {
	Requests       kitmetrics.Counter   // method, path_template
	Responses      kitmetrics.Counter   // method, path_template, status_code
	ProcessingTime kitmetrics.Histogram // method, path_template
	Exceptions     kitmetrics.Counter   // method, path_template, exception_type
	InProgress     kitmetrics.Gauge     // method, path_template
}

// newMetrics builds the request instruments and registers them with reg.
// The prefix is prepended to every metric name so several middleware
// instances can share a registry without name collisions.
func newMetrics(reg prometheus.Registerer, prefix string, buckets []float64) *Metrics {
	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "http_requests_total",
			Help: "Total count of requests by method and path template.",
		},
		[]string{labelMethod, labelTemplate},
	)
	responses := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "http_responses_total",
			Help: "Total count of responses by method, path template and status code.",
		},
		[]string{labelMethod, labelTemplate, labelStatus},
	)
	processingTime := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "http_requests_processing_time_seconds",
			Help:    "Histogram of request processing time by method and path template, in seconds.",
			Buckets: buckets,
		},
		[]string{labelMethod, labelTemplate},
	)
	exceptions := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "http_exceptions_total",
			Help: "Total count of panics raised by method, path template and panic type.",
		},
		[]string{labelMethod, labelTemplate, labelException},
	)
	inProgress := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: prefix + "http_requests_in_progress",
			Help: "Gauge of requests by method and path template currently being processed.",
		},
		[]string{labelMethod, labelTemplate},
	)

	reg.MustRegister(requests, responses, processingTime, exceptions, inProgress)

	return &Metrics{
		Requests:       kitprometheus.NewCounter(requests),
		Responses:      kitprometheus.NewCounter(responses),
		ProcessingTime: kitprometheus.NewHistogram(processingTime),
		Exceptions:     kitprometheus.NewCounter(exceptions),
		InProgress:     kitprometheus.NewGauge(inProgress),
	}
}
