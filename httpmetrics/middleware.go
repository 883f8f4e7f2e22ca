package httpmetrics

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// Middleware records request metrics around a downstream handler.
type Middleware struct {
	metrics         *Metrics
	resolver        TemplateResolver
	filterUnhandled bool
}

type options struct {
	prefix          string
	buckets         []float64
	filterUnhandled bool
}

// An Option configures a Middleware at construction time.
type Option func(*options)

// WithPrefix prepends prefix to the name of every metric the Middleware
// registers, allowing multiple instances to coexist in one registry.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithBuckets overrides the processing time histogram buckets. The
// default is prometheus.DefBuckets.
func WithBuckets(buckets []float64) Option {
	return func(o *options) { o.buckets = buckets }
}

// FilterUnhandledPaths causes requests whose path matches no registered
// route to bypass metric recording entirely. This protects the registry
// from unbounded label cardinality when arbitrary unregistered paths
// are hit.
func FilterUnhandledPaths() Option {
	return func(o *options) { o.filterUnhandled = true }
}

// New returns a Middleware which registers its instruments with reg and
// resolves route templates with res.
func New(reg prometheus.Registerer, res TemplateResolver, opts ...Option) *Middleware {
	o := options{buckets: prometheus.DefBuckets}
	for _, opt := range opts {
		opt(&o)
	}

	return &Middleware{
		metrics:         newMetrics(reg, o.prefix, o.buckets),
		resolver:        res,
		filterUnhandled: o.filterUnhandled,
	}
}

// Handler wraps next, recording metrics for each request and response
// under the request's method and route template.
//
// The in-progress gauge is incremented before next runs and decremented
// on every exit path, including a panicking handler. A panic raised by
// next increments the panic counter, labeled with the concrete type of
// the panic value, and is then re-raised unchanged so outer recovery
// middleware still observes it. The response and request are never
// modified.
func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		template, matched := m.resolver.Resolve(r)
		if m.filterUnhandled && !matched {
			next.ServeHTTP(w, r)
			return
		}

		method := r.Method
		m.metrics.InProgress.With(labelMethod, method, labelTemplate, template).Add(1)
		defer m.metrics.InProgress.With(labelMethod, method, labelTemplate, template).Add(-1)

		m.metrics.Requests.With(labelMethod, method, labelTemplate, template).Add(1)

		ww, ok := w.(middleware.WrapResponseWriter)
		if !ok {
			ww = middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		}

		start := time.Now()
		defer func() {
			if v := recover(); v != nil {
				m.metrics.Exceptions.With(
					labelMethod, method,
					labelTemplate, template,
					labelException, fmt.Sprintf("%T", v),
				).Add(1)
				panic(v)
			}

			st := ww.Status()
			if st == 0 {
				// Assume no Write or WriteHeader means OK.
				st = http.StatusOK
			}

			m.metrics.ProcessingTime.With(labelMethod, method, labelTemplate, template).Observe(time.Since(start).Seconds())
			m.metrics.Responses.With(
				labelMethod, method,
				labelTemplate, template,
				labelStatus, strconv.Itoa(st),
			).Add(1)
		}()

		next.ServeHTTP(ww, r)
	})
}
