package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	httpRequestsTotal    = "http_requests_total"
	httpRequestsDuration = "http_request_duration_milliseconds"

	routeLabel = "route"

	// unmatchedRoute labels requests no savvy route answered, so scanners
	// cannot grow the label set.
	unmatchedRoute = "unmatched"
)

var DefaultLatencyBuckets = []float64{50, 300, 1000, 5000, 30000}

var httpLabels = []string{"code", "method", routeLabel}

// Middleware counts and times the requests served by each savvy route.
type Middleware struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// NewMiddleware builds the collectors for the named server. An empty bucket
// list falls back to DefaultLatencyBuckets.
func NewMiddleware(server string, buckets []float64) *Middleware {
	if len(buckets) == 0 {
		buckets = DefaultLatencyBuckets
	}

	return &Middleware{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Subsystem:   savvy,
			Name:        httpRequestsTotal,
			Help:        "number of requests by route, method and status code",
			ConstLabels: prometheus.Labels{"server": server},
		}, httpLabels),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Subsystem:   savvy,
			Name:        httpRequestsDuration,
			Help:        "time spent serving a request by route, method and status code",
			ConstLabels: prometheus.Labels{"server": server},
			Buckets:     buckets,
		}, httpLabels),
	}
}

func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := unmatchedRoute
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		code := strconv.Itoa(ww.Status())
		m.requests.WithLabelValues(code, r.Method, route).Inc()
		m.latency.WithLabelValues(code, r.Method, route).Observe(float64(time.Since(start).Milliseconds()))
	})
}

func (m *Middleware) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.requests, m.latency}
}

func (m *Middleware) MustRegisterDefault() {
	prometheus.MustRegister(m.Collectors()...)
}
