package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	savvy = "savvy"

	// Upload metrics
	uploadsTotal = "assumption_uploads_total"

	// Job metrics
	assumptionJobsTotal    = "assumption_jobs_total"
	assumptionJobsDuration = "assumption_job_duration_seconds"

	// Labels
	uploadStateLabel = "state"
	jobStatusLabel   = "status"
)

var uploadsTotalLabels = []string{
	uploadStateLabel,
}

var assumptionJobsLabels = []string{
	jobStatusLabel,
}

/**
* Metrics definition
**/
var uploadsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: savvy,
		Name:      uploadsTotal,
		Help:      "number of assumption uploads",
	},
	uploadsTotalLabels,
)

var assumptionJobsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: savvy,
		Name:      assumptionJobsTotal,
		Help:      "number of processed assumption jobs by terminal status",
	},
	assumptionJobsLabels,
)

var assumptionJobsDurationMetric = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Subsystem: savvy,
		Name:      assumptionJobsDuration,
		Help:      "time spent processing an assumption workbook",
		Buckets:   []float64{0.5, 1, 5, 15, 60, 300},
	},
	assumptionJobsLabels,
)

func IncreaseUploadsTotalMetric(state string) {
	labels := prometheus.Labels{
		uploadStateLabel: state,
	}
	uploadsTotalMetric.With(labels).Inc()
}

func IncreaseAssumptionJobsTotalMetric(status string, seconds float64) {
	labels := prometheus.Labels{
		jobStatusLabel: status,
	}
	assumptionJobsTotalMetric.With(labels).Inc()
	assumptionJobsDurationMetric.With(labels).Observe(seconds)
}

type PrometheusMetricsHandler struct {
	handler http.Handler
}

func NewPrometheusMetricsHandler() *PrometheusMetricsHandler {
	return &PrometheusMetricsHandler{handler: promhttp.Handler()}
}

func (p *PrometheusMetricsHandler) Handler() http.Handler {
	return p.handler
}

func init() {
	registerMetrics()
}

func registerMetrics() {
	prometheus.MustRegister(uploadsTotalMetric)
	prometheus.MustRegister(assumptionJobsTotalMetric)
	prometheus.MustRegister(assumptionJobsDurationMetric)
	prometheus.MustRegister(totalUniqueUploadersPerWeekMetric)
}
