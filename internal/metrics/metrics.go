// Package metrics provides Prometheus metrics for pathway.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Progress outcomes.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Client-side metrics.
var (
	// progressUpdatesTotal counts progress writes sent by the mutator.
	// Labels:
	//   - outcome: "success" or "failure"
	progressUpdatesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pathway_progress_updates_total",
			Help: "Total number of progress updates sent to the roadmap provider",
		},
		[]string{"outcome"},
	)

	progressUpdateDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pathway_progress_update_seconds",
			Help:    "Duration of progress updates in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	// providerRequestsTotal counts every provider call.
	// Labels:
	//   - operation: "fetch" or "progress"
	//   - outcome: "success" or "failure"
	providerRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pathway_provider_requests_total",
			Help: "Total number of roadmap provider requests",
		},
		[]string{"operation", "outcome"},
	)
)

// Dev server metrics.
var (
	// httpRequestsTotal counts requests served by the development provider.
	// Labels:
	//   - route: matched route path
	//   - method: HTTP method
	//   - status: response status code
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pathway_devserver_requests_total",
			Help: "Total number of requests served by the development provider",
		},
		[]string{"route", "method", "status"},
	)

	stepsCompleted = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "pathway_devserver_steps_completed",
			Help: "Number of roadmap steps currently marked completed",
		},
	)
)

func init() {
	prometheus.MustRegister(progressUpdatesTotal)
	prometheus.MustRegister(progressUpdateDuration)
	prometheus.MustRegister(providerRequestsTotal)
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(stepsCompleted)
}

// RecordProgressUpdate records one mutator write and its duration.
func RecordProgressUpdate(outcome string, durationSeconds float64) {
	progressUpdatesTotal.WithLabelValues(outcome).Inc()
	progressUpdateDuration.Observe(durationSeconds)
}

// RecordProviderRequest records one provider call.
func RecordProviderRequest(operation, outcome string) {
	providerRequestsTotal.WithLabelValues(operation, outcome).Inc()
}

// RecordHTTPRequest records one request served by the dev server.
func RecordHTTPRequest(route, method, status string) {
	httpRequestsTotal.WithLabelValues(route, method, status).Inc()
}

// SetStepsCompleted publishes the dev server's completed step count.
func SetStepsCompleted(n int) {
	stepsCompleted.Set(float64(n))
}

// Outcome maps an error to a metric outcome label.
func Outcome(err error) string {
	if err != nil {
		return OutcomeFailure
	}
	return OutcomeSuccess
}

// Handler returns the HTTP handler exposing the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
