// Package metrics exposes Prometheus instruments for chart interpretation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "chart_interpreter"

// Interpretation outcomes.
const (
	StatusOK           = "ok"
	StatusInvalidInput = "invalid_input"
	StatusError        = "error"
)

var (
	// interpretationsTotal counts interpretations by outcome.
	// Labels: status (ok, invalid_input, error)
	interpretationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "interpretations_total",
		Help:      "Total chart interpretations by outcome",
	}, []string{"status"})

	// interpretationDuration measures a full interpretation.
	// Labels: mode (parallel, sequential)
	interpretationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "interpretation_duration_seconds",
		Help:      "Time to interpret one chart in seconds",
		Buckets:   []float64{0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.05},
	}, []string{"mode"})

	// yogasDetectedTotal counts fired yoga records.
	// Labels: yoga
	yogasDetectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "yoga",
		Name:      "detected_total",
		Help:      "Total yoga and dosha records detected by name",
	}, []string{"yoga"})

	// diagnosticsTotal counts emitted diagnostics.
	// Labels: severity, code
	diagnosticsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "diagnostics_total",
		Help:      "Total diagnostics by severity and code",
	}, []string{"severity", "code"})

	// httpRequestsTotal counts API requests.
	// Labels: route, code
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests by route and status code",
	}, []string{"route", "code"})
)

// RecordInterpretation records one interpretation outcome.
func RecordInterpretation(status string) {
	interpretationsTotal.WithLabelValues(status).Inc()
}

// ObserveDuration records how long an interpretation took.
func ObserveDuration(mode string, seconds float64) {
	interpretationDuration.WithLabelValues(mode).Observe(seconds)
}

// RecordYoga records one detected yoga by name.
func RecordYoga(name string) {
	yogasDetectedTotal.WithLabelValues(name).Inc()
}

// RecordDiagnostic records one diagnostic.
func RecordDiagnostic(severity, code string) {
	diagnosticsTotal.WithLabelValues(severity, code).Inc()
}

// RecordHTTPRequest records one served request.
func RecordHTTPRequest(route, code string) {
	httpRequestsTotal.WithLabelValues(route, code).Inc()
}
