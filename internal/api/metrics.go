package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the HTTP API.
type Metrics struct {
	Validations *prometheus.CounterVec
	Predictions prometheus.Counter
	InputErrors *prometheus.CounterVec
}

// NewMetrics creates and registers the API metrics on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Validations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "nuban_validations_total",
			Help: "Account number validations by result",
		}, []string{"result"}),
		Predictions: factory.NewCounter(prometheus.CounterOpts{
			Name: "nuban_predictions_total",
			Help: "Bank predictions served",
		}),
		InputErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "nuban_input_errors_total",
			Help: "Rejected requests by input error kind",
		}, []string{"kind"}),
	}
}

// ObserveValidation records one validation outcome.
func (m *Metrics) ObserveValidation(valid bool) {
	result := "invalid"
	if valid {
		result = "valid"
	}
	m.Validations.WithLabelValues(result).Inc()
}

// ObserveInputError records one rejected request.
func (m *Metrics) ObserveInputError(kind string) {
	m.InputErrors.WithLabelValues(kind).Inc()
}
