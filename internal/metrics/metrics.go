package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"plate-registry/internal/model"
)

const (
	outcomeError    = "error"
	categoryUnknown = "unknown"
)

type Metrics struct {
	Registrations        *prometheus.CounterVec
	RegistrationDuration prometheus.Histogram
}

// New registers the collectors with reg. Pass prometheus.DefaultRegisterer in
// production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Registrations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "plate_registry_registrations_total",
			Help: "Plate registration attempts by outcome",
		}, []string{"category", "outcome"}),
		RegistrationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "plate_registry_registration_duration_seconds",
			Help:    "Duration of plate registrations including repository calls",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

func (m *Metrics) IncrementOutcome(category model.CustomerCategory, outcome model.RegistrationOutcome) {
	m.Registrations.WithLabelValues(categoryLabel(category), string(outcome)).Inc()
}

func (m *Metrics) IncrementError(category model.CustomerCategory) {
	m.Registrations.WithLabelValues(categoryLabel(category), outcomeError).Inc()
}

func (m *Metrics) ObserveRegistration(start time.Time) {
	m.RegistrationDuration.Observe(time.Since(start).Seconds())
}

// categoryLabel keeps the label set closed whatever callers pass in.
func categoryLabel(category model.CustomerCategory) string {
	if !category.IsValid() {
		return categoryUnknown
	}
	return string(category)
}
