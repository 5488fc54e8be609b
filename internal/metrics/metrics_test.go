package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"plate-registry/internal/model"
)

func TestMetricsCountOutcomes(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.IncrementOutcome(model.CustomerCategoryTaxi, model.RegistrationOutcomeSuccess)
	m.IncrementOutcome(model.CustomerCategoryTaxi, model.RegistrationOutcomeSuccess)
	m.IncrementError(model.CustomerCategoryNormal)
	m.ObserveRegistration(time.Now())

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Registrations.WithLabelValues("TAXI", "SUCCESS")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Registrations.WithLabelValues("NORMAL", "error")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.RegistrationDuration))
}

func TestMetricsUnknownCategoryLabel(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.IncrementOutcome(model.CustomerCategory("BUS"), model.RegistrationOutcomeInvalidFormat)
	m.IncrementOutcome(model.CustomerCategory("TRAM"), model.RegistrationOutcomeInvalidFormat)
	m.IncrementError(model.CustomerCategory(""))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Registrations.WithLabelValues("unknown", "INVALID_FORMAT")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Registrations.WithLabelValues("unknown", "error")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.Registrations))
}
