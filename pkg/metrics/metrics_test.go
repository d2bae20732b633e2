package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_IncBookingOutcome(t *testing.T) {
	m := NewWithRegisterer("carwash", prometheus.NewRegistry())

	m.IncBookingOutcome(OutcomeCreated)
	m.IncBookingOutcome(OutcomeCreated)
	m.IncBookingOutcome(OutcomeRejected)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingAttempts.WithLabelValues("carwash", OutcomeCreated)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingAttempts.WithLabelValues("carwash", OutcomeRejected)))
}

func TestMetrics_NilReceiver(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncBookingOutcome(OutcomeCreated)
		m.IncNotification("sent")
	})
}
