package metrics_test

import (
	"testing"

	"go-leave/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	m.IncLeaveSubmitted()
	m.IncLeaveTransition("PENDING", "APPROVED")
	m.IncLeaveTransition("PENDING", "APPROVED")
	m.AddAttendanceMarked("bulk", 3)
	m.AddAttendanceMarked("bulk", 0)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.LeaveSubmitted))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.LeaveTransitions.WithLabelValues("PENDING", "APPROVED")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.AttendanceMarked.WithLabelValues("bulk")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *metrics.Metrics

	assert.NotPanics(t, func() {
		m.IncLeaveSubmitted()
		m.IncBalanceSkipped()
		m.IncOutbox("sent")
		m.AddRemindersEnqueued(2)
	})
}
