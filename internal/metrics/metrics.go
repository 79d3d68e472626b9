package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for leave, attendance and the outbox.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	LeaveSubmitted     prometheus.Counter
	LeaveTransitions   *prometheus.CounterVec
	BalanceSkipped     prometheus.Counter
	AttendanceMarked   *prometheus.CounterVec
	AttendanceBlocked  prometheus.Counter
	OutboxPublished    *prometheus.CounterVec
	RemindersEnqueued  prometheus.Counter
	NotificationsTotal *prometheus.CounterVec
}

// New registers every metric on reg. Passing prometheus.DefaultRegisterer
// exposes them on the default /metrics handler.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		LeaveSubmitted: f.NewCounter(prometheus.CounterOpts{
			Name: "leave_requests_submitted_total",
			Help: "Leave requests accepted by submit",
		}),
		LeaveTransitions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "leave_status_transitions_total",
			Help: "Audited leave status changes by previous and new status",
		}, []string{"from", "to"}),
		BalanceSkipped: f.NewCounter(prometheus.CounterOpts{
			Name: "leave_balance_decrement_skipped_total",
			Help: "Approvals that found no balance row to decrement",
		}),
		AttendanceMarked: f.NewCounterVec(prometheus.CounterOpts{
			Name: "attendance_marked_total",
			Help: "Attendance rows written by source",
		}, []string{"source"}), // source: "self", "bulk"
		AttendanceBlocked: f.NewCounter(prometheus.CounterOpts{
			Name: "attendance_blocked_total",
			Help: "Attendance marks refused because the date is a holiday",
		}),
		OutboxPublished: f.NewCounterVec(prometheus.CounterOpts{
			Name: "outbox_events_processed_total",
			Help: "Outbox events handled by the worker by result",
		}, []string{"result"}), // result: "sent", "failed"
		RemindersEnqueued: f.NewCounter(prometheus.CounterOpts{
			Name: "attendance_reminders_enqueued_total",
			Help: "Attendance reminder events written to the outbox",
		}),
		NotificationsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "notifications_delivered_total",
			Help: "Notifications handed to the notifier by event type",
		}, []string{"event_type"}),
	}
}

func (m *Metrics) IncLeaveSubmitted() {
	if m != nil {
		m.LeaveSubmitted.Inc()
	}
}

func (m *Metrics) IncLeaveTransition(from, to string) {
	if m != nil {
		m.LeaveTransitions.WithLabelValues(from, to).Inc()
	}
}

func (m *Metrics) IncBalanceSkipped() {
	if m != nil {
		m.BalanceSkipped.Inc()
	}
}

func (m *Metrics) AddAttendanceMarked(source string, n int) {
	if m != nil && n > 0 {
		m.AttendanceMarked.WithLabelValues(source).Add(float64(n))
	}
}

func (m *Metrics) IncAttendanceBlocked() {
	if m != nil {
		m.AttendanceBlocked.Inc()
	}
}

func (m *Metrics) IncOutbox(result string) {
	if m != nil {
		m.OutboxPublished.WithLabelValues(result).Inc()
	}
}

func (m *Metrics) AddRemindersEnqueued(n int) {
	if m != nil && n > 0 {
		m.RemindersEnqueued.Add(float64(n))
	}
}

func (m *Metrics) IncNotification(eventType string) {
	if m != nil {
		m.NotificationsTotal.WithLabelValues(eventType).Inc()
	}
}
