package notification

import (
	"context"

	"go-leave/internal/employee"
	"go-leave/internal/events"
	"go-leave/internal/metrics"

	"go.uber.org/zap"
)

// Notifier delivers domain events to people. It reads core state but never writes it.
type Notifier interface {
	LeaveStatusChanged(ctx context.Context, event events.LeaveStatusChangedEvent) error
	AttendanceReminder(ctx context.Context, event events.AttendanceReminderEvent) error
}

// LogNotifier writes each notification as a structured log line addressed to
// the recipient's email. Mail transport plugs in behind the same interface.
type LogNotifier struct {
	directory employee.Directory
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

func NewLogNotifier(directory employee.Directory, m *metrics.Metrics, logger ...*zap.Logger) *LogNotifier {
	l := zap.L().Named("notification")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification")
	}
	return &LogNotifier{directory: directory, metrics: m, logger: l}
}

func (n *LogNotifier) LeaveStatusChanged(ctx context.Context, event events.LeaveStatusChangedEvent) error {
	recipient, err := n.directory.GetByID(ctx, event.EmployeeID)
	if err != nil {
		return err
	}

	n.logger.Info("leave status notification",
		zap.String("to", recipient.Email),
		zap.String("name", recipient.FullName),
		zap.String("leave_id", event.LeaveID),
		zap.String("previous_status", event.PreviousStatus),
		zap.String("new_status", event.NewStatus),
		zap.String("period", event.StartDate+" - "+event.EndDate),
	)
	n.metrics.IncNotification(event.EventType)
	return nil
}

func (n *LogNotifier) AttendanceReminder(ctx context.Context, event events.AttendanceReminderEvent) error {
	n.logger.Info("attendance reminder notification",
		zap.String("to", event.AdminEmail),
		zap.String("name", event.AdminName),
		zap.String("date", event.Date),
	)
	n.metrics.IncNotification(event.EventType)
	return nil
}
