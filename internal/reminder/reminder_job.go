// Package reminder nudges admins every working morning to record attendance.
package reminder

import (
	"context"
	"database/sql"
	"time"

	"go-leave/internal/employee"
	"go-leave/internal/events"
	"go-leave/internal/holiday"
	"go-leave/internal/messaging/kafka"
	"go-leave/internal/metrics"
	"go-leave/internal/shared/dateutil"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const runTimeout = time.Minute

type Job struct {
	db        *sql.DB
	holidays  holiday.Service
	directory employee.Directory
	outbox    kafka.OutboxRepository
	metrics   *metrics.Metrics
	clock     dateutil.Clock
	loc       *time.Location
	logger    *zap.Logger
}

func NewJob(
	db *sql.DB,
	holidays holiday.Service,
	directory employee.Directory,
	outbox kafka.OutboxRepository,
	m *metrics.Metrics,
	clock dateutil.Clock,
	loc *time.Location,
	logger ...*zap.Logger,
) *Job {
	l := zap.L().Named("reminder.job")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("reminder.job")
	}
	if clock == nil {
		clock = dateutil.SystemClock()
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Job{
		db:        db,
		holidays:  holidays,
		directory: directory,
		outbox:    outbox,
		metrics:   m,
		clock:     clock,
		loc:       loc,
		logger:    l,
	}
}

// Run enqueues one reminder per admin for today and returns how many were
// written. Nothing is written on a holiday.
func (j *Job) Run(ctx context.Context) (int, error) {
	today := dateutil.Today(j.clock, j.loc)
	date := dateutil.Format(today)

	isHoliday, err := j.holidays.IsHoliday(ctx, today)
	if err != nil {
		j.logger.Error("reminder holiday lookup failed", zap.Error(err))
		return 0, err
	}
	if isHoliday {
		j.logger.Info("reminder skipped on holiday", zap.String("date", date))
		return 0, nil
	}

	admins, err := j.directory.ListAdmins(ctx)
	if err != nil {
		j.logger.Error("reminder list admins failed", zap.Error(err))
		return 0, err
	}
	if len(admins) == 0 {
		j.logger.Warn("reminder has no admins to notify", zap.String("date", date))
		return 0, nil
	}

	tx, err := j.db.BeginTx(ctx, nil)
	if err != nil {
		j.logger.Error("reminder begin tx failed", zap.Error(err))
		return 0, err
	}
	defer tx.Rollback()

	outbox := j.outbox.WithTx(tx)
	now := j.clock.Now().UTC()
	for _, admin := range admins {
		event, err := kafka.NewEvent(
			events.AttendanceReminderTopic,
			events.AttendanceReminderType,
			"attendance",
			admin.ID,
			"",
			events.AttendanceReminderEvent{
				EventType:  events.AttendanceReminderType,
				AdminID:    admin.ID,
				AdminEmail: admin.Email,
				AdminName:  admin.FullName,
				Date:       date,
				OccurredAt: now,
			},
		)
		if err != nil {
			return 0, err
		}
		if err := outbox.Create(ctx, event); err != nil {
			j.logger.Error("reminder outbox write failed", zap.String("admin_id", admin.ID), zap.Error(err))
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		j.logger.Error("reminder commit failed", zap.Error(err))
		return 0, err
	}

	j.metrics.AddRemindersEnqueued(len(admins))
	j.logger.Info("reminders enqueued", zap.String("date", date), zap.Int("count", len(admins)))
	return len(admins), nil
}

// Schedule registers the job on c under spec. Each run gets its own timeout.
func Schedule(c *cron.Cron, spec string, job *Job) (cron.EntryID, error) {
	return c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()
		if _, err := job.Run(ctx); err != nil {
			job.logger.Error("reminder run failed", zap.Error(err))
		}
	})
}
