package consumer

import (
	"context"
	"encoding/json"
	"time"

	"go-leave/internal/events"
	"go-leave/internal/notification"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumers use.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// HandleFunc processes one message. A nil return commits it, as does an
// undecodable payload. Any other error is retried in place per RetryPolicy;
// once attempts run out the message is logged and committed. A group reader
// has already advanced past it, so it would not be redelivered anyway.
type HandleFunc func(ctx context.Context, msg kafkago.Message) error

// RetryPolicy bounds in-place handler retries. Backoff grows linearly with
// the attempt number and is also the pause after a failed fetch.
type RetryPolicy struct {
	Attempts int
	Backoff  time.Duration
}

var DefaultRetry = RetryPolicy{Attempts: 3, Backoff: 2 * time.Second}

type discardError struct{ err error }

func (e discardError) Error() string { return e.err.Error() }

func discard(err error) error { return discardError{err: err} }

// Run fetches messages until ctx is done.
func Run(ctx context.Context, reader MessageReader, name string, handle HandleFunc, retry RetryPolicy, logger *zap.Logger) {
	log := logger.Named("kafka.consumer." + name)
	if retry.Attempts < 1 {
		retry.Attempts = 1
	}
	log.Info("consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("consumer stopped")
				return
			}
			log.Error("fetch message failed", zap.Error(err))
			if !sleep(ctx, retry.Backoff) {
				log.Info("consumer stopped")
				return
			}
			continue
		}

		if err := handleWithRetry(ctx, msg, handle, retry, log); err != nil {
			if ctx.Err() != nil {
				log.Info("consumer stopped")
				return
			}
			if d, ok := err.(discardError); ok {
				log.Error("discarding message",
					zap.Int64("offset", msg.Offset),
					zap.Error(d.err),
				)
			} else {
				log.Error("dropping message after retries",
					zap.Int64("offset", msg.Offset),
					zap.Int("attempts", retry.Attempts),
					zap.Error(err),
				)
			}
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit message failed", zap.Error(err))
		}
	}
}

func handleWithRetry(ctx context.Context, msg kafkago.Message, handle HandleFunc, retry RetryPolicy, log *zap.Logger) error {
	var err error
	for attempt := 1; attempt <= retry.Attempts; attempt++ {
		err = handle(ctx, msg)
		if err == nil {
			return nil
		}
		if _, ok := err.(discardError); ok {
			return err
		}
		if attempt == retry.Attempts {
			break
		}
		log.Warn("handle message failed, retrying",
			zap.Int64("offset", msg.Offset),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		if !sleep(ctx, time.Duration(attempt)*retry.Backoff) {
			return ctx.Err()
		}
	}
	return err
}

// sleep waits for d or until ctx is done; false means ctx ended first.
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// LeaveStatusHandler forwards leave_status_changed events to the notifier.
func LeaveStatusHandler(notifier notification.Notifier) HandleFunc {
	return func(ctx context.Context, msg kafkago.Message) error {
		var event events.LeaveStatusChangedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return discard(err)
		}
		return notifier.LeaveStatusChanged(ctx, event)
	}
}

// AttendanceReminderHandler forwards attendance_reminder events to the notifier.
func AttendanceReminderHandler(notifier notification.Notifier) HandleFunc {
	return func(ctx context.Context, msg kafkago.Message) error {
		var event events.AttendanceReminderEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return discard(err)
		}
		return notifier.AttendanceReminder(ctx, event)
	}
}
