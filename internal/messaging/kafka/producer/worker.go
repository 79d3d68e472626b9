package producer

import (
	"context"
	"time"

	"go-leave/internal/messaging/kafka"
	"go-leave/internal/metrics"

	"go.uber.org/zap"
)

const batchSize = 50

type Worker struct {
	repo         kafka.OutboxRepository
	writer       MessageWriter
	metrics      *metrics.Metrics
	pollInterval time.Duration
	logger       *zap.Logger
}

func NewWorker(
	repo kafka.OutboxRepository,
	writer MessageWriter,
	m *metrics.Metrics,
	pollInterval time.Duration,
	logger *zap.Logger,
) *Worker {
	if pollInterval <= 0 {
		pollInterval = 3 * time.Second
	}
	if logger == nil {
		logger = zap.L()
	}
	return &Worker{
		repo:         repo,
		writer:       writer,
		metrics:      m,
		pollInterval: pollInterval,
		logger:       logger.Named("kafka.producer.worker"),
	}
}

// Run polls the outbox until ctx is done.
func (w *Worker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.logger.Info("outbox worker started", zap.Duration("poll_interval", w.pollInterval))

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("outbox worker stopped")
			return
		case <-ticker.C:
			if _, err := w.ProcessPending(ctx); err != nil {
				w.logger.Error("process outbox events failed", zap.Error(err))
			}
		}
	}
}

// ProcessPending publishes one batch and returns how many events were sent.
func (w *Worker) ProcessPending(ctx context.Context) (int, error) {
	events, err := w.repo.ListPending(ctx, batchSize)
	if err != nil {
		return 0, err
	}

	if len(events) == 0 {
		return 0, nil
	}

	w.logger.Info("processing pending outbox events", zap.Int("count", len(events)))

	sent := 0
	for _, event := range events {
		if err := publishEvent(ctx, w.writer, event); err != nil {
			w.logger.Error("publish outbox event failed",
				zap.String("outbox_id", event.ID),
				zap.String("event_type", event.EventType),
				zap.String("topic", event.Topic),
				zap.Int("retry_count", event.RetryCount),
				zap.Error(err),
			)
			w.metrics.IncOutbox(kafka.OutboxStatusFailed)
			if err := w.repo.MarkFailed(ctx, event.ID, err.Error()); err != nil {
				w.logger.Error("mark outbox failed failed", zap.String("outbox_id", event.ID), zap.Error(err))
			}
			continue
		}

		if err := w.repo.MarkSent(ctx, event.ID); err != nil {
			w.logger.Error("mark outbox sent failed",
				zap.String("outbox_id", event.ID),
				zap.Error(err),
			)
			continue
		}

		sent++
		w.metrics.IncOutbox(kafka.OutboxStatusSent)
		w.logger.Info("outbox event sent",
			zap.String("outbox_id", event.ID),
			zap.String("event_type", event.EventType),
			zap.String("topic", event.Topic),
		)
	}

	return sent, nil
}
