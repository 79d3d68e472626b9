package app

import (
	"context"
	"fmt"

	"go-leave/internal/config"
	"go-leave/internal/employee"
	"go-leave/internal/events"
	"go-leave/internal/messaging/kafka/consumer"
	"go-leave/internal/metrics"
	"go-leave/internal/notification"
	"go-leave/internal/shared/connection"

	"github.com/prometheus/client_golang/prometheus"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer delivers leave status and attendance reminder events to the
// notifier until SIGINT/SIGTERM.
func RunConsumer(cfg config.Config) error {
	logger := zap.L().Named("app.consumer")

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	gormDB, err := connection.ConnectGORMWithRetry(cfg)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.ConnectRetries)
	if err != nil {
		return err
	}
	defer rdb.Close()

	m := metrics.New(prometheus.DefaultRegisterer)
	directory := employee.NewService(employee.NewRepository(gormDB), rdb, logger)
	notifier := notification.NewLogNotifier(directory, m, logger)

	newReader := func(topic string) *kafkago.Reader {
		return kafkago.NewReader(kafkago.ReaderConfig{
			Brokers:        []string{cfg.KafkaBroker},
			Topic:          topic,
			GroupID:        cfg.ConsumerGroup,
			CommitInterval: 0,
			StartOffset:    kafkago.FirstOffset,
		})
	}

	leaveReader := newReader(events.LeaveStatusChangedTopic)
	defer leaveReader.Close()
	reminderReader := newReader(events.AttendanceReminderTopic)
	defer reminderReader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.Run(ctx, leaveReader, "leave_status", consumer.LeaveStatusHandler(notifier), consumer.DefaultRetry, logger)
	go consumer.Run(ctx, reminderReader, "attendance_reminder", consumer.AttendanceReminderHandler(notifier), consumer.DefaultRetry, logger)

	metricsSrv := serveMetrics(cfg.MetricsPort, logger)

	sig := waitForSignal()
	logger.Info("consumer shutting down", zap.String("signal", sig.String()))

	cancel()
	shutdownMetrics(metricsSrv)

	return nil
}
