package app

import (
	"context"
	"fmt"

	"go-leave/internal/config"
	"go-leave/internal/employee"
	"go-leave/internal/holiday"
	"go-leave/internal/messaging/kafka"
	"go-leave/internal/messaging/kafka/producer"
	"go-leave/internal/metrics"
	"go-leave/internal/reminder"
	"go-leave/internal/shared/connection"
	"go-leave/internal/shared/dateutil"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// RunWorker publishes the outbox to Kafka and schedules the daily attendance
// reminder until SIGINT/SIGTERM.
func RunWorker(cfg config.Config) error {
	logger := zap.L().Named("app.worker")

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

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, cfg.ConnectRetries)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	m := metrics.New(prometheus.DefaultRegisterer)
	outboxRepo := kafka.NewOutboxRepository(sqlDB)
	directory := employee.NewService(employee.NewRepository(gormDB), rdb, logger)
	holidays := holiday.NewService(holiday.NewRepository(gormDB), logger)

	job := reminder.NewJob(sqlDB, holidays, directory, outboxRepo, m, dateutil.SystemClock(), cfg.Location, logger)
	scheduler := cron.New(cron.WithLocation(cfg.Location))
	if _, err := reminder.Schedule(scheduler, cfg.ReminderSchedule, job); err != nil {
		return fmt.Errorf("schedule reminder %q: %w", cfg.ReminderSchedule, err)
	}
	scheduler.Start()
	logger.Info("reminder scheduled", zap.String("spec", cfg.ReminderSchedule), zap.String("tz", cfg.Location.String()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	worker := producer.NewWorker(outboxRepo, kafkaWriter, m, cfg.OutboxPollInterval, logger)
	go worker.Run(ctx)

	metricsSrv := serveMetrics(cfg.MetricsPort, logger)

	sig := waitForSignal()
	logger.Info("worker shutting down", zap.String("signal", sig.String()))

	cancel()
	<-scheduler.Stop().Done()
	shutdownMetrics(metricsSrv)

	return nil
}
