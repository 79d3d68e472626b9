package app

import (
	"context"
	"net/http"
	"time"

	"go-leave/internal/config"
	"go-leave/internal/metrics"
	"go-leave/internal/middleware"
	"go-leave/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BuildApp connects infrastructure, migrates the schema and mounts every
// route on router. The returned func releases the connections.
func BuildApp(router *gin.Engine, cfg config.Config) (func(), error) {
	logger := zap.L()

	gormDB, err := connection.ConnectGORMWithRetry(cfg)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	if err := Migrate(gormDB); err != nil {
		sqlDB.Close()
		return nil, err
	}
	logger.Info("database migrated")

	rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.ConnectRetries)
	if err != nil {
		sqlDB.Close()
		return nil, err
	}

	m := metrics.New(prometheus.DefaultRegisterer)

	router.Use(middleware.RateLimitByIP(50, 100))
	registerOps(router, gormDB, rdb, promhttp.Handler())

	if err := registerModules(router, cfg, sqlDB, gormDB, rdb, m, logger); err != nil {
		rdb.Close()
		sqlDB.Close()
		return nil, err
	}

	return func() {
		_ = rdb.Close()
		_ = sqlDB.Close()
	}, nil
}

// registerOps mounts /healthz and /metrics outside the authenticated API.
func registerOps(router *gin.Engine, gormDB *gorm.DB, rdb *redis.Client, metricsHandler http.Handler) {
	router.GET("/metrics", gin.WrapH(metricsHandler))
	router.GET("/healthz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := gin.H{"database": "ok", "redis": "ok"}
		code := http.StatusOK

		if sqlDB, err := gormDB.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
			status["database"] = "down"
			code = http.StatusServiceUnavailable
		}
		if err := rdb.Ping(ctx).Err(); err != nil {
			status["redis"] = "down"
			code = http.StatusServiceUnavailable
		}

		c.JSON(code, status)
	})
}
