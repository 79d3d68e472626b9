package app

import (
	"database/sql"

	"go-leave/internal/attendance"
	"go-leave/internal/config"
	"go-leave/internal/employee"
	"go-leave/internal/holiday"
	"go-leave/internal/leave"
	"go-leave/internal/messaging/kafka"
	"go-leave/internal/metrics"
	"go-leave/internal/middleware"
	"go-leave/internal/rbac"
	"go-leave/internal/rbac/infra"
	"go-leave/internal/shared/dateutil"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func newRBACService(logger *zap.Logger) (rbac.Service, error) {
	enforcer, err := infra.NewEnforcer("")
	if err != nil {
		return nil, err
	}
	return rbac.NewService(enforcer, rbac.DefaultPolicy, rbac.RoleInheritance, logger)
}

func registerModules(
	router *gin.Engine,
	cfg config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	m *metrics.Metrics,
	logger *zap.Logger,
) error {
	clock := dateutil.SystemClock()

	// --- Repositories ---
	attendanceRepo := attendance.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	holidayRepo := holiday.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	leaveTypeRepo := leave.NewTypeRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	rbacService, err := newRBACService(logger)
	if err != nil {
		return err
	}

	// --- Services ---
	employeeService := employee.NewService(employeeRepo, rdb, logger)
	holidayService := holiday.NewService(holidayRepo, logger)
	leaveService := leave.NewServiceWithOutbox(db, leaveRepo, leaveTypeRepo, holidayRepo, outboxRepo, m, clock, cfg.Location, logger)
	leaveTypeService := leave.NewTypeService(leaveTypeRepo, employeeService, logger)
	attendanceService := attendance.NewService(db, attendanceRepo, holidayRepo, employeeService, m, clock, cfg.Location, logger)

	// --- Handlers ---
	attendanceHandler := attendance.NewHandler(attendanceService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	holidayHandler := holiday.NewHandler(holidayService, logger)
	leaveHandler := leave.NewHandler(leaveService, leaveTypeService, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(cfg.JWTSecret), middleware.ContextLogger(logger))
	{
		attendance.RegisterRoutes(api, attendanceHandler, rbacService,
			middleware.RateLimitByUser(rate.Limit(cfg.AttendanceRateLimit), cfg.AttendanceRateBurst))
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		holiday.RegisterRoutes(api, holidayHandler, rbacService)
		leave.RegisterRoutes(api, leaveHandler, rbacService, middleware.Idempotency(rdb, logger))
		rbac.RegisterRoutes(api, rbacHandler)
	}

	return nil
}
