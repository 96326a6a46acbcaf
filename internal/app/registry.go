package app

import (
	"database/sql"
	"time"

	"go-attendance/internal/attendance"
	"go-attendance/internal/auth"
	"go-attendance/internal/employee"
	"go-attendance/internal/leave"
	"go-attendance/internal/messaging/kafka"
	"go-attendance/internal/middleware"
	"go-attendance/internal/payroll"
	"go-attendance/internal/report"
	"go-attendance/internal/schedule"
	"go-attendance/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	loc *time.Location,
) error {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	scheduleRepo := schedule.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	reportRepo := report.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, counterRepo, outboxRepo)
	scheduleService := schedule.NewService(scheduleRepo, employeeRepo)
	attendanceService := attendance.NewService(db, attendanceRepo, employeeRepo, scheduleService, loc)
	payrollService := payroll.NewService(attendanceRepo, employeeRepo)
	leaveService := leave.NewService(db, leaveRepo, employeeRepo)
	reportService := report.NewService(reportRepo, rdb, loc)

	sessionStore := auth.NewRedisSessionStore(rdb)
	authService := auth.NewService(employeeRepo, sessionStore, leaveService, auth.NewNoopVerifier())

	// --- Middleware ---
	session := middleware.SessionAuth(authService)
	idempotency := middleware.Idempotency(rdb)
	// login dibatasi per IP: 1 rps, burst 5
	loginRateLimit := middleware.RateLimitByIP(rate.Limit(1), 5)
	// endpoint tulis (clock, submit cuti) dibatasi per employee: 2 rps, burst 5
	writeRateLimit := middleware.RateLimitByEmployee(rate.Limit(2), 5)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)
	scheduleHandler := schedule.NewHandler(scheduleService)
	attendanceHandler := attendance.NewHandler(attendanceService, employeeService)
	payrollHandler := payroll.NewHandler(payrollService, employeeService)
	leaveHandler := leave.NewHandler(leaveService, employeeService)
	reportHandler := report.NewHandler(reportService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, session, loginRateLimit)
		employee.RegisterRoutes(api, employeeHandler, session, employeeService)
		schedule.RegisterRoutes(api, scheduleHandler, session, employeeService)
		attendance.RegisterRoutes(api, attendanceHandler, session, idempotency, writeRateLimit)
		payroll.RegisterRoutes(api, payrollHandler, session)
		leave.RegisterRoutes(api, leaveHandler, session, idempotency, writeRateLimit)
		report.RegisterRoutes(api, reportHandler, session, employeeService)
	}

	return nil
}
