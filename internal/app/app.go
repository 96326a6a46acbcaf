package app

import (
	"os"
	"time"

	"go-attendance/internal/attendance"
	"go-attendance/internal/employee"
	"go-attendance/internal/leave"
	"go-attendance/internal/middleware"
	"go-attendance/internal/schedule"
	"go-attendance/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp menyiapkan infrastruktur, migrasi, seeding, dan route registration.
func BuildApp(router *gin.Engine) error {
	logger := zap.L().Named("app")

	// 1. Setup Infrastructure
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	logger.Info("redis connection established")

	// 2. Timezone aplikasi: kunci tanggal attendance dihitung di sini
	loc := loadTimezone(logger)

	// 3. Schema + data awal
	if err := gormDB.AutoMigrate(
		&employee.Employee{},
		&schedule.Schedule{},
		&attendance.Attendance{},
		&leave.LeaveRequest{},
		&leave.LeaveCredit{},
	); err != nil {
		return err
	}
	if err := migrateInfraTables(gormDB); err != nil {
		return err
	}
	if err := seedDefaults(gormDB, logger); err != nil {
		return err
	}

	// 4. Register Modules & Routes
	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))

	return registerModules(router, sqlDB, gormDB, redisClient, loc)
}

func loadTimezone(logger *zap.Logger) *time.Location {
	tz := os.Getenv("APP_TIMEZONE")
	if tz == "" {
		tz = "Asia/Jakarta"
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		logger.Warn("invalid APP_TIMEZONE, falling back to UTC", zap.String("tz", tz))
		return time.UTC
	}
	return loc
}
