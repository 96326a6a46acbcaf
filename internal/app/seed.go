package app

import (
	"context"
	"errors"
	"os"
	"time"

	"go-attendance/internal/employee"
	"go-attendance/internal/leave"
	"go-attendance/internal/permission"
	"go-attendance/internal/schedule"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// migrateInfraTables membuat tabel yang tidak dikelola lewat entity gorm:
// counters (nomor urut employee) dan outbox_events (relay Kafka, raw SQL).
func migrateInfraTables(gormDB *gorm.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS counters (
			counter_type VARCHAR(50) PRIMARY KEY,
			last_value   BIGINT NOT NULL DEFAULT 0,
			updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS outbox_events (
			id             UUID PRIMARY KEY,
			request_id     VARCHAR(100),
			aggregate_type VARCHAR(50) NOT NULL,
			aggregate_id   VARCHAR(100) NOT NULL,
			event_type     VARCHAR(100) NOT NULL,
			topic          VARCHAR(200) NOT NULL,
			payload        JSONB NOT NULL,
			status         VARCHAR(20) NOT NULL DEFAULT 'pending',
			retry_count    INT NOT NULL DEFAULT 0,
			error_message  VARCHAR(500),
			next_retry_at  TIMESTAMPTZ,
			processed_at   TIMESTAMPTZ,
			created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_outbox_events_status ON outbox_events (status, next_retry_at)`,
	}

	for _, stmt := range statements {
		if err := gormDB.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

// seedDefaults mengisi schedule bawaan dan akun admin pertama. Idempotent:
// dicek per record, jalan aman di setiap startup.
func seedDefaults(gormDB *gorm.DB, logger *zap.Logger) error {
	ctx := context.Background()

	if err := seedSchedules(ctx, gormDB, logger); err != nil {
		return err
	}
	return seedAdmin(ctx, gormDB, logger)
}

func seedSchedules(ctx context.Context, gormDB *gorm.DB, logger *zap.Logger) error {
	defaults := []schedule.Schedule{
		{
			ID:                       uuid.New(),
			Code:                     "store-based",
			Name:                     "Store Based",
			Type:                     schedule.TypeFixed,
			StartTime:                "08:00",
			EndTime:                  "17:00",
			WorkingDays:              "Mon,Tue,Wed,Thu,Fri,Sat",
			BreakMinutes:             60,
			OvertimeThresholdMinutes: 480,
		},
		{
			ID:                       uuid.New(),
			Code:                     "head-office",
			Name:                     "Head Office",
			Type:                     schedule.TypeFixed,
			StartTime:                "09:00",
			EndTime:                  "18:00",
			WorkingDays:              "Mon,Tue,Wed,Thu,Fri",
			BreakMinutes:             60,
			OvertimeThresholdMinutes: 480,
		},
		{
			ID:                       uuid.New(),
			Code:                     "open-schedule",
			Name:                     "Open Schedule",
			Type:                     schedule.TypeFlexible,
			WorkingDays:              "Mon,Tue,Wed,Thu,Fri,Sat,Sun",
			BreakMinutes:             0,
			OvertimeThresholdMinutes: 480,
		},
	}

	repo := schedule.NewRepository(gormDB)
	for i := range defaults {
		_, err := repo.FindByCode(ctx, defaults[i].Code)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := repo.Create(ctx, &defaults[i]); err != nil {
			return err
		}
		logger.Info("seeded default schedule", zap.String("code", defaults[i].Code))
	}
	return nil
}

func seedAdmin(ctx context.Context, gormDB *gorm.DB, logger *zap.Logger) error {
	number := os.Getenv("ADMIN_EMPLOYEE_NUMBER")
	if number == "" {
		number = "EMP-000001"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		logger.Warn("ADMIN_PASSWORD not set, skipping admin seeding")
		return nil
	}

	repo := employee.NewRepository(gormDB)
	if _, err := repo.FindByEmployeeNumber(ctx, number); err == nil {
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &employee.Employee{
		ID:              uuid.New(),
		EmployeeNumber:  number,
		FirstName:       "System",
		LastName:        "Administrator",
		Email:           os.Getenv("ADMIN_EMAIL"),
		HireDate:        time.Now().UTC(),
		Position:        "Administrator",
		Department:      "head-office",
		ScheduleGroup:   "head-office",
		Status:          employee.StatusActive,
		PasswordHash:    string(hash),
		Permissions:     permission.AllGranted(),
		Groups:          "head-office",
		DailyRateCents:  0,
		HourlyRateCents: 0,
	}
	if err := repo.Create(ctx, admin); err != nil {
		return err
	}

	// Admin tidak lewat jalur event Kafka, saldo cuti diisi langsung
	leaveRepo := leave.NewRepository(gormDB)
	if err := leaveRepo.SeedDefaultCredits(ctx, admin.ID.String()); err != nil {
		return err
	}

	logger.Info("seeded admin employee", zap.String("employee_number", number))
	return nil
}
