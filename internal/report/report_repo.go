package report

import (
	"context"

	"go-attendance/internal/attendance"
	"go-attendance/internal/employee"
	"go-attendance/internal/leave"

	"gorm.io/gorm"
)

//go:generate mockgen -source=report_repo.go -destination=mock/report_repo_mock.go -package=mock
type Repository interface {
	CountActiveEmployees(ctx context.Context) (int64, error)
	CountAttendanceByStatus(ctx context.Context, date, status string) (int64, error)
	CountPendingLeaves(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CountActiveEmployees(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&employee.Employee{}).
		Where("status = ?", employee.StatusActive).
		Count(&n).Error
	return n, err
}

func (r *repository) CountAttendanceByStatus(ctx context.Context, date, status string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&attendance.Attendance{}).
		Where("attendance_date = ?", date).
		Where("status = ?", status).
		Count(&n).Error
	return n, err
}

func (r *repository) CountPendingLeaves(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&leave.LeaveRequest{}).
		Where("status = ?", leave.StatusPending).
		Count(&n).Error
	return n, err
}
