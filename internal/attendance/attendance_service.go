package attendance

import (
	"context"
	"database/sql"
	"errors"
	"time"

	attendanceerrors "go-attendance/internal/attendance/errors"
	"go-attendance/internal/employee"
	"go-attendance/internal/schedule"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// lateGrace: clock-in masih dihitung PRESENT sampai sekian menit setelah
// jam masuk schedule.
const lateGrace = 15 * time.Minute

// EmployeeDirectory adalah interface lokal; employee.Repository yang implement.
type EmployeeDirectory interface {
	FindByID(ctx context.Context, id string) (*employee.Employee, error)
}

// ScheduleSource adalah interface lokal; schedule.Service yang implement.
type ScheduleSource interface {
	GetByCode(ctx context.Context, code string) (*schedule.Schedule, error)
}

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	ClockIn(ctx context.Context, employeeID string, at time.Time) (AttendanceResponse, error)
	ClockOut(ctx context.Context, employeeID string, at time.Time) (AttendanceResponse, error)
	GetAll(ctx context.Context, actorID string, canReadAll bool) ([]AttendanceResponse, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]AttendanceResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees EmployeeDirectory
	schedules ScheduleSource
	loc       *time.Location
}

func NewService(db *sql.DB, repo Repository, employees EmployeeDirectory, schedules ScheduleSource, loc *time.Location) Service {
	if loc == nil {
		loc = time.Local
	}
	return &service{db: db, repo: repo, employees: employees, schedules: schedules, loc: loc}
}

func (s *service) ClockIn(ctx context.Context, employeeID string, at time.Time) (AttendanceResponse, error) {
	empl, sched, err := s.loadEmployeeAndSchedule(ctx, employeeID)
	if err != nil {
		return AttendanceResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	at = at.In(s.loc)
	today := at.Format("2006-01-02")

	existing, err := qtx.FindByEmployeeAndDate(ctx, employeeID, today)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return AttendanceResponse{}, err
	}
	if err == nil && existing != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyClockedIn
	}

	// Clock-in kemarin yang lupa di-clock-out tetap memblokir
	open, err := qtx.FindOpenByEmployee(ctx, employeeID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return AttendanceResponse{}, err
	}
	if err == nil && open != nil {
		return AttendanceResponse{}, attendanceerrors.ErrOpenAttendance
	}

	status := StatusPresent
	if start, ok := sched.StartOn(at, s.loc); ok {
		if at.After(start.Add(lateGrace)) {
			status = StatusLate
		}
	}

	row := &Attendance{
		ID:             uuid.New(),
		EmployeeID:     empl.ID,
		AttendanceDate: today,
		TimeIn:         at,
		Status:         status,
	}

	if err := qtx.Create(ctx, row); err != nil {
		return AttendanceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}
	return ToAttendanceResponse(row), nil
}

func (s *service) ClockOut(ctx context.Context, employeeID string, at time.Time) (AttendanceResponse, error) {
	_, sched, err := s.loadEmployeeAndSchedule(ctx, employeeID)
	if err != nil {
		return AttendanceResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	at = at.In(s.loc)

	row, err := qtx.FindOpenByEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrNoOpenClockIn
		}
		return AttendanceResponse{}, err
	}

	if !at.After(row.TimeIn) {
		return AttendanceResponse{}, attendanceerrors.ErrClockOutBeforeClockIn
	}

	worked := durationHundredths(at.Sub(row.TimeIn))
	threshold := thresholdHundredths(sched.OvertimeThresholdMinutes)

	overtime := int64(0)
	if worked > threshold {
		overtime = worked - threshold
	}

	row.TimeOut = &at
	row.HoursWorkedHundredths = worked
	row.OvertimeHundredths = overtime

	if err := qtx.Update(ctx, row); err != nil {
		return AttendanceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}
	return ToAttendanceResponse(row), nil
}

func (s *service) GetAll(ctx context.Context, actorID string, canReadAll bool) ([]AttendanceResponse, error) {
	var (
		rows []Attendance
		err  error
	)
	if canReadAll {
		rows, err = s.repo.FindAll(ctx)
	} else {
		rows, err = s.repo.FindByEmployee(ctx, actorID)
	}
	if err != nil {
		return nil, err
	}
	return mapToResponses(rows), nil
}

func (s *service) GetByEmployee(ctx context.Context, employeeID string) ([]AttendanceResponse, error) {
	rows, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return mapToResponses(rows), nil
}

func (s *service) loadEmployeeAndSchedule(ctx context.Context, employeeID string) (*employee.Employee, *schedule.Schedule, error) {
	empl, err := s.employees.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, attendanceerrors.ErrEmployeeNotActive
		}
		return nil, nil, err
	}
	if !empl.IsActive() {
		return nil, nil, attendanceerrors.ErrEmployeeNotActive
	}

	sched, err := s.schedules.GetByCode(ctx, empl.ScheduleGroup)
	if err != nil {
		return nil, nil, attendanceerrors.ErrScheduleNotFound
	}
	return empl, sched, nil
}

func mapToResponses(rows []Attendance) []AttendanceResponse {
	res := make([]AttendanceResponse, 0, len(rows))
	for i := range rows {
		res = append(res, ToAttendanceResponse(&rows[i]))
	}
	return res
}

// durationHundredths membulatkan durasi ke perseratus jam terdekat
// (half up). 1 perseratus jam = 36 detik = 36000 ms.
func durationHundredths(d time.Duration) int64 {
	ms := d.Milliseconds()
	return (ms + 18000) / 36000
}

// thresholdHundredths: menit ke perseratus jam, half up.
func thresholdHundredths(minutes int) int64 {
	return (int64(minutes)*100 + 30) / 60
}
