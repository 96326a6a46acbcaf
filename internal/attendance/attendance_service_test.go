package attendance

import (
	"context"
	"database/sql"
	"testing"
	"time"

	attendanceerrors "go-attendance/internal/attendance/errors"
	"go-attendance/internal/employee"
	"go-attendance/internal/schedule"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	withTxFn                func(tx *sql.Tx) Repository
	createFn                func(ctx context.Context, a *Attendance) error
	findByEmployeeAndDateFn func(ctx context.Context, employeeID, date string) (*Attendance, error)
	findOpenByEmployeeFn    func(ctx context.Context, employeeID string) (*Attendance, error)
	findAllFn               func(ctx context.Context) ([]Attendance, error)
	findByEmployeeFn        func(ctx context.Context, employeeID string) ([]Attendance, error)
	findCompletedInRangeFn  func(ctx context.Context, employeeID, startDate, endDate string) ([]Attendance, error)
	updateFn                func(ctx context.Context, a *Attendance) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository              { return f.withTxFn(tx) }
func (f *fakeRepo) Create(ctx context.Context, a *Attendance) error { return f.createFn(ctx, a) }
func (f *fakeRepo) FindByEmployeeAndDate(ctx context.Context, employeeID, date string) (*Attendance, error) {
	return f.findByEmployeeAndDateFn(ctx, employeeID, date)
}
func (f *fakeRepo) FindOpenByEmployee(ctx context.Context, employeeID string) (*Attendance, error) {
	return f.findOpenByEmployeeFn(ctx, employeeID)
}
func (f *fakeRepo) FindAll(ctx context.Context) ([]Attendance, error) { return f.findAllFn(ctx) }
func (f *fakeRepo) FindByEmployee(ctx context.Context, employeeID string) ([]Attendance, error) {
	return f.findByEmployeeFn(ctx, employeeID)
}
func (f *fakeRepo) FindCompletedInRange(ctx context.Context, employeeID, startDate, endDate string) ([]Attendance, error) {
	return f.findCompletedInRangeFn(ctx, employeeID, startDate, endDate)
}
func (f *fakeRepo) Update(ctx context.Context, a *Attendance) error { return f.updateFn(ctx, a) }

type fakeDirectory struct {
	empl *employee.Employee
	err  error
}

func (f *fakeDirectory) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	return f.empl, f.err
}

type fakeScheduleSource struct {
	sched *schedule.Schedule
	err   error
}

func (f *fakeScheduleSource) GetByCode(ctx context.Context, code string) (*schedule.Schedule, error) {
	return f.sched, f.err
}

func activeEmployee() *employee.Employee {
	return &employee.Employee{
		ID:            uuid.New(),
		ScheduleGroup: "store-based",
		Status:        employee.StatusActive,
	}
}

func storeBasedSchedule() *schedule.Schedule {
	return &schedule.Schedule{
		ID:                       uuid.New(),
		Code:                     "store-based",
		Type:                     schedule.TypeFixed,
		StartTime:                "08:00",
		EndTime:                  "17:00",
		WorkingDays:              "Mon,Tue,Wed,Thu,Fri,Sat",
		BreakMinutes:             60,
		OvertimeThresholdMinutes: 480,
	}
}

func newEmptyRepo() *fakeRepo {
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.createFn = func(ctx context.Context, a *Attendance) error { return nil }
	repo.updateFn = func(ctx context.Context, a *Attendance) error { return nil }
	repo.findAllFn = func(ctx context.Context) ([]Attendance, error) { return nil, nil }
	repo.findByEmployeeFn = func(ctx context.Context, employeeID string) ([]Attendance, error) { return nil, nil }
	repo.findCompletedInRangeFn = func(ctx context.Context, employeeID, startDate, endDate string) ([]Attendance, error) {
		return nil, nil
	}
	repo.findByEmployeeAndDateFn = func(ctx context.Context, employeeID, date string) (*Attendance, error) {
		return nil, gorm.ErrRecordNotFound
	}
	repo.findOpenByEmployeeFn = func(ctx context.Context, employeeID string) (*Attendance, error) {
		return nil, gorm.ErrRecordNotFound
	}
	return repo
}

func TestService_ClockInAndClockOut(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	empl := activeEmployee()
	ctx := context.Background()

	var saved Attendance
	repo := newEmptyRepo()
	repo.createFn = func(ctx context.Context, a *Attendance) error { saved = *a; return nil }
	repo.updateFn = func(ctx context.Context, a *Attendance) error { saved = *a; return nil }
	repo.findOpenByEmployeeFn = func(ctx context.Context, employeeID string) (*Attendance, error) {
		if saved.ID == uuid.Nil || saved.TimeOut != nil {
			return nil, gorm.ErrRecordNotFound
		}
		cp := saved
		return &cp, nil
	}

	svc := NewService(db, repo,
		&fakeDirectory{empl: empl},
		&fakeScheduleSource{sched: storeBasedSchedule()},
		time.UTC,
	)

	// Masuk 08:00, pulang 19:00: 11 jam kerja, threshold 8 jam, lembur 3 jam
	in := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	out := time.Date(2026, 3, 2, 19, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectCommit()
	inResp, err := svc.ClockIn(ctx, empl.ID.String(), in)
	assert.NoError(t, err)
	assert.Equal(t, StatusPresent, inResp.Status)
	assert.Equal(t, "2026-03-02", inResp.AttendanceDate)

	mock.ExpectBegin()
	mock.ExpectCommit()
	outResp, err := svc.ClockOut(ctx, empl.ID.String(), out)
	assert.NoError(t, err)
	assert.NotNil(t, outResp.TimeOut)
	assert.Equal(t, int64(1100), outResp.HoursWorkedHundredths)
	assert.Equal(t, int64(300), outResp.OvertimeHundredths)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_ClockIn_LateAfterGrace(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	empl := activeEmployee()
	repo := newEmptyRepo()

	svc := NewService(db, repo,
		&fakeDirectory{empl: empl},
		&fakeScheduleSource{sched: storeBasedSchedule()},
		time.UTC,
	)

	// 08:16, satu menit lewat grace 15 menit
	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.ClockIn(context.Background(), empl.ID.String(),
		time.Date(2026, 3, 2, 8, 16, 0, 0, time.UTC))
	assert.NoError(t, err)
	assert.Equal(t, StatusLate, resp.Status)
}

func TestService_ClockIn_WithinGraceStillPresent(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	empl := activeEmployee()
	repo := newEmptyRepo()

	svc := NewService(db, repo,
		&fakeDirectory{empl: empl},
		&fakeScheduleSource{sched: storeBasedSchedule()},
		time.UTC,
	)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.ClockIn(context.Background(), empl.ID.String(),
		time.Date(2026, 3, 2, 8, 15, 0, 0, time.UTC))
	assert.NoError(t, err)
	assert.Equal(t, StatusPresent, resp.Status)
}

func TestService_ClockIn_FlexibleNeverLate(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	empl := activeEmployee()
	empl.ScheduleGroup = "open-schedule"
	repo := newEmptyRepo()

	flexible := &schedule.Schedule{
		ID:                       uuid.New(),
		Code:                     "open-schedule",
		Type:                     schedule.TypeFlexible,
		WorkingDays:              "Mon,Tue,Wed,Thu,Fri,Sat,Sun",
		OvertimeThresholdMinutes: 480,
	}

	svc := NewService(db, repo,
		&fakeDirectory{empl: empl},
		&fakeScheduleSource{sched: flexible},
		time.UTC,
	)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.ClockIn(context.Background(), empl.ID.String(),
		time.Date(2026, 3, 2, 13, 45, 0, 0, time.UTC))
	assert.NoError(t, err)
	assert.Equal(t, StatusPresent, resp.Status)
}

func TestService_ClockIn_Duplicate(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	empl := activeEmployee()
	repo := newEmptyRepo()
	repo.findByEmployeeAndDateFn = func(ctx context.Context, employeeID, date string) (*Attendance, error) {
		return &Attendance{ID: uuid.New()}, nil
	}

	svc := NewService(db, repo,
		&fakeDirectory{empl: empl},
		&fakeScheduleSource{sched: storeBasedSchedule()},
		time.UTC,
	)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.ClockIn(context.Background(), empl.ID.String(), time.Now().UTC())
	assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyClockedIn)
}

func TestService_ClockIn_BlockedByOpenRecord(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	empl := activeEmployee()
	repo := newEmptyRepo()
	yesterdayIn := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	repo.findOpenByEmployeeFn = func(ctx context.Context, employeeID string) (*Attendance, error) {
		return &Attendance{ID: uuid.New(), TimeIn: yesterdayIn, AttendanceDate: "2026-03-01"}, nil
	}

	svc := NewService(db, repo,
		&fakeDirectory{empl: empl},
		&fakeScheduleSource{sched: storeBasedSchedule()},
		time.UTC,
	)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.ClockIn(context.Background(), empl.ID.String(),
		time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, attendanceerrors.ErrOpenAttendance)
}

func TestService_ClockOut_WithoutClockIn(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	empl := activeEmployee()
	repo := newEmptyRepo()

	svc := NewService(db, repo,
		&fakeDirectory{empl: empl},
		&fakeScheduleSource{sched: storeBasedSchedule()},
		time.UTC,
	)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.ClockOut(context.Background(), empl.ID.String(), time.Now().UTC())
	assert.ErrorIs(t, err, attendanceerrors.ErrNoOpenClockIn)
}

func TestService_ClockOut_BeforeClockIn(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	empl := activeEmployee()
	repo := newEmptyRepo()
	in := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	repo.findOpenByEmployeeFn = func(ctx context.Context, employeeID string) (*Attendance, error) {
		return &Attendance{ID: uuid.New(), TimeIn: in, AttendanceDate: "2026-03-02"}, nil
	}

	svc := NewService(db, repo,
		&fakeDirectory{empl: empl},
		&fakeScheduleSource{sched: storeBasedSchedule()},
		time.UTC,
	)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.ClockOut(context.Background(), empl.ID.String(), in.Add(-time.Minute))
	assert.ErrorIs(t, err, attendanceerrors.ErrClockOutBeforeClockIn)
}

func TestService_ClockIn_InactiveEmployee(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	empl := activeEmployee()
	empl.Status = employee.StatusInactive

	svc := NewService(db, newEmptyRepo(),
		&fakeDirectory{empl: empl},
		&fakeScheduleSource{sched: storeBasedSchedule()},
		time.UTC,
	)

	_, err := svc.ClockIn(context.Background(), empl.ID.String(), time.Now().UTC())
	assert.ErrorIs(t, err, attendanceerrors.ErrEmployeeNotActive)
}

func TestService_ClockOut_ScheduleMissing(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	empl := activeEmployee()

	svc := NewService(db, newEmptyRepo(),
		&fakeDirectory{empl: empl},
		&fakeScheduleSource{err: gorm.ErrRecordNotFound},
		time.UTC,
	)

	_, err := svc.ClockOut(context.Background(), empl.ID.String(), time.Now().UTC())
	assert.ErrorIs(t, err, attendanceerrors.ErrScheduleNotFound)
}

func TestDurationHundredths_Rounding(t *testing.T) {
	// 36 detik = 1 perseratus jam
	assert.Equal(t, int64(1), durationHundredths(36*time.Second))
	// 17 detik dibulatkan ke bawah, 18 ke atas (half up)
	assert.Equal(t, int64(0), durationHundredths(17*time.Second))
	assert.Equal(t, int64(1), durationHundredths(18*time.Second))
	// 8 jam persis
	assert.Equal(t, int64(800), durationHundredths(8*time.Hour))
	// 7 jam 45 menit = 7.75 jam
	assert.Equal(t, int64(775), durationHundredths(7*time.Hour+45*time.Minute))
}

func TestThresholdHundredths(t *testing.T) {
	assert.Equal(t, int64(800), thresholdHundredths(480))
	assert.Equal(t, int64(150), thresholdHundredths(90))
	assert.Equal(t, int64(0), thresholdHundredths(0))
}
