package leave

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-attendance/internal/employee"
	leaveerrors "go-attendance/internal/leave/errors"
	"go-attendance/internal/permission"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	withTxFn               func(tx *sql.Tx) Repository
	createFn               func(ctx context.Context, l *LeaveRequest) error
	findAllFn              func(ctx context.Context) ([]LeaveRequest, error)
	findByEmployeeFn       func(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	findByIDFn             func(ctx context.Context, id string) (*LeaveRequest, error)
	hasOverlappingPeriodFn func(ctx context.Context, employeeID string, start, end time.Time) (bool, error)
	updateFn               func(ctx context.Context, l *LeaveRequest) error
	getCreditFn            func(ctx context.Context, employeeID, leaveType string) (*LeaveCredit, error)
	listCreditsFn          func(ctx context.Context, employeeID string) ([]LeaveCredit, error)
	deductCreditFn         func(ctx context.Context, employeeID, leaveType string, days int) error
	seedDefaultCreditsFn   func(ctx context.Context, employeeID string) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository                { return f.withTxFn(tx) }
func (f *fakeRepo) Create(ctx context.Context, l *LeaveRequest) error { return f.createFn(ctx, l) }
func (f *fakeRepo) FindAll(ctx context.Context) ([]LeaveRequest, error) { return f.findAllFn(ctx) }
func (f *fakeRepo) FindByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error) {
	return f.findByEmployeeFn(ctx, employeeID)
}
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*LeaveRequest, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) HasOverlappingPeriod(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	return f.hasOverlappingPeriodFn(ctx, employeeID, start, end)
}
func (f *fakeRepo) Update(ctx context.Context, l *LeaveRequest) error { return f.updateFn(ctx, l) }
func (f *fakeRepo) GetCredit(ctx context.Context, employeeID, leaveType string) (*LeaveCredit, error) {
	return f.getCreditFn(ctx, employeeID, leaveType)
}
func (f *fakeRepo) ListCredits(ctx context.Context, employeeID string) ([]LeaveCredit, error) {
	return f.listCreditsFn(ctx, employeeID)
}
func (f *fakeRepo) DeductCredit(ctx context.Context, employeeID, leaveType string, days int) error {
	return f.deductCreditFn(ctx, employeeID, leaveType, days)
}
func (f *fakeRepo) SeedDefaultCredits(ctx context.Context, employeeID string) error {
	return f.seedDefaultCreditsFn(ctx, employeeID)
}

type fakeDirectory struct {
	byID map[string]*employee.Employee
}

func (f *fakeDirectory) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	if e, ok := f.byID[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func newEmptyRepo() *fakeRepo {
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.createFn = func(ctx context.Context, l *LeaveRequest) error { return nil }
	repo.updateFn = func(ctx context.Context, l *LeaveRequest) error { return nil }
	repo.findAllFn = func(ctx context.Context) ([]LeaveRequest, error) { return nil, nil }
	repo.findByEmployeeFn = func(ctx context.Context, employeeID string) ([]LeaveRequest, error) { return nil, nil }
	repo.findByIDFn = func(ctx context.Context, id string) (*LeaveRequest, error) {
		return nil, gorm.ErrRecordNotFound
	}
	repo.hasOverlappingPeriodFn = func(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
		return false, nil
	}
	repo.getCreditFn = func(ctx context.Context, employeeID, leaveType string) (*LeaveCredit, error) {
		return &LeaveCredit{Balance: 15}, nil
	}
	repo.listCreditsFn = func(ctx context.Context, employeeID string) ([]LeaveCredit, error) { return nil, nil }
	repo.deductCreditFn = func(ctx context.Context, employeeID, leaveType string, days int) error { return nil }
	repo.seedDefaultCreditsFn = func(ctx context.Context, employeeID string) error { return nil }
	return repo
}

func requester() *employee.Employee {
	return &employee.Employee{
		ID:         uuid.New(),
		Department: "warehouse",
		Status:     employee.StatusActive,
		Permissions: permission.Flags{
			CanRequestLeaves: true,
		},
	}
}

func approver() *employee.Employee {
	return &employee.Employee{
		ID:         uuid.New(),
		Department: "warehouse",
		Groups:     "warehouse",
		Status:     employee.StatusActive,
		Permissions: permission.Flags{
			CanApproveLeaves: true,
		},
	}
}

func TestSubmitLeave_Success(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	empl := requester()
	repo := newEmptyRepo()

	var saved LeaveRequest
	repo.createFn = func(ctx context.Context, l *LeaveRequest) error { saved = *l; return nil }

	svc := NewService(db, repo, &fakeDirectory{byID: map[string]*employee.Employee{empl.ID.String(): empl}})

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Submit(context.Background(), empl.ID.String(), SubmitLeaveRequest{
		LeaveType: TypeAnnual,
		StartDate: "2026-03-02",
		EndDate:   "2026-03-04",
		Reason:    "family trip",
	})

	assert.NoError(t, err)
	assert.Equal(t, StatusPending, resp.Status)
	// inklusif: 2 s/d 4 Maret = 3 hari
	assert.Equal(t, 3, resp.TotalDays)
	assert.Equal(t, saved.ID.String(), resp.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitLeave_EndBeforeStart(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	empl := requester()
	svc := NewService(db, newEmptyRepo(), &fakeDirectory{byID: map[string]*employee.Employee{empl.ID.String(): empl}})

	_, err := svc.Submit(context.Background(), empl.ID.String(), SubmitLeaveRequest{
		LeaveType: TypeAnnual,
		StartDate: "2026-03-04",
		EndDate:   "2026-03-02",
		Reason:    "oops",
	})
	assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateRange)
}

func TestSubmitLeave_WithoutCapability(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	empl := requester()
	empl.Permissions = permission.Flags{}
	svc := NewService(db, newEmptyRepo(), &fakeDirectory{byID: map[string]*employee.Employee{empl.ID.String(): empl}})

	_, err := svc.Submit(context.Background(), empl.ID.String(), SubmitLeaveRequest{
		LeaveType: TypeAnnual,
		StartDate: "2026-03-02",
		EndDate:   "2026-03-02",
		Reason:    "no perm",
	})
	assert.Error(t, err)
}

func TestSubmitLeave_InsufficientCredits(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	empl := requester()
	repo := newEmptyRepo()
	repo.getCreditFn = func(ctx context.Context, employeeID, leaveType string) (*LeaveCredit, error) {
		return &LeaveCredit{Balance: 2}, nil
	}

	svc := NewService(db, repo, &fakeDirectory{byID: map[string]*employee.Employee{empl.ID.String(): empl}})

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Submit(context.Background(), empl.ID.String(), SubmitLeaveRequest{
		LeaveType: TypeAnnual,
		StartDate: "2026-03-02",
		EndDate:   "2026-03-06",
		Reason:    "too long",
	})
	assert.ErrorIs(t, err, leaveerrors.ErrInsufficientLeaveCredits)
}

func TestSubmitLeave_Overlap(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	empl := requester()
	repo := newEmptyRepo()
	repo.hasOverlappingPeriodFn = func(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
		return true, nil
	}

	svc := NewService(db, repo, &fakeDirectory{byID: map[string]*employee.Employee{empl.ID.String(): empl}})

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Submit(context.Background(), empl.ID.String(), SubmitLeaveRequest{
		LeaveType: TypeAnnual,
		StartDate: "2026-03-02",
		EndDate:   "2026-03-03",
		Reason:    "double booking",
	})
	assert.ErrorIs(t, err, leaveerrors.ErrLeaveOverlap)
}

func TestResolveLeave_Approve(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	empl := requester()
	boss := approver()
	leaveID := uuid.New()

	repo := newEmptyRepo()
	pending := &LeaveRequest{
		ID:         leaveID,
		EmployeeID: empl.ID,
		LeaveType:  TypeAnnual,
		TotalDays:  3,
		Status:     StatusPending,
	}
	repo.findByIDFn = func(ctx context.Context, id string) (*LeaveRequest, error) { return pending, nil }

	deducted := 0
	repo.deductCreditFn = func(ctx context.Context, employeeID, leaveType string, days int) error {
		deducted = days
		return nil
	}

	svc := NewService(db, repo, &fakeDirectory{byID: map[string]*employee.Employee{
		empl.ID.String(): empl,
		boss.ID.String(): boss,
	}})

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Resolve(context.Background(), boss.ID.String(), leaveID.String(), ResolveLeaveRequest{
		Status: StatusApproved,
	})

	assert.NoError(t, err)
	assert.Equal(t, StatusApproved, resp.Status)
	assert.Equal(t, boss.ID.String(), resp.ResolvedBy)
	assert.NotNil(t, resp.ResolvedAt)
	assert.Equal(t, 3, deducted)
}

func TestResolveLeave_StatusMustBeTerminal(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	boss := approver()
	svc := NewService(db, newEmptyRepo(), &fakeDirectory{byID: map[string]*employee.Employee{boss.ID.String(): boss}})

	for _, status := range []string{StatusPending, "approved", "CANCELLED", ""} {
		_, err := svc.Resolve(context.Background(), boss.ID.String(), uuid.NewString(), ResolveLeaveRequest{
			Status: status,
		})
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidResolutionStatus, "status %q", status)
	}
	// Ditolak sebelum transaksi dibuka
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveLeave_RejectNeedsReason(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	boss := approver()
	svc := NewService(db, newEmptyRepo(), &fakeDirectory{byID: map[string]*employee.Employee{boss.ID.String(): boss}})

	_, err := svc.Resolve(context.Background(), boss.ID.String(), uuid.NewString(), ResolveLeaveRequest{
		Status: StatusRejected,
	})
	assert.ErrorIs(t, err, leaveerrors.ErrRejectionReasonRequired)
}

func TestResolveLeave_Reject(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	empl := requester()
	boss := approver()
	leaveID := uuid.New()

	repo := newEmptyRepo()
	pending := &LeaveRequest{
		ID:         leaveID,
		EmployeeID: empl.ID,
		LeaveType:  TypeSick,
		TotalDays:  1,
		Status:     StatusPending,
	}
	repo.findByIDFn = func(ctx context.Context, id string) (*LeaveRequest, error) { return pending, nil }
	repo.deductCreditFn = func(ctx context.Context, employeeID, leaveType string, days int) error {
		t.Fatal("reject tidak boleh memotong saldo")
		return nil
	}

	svc := NewService(db, repo, &fakeDirectory{byID: map[string]*employee.Employee{
		empl.ID.String(): empl,
		boss.ID.String(): boss,
	}})

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Resolve(context.Background(), boss.ID.String(), leaveID.String(), ResolveLeaveRequest{
		Status:          StatusRejected,
		RejectionReason: "staffing shortage",
	})

	assert.NoError(t, err)
	assert.Equal(t, StatusRejected, resp.Status)
	assert.Equal(t, "staffing shortage", resp.RejectionReason)
}

func TestResolveLeave_AlreadyResolved(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	empl := requester()
	boss := approver()
	leaveID := uuid.New()

	repo := newEmptyRepo()
	repo.findByIDFn = func(ctx context.Context, id string) (*LeaveRequest, error) {
		return &LeaveRequest{ID: leaveID, EmployeeID: empl.ID, Status: StatusApproved}, nil
	}

	svc := NewService(db, repo, &fakeDirectory{byID: map[string]*employee.Employee{
		empl.ID.String(): empl,
		boss.ID.String(): boss,
	}})

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Resolve(context.Background(), boss.ID.String(), leaveID.String(), ResolveLeaveRequest{
		Status: StatusApproved,
	})
	assert.ErrorIs(t, err, leaveerrors.ErrLeaveAlreadyResolved)
}

func TestResolveLeave_OwnLeave(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	boss := approver()
	leaveID := uuid.New()

	repo := newEmptyRepo()
	repo.findByIDFn = func(ctx context.Context, id string) (*LeaveRequest, error) {
		return &LeaveRequest{ID: leaveID, EmployeeID: boss.ID, Status: StatusPending}, nil
	}

	svc := NewService(db, repo, &fakeDirectory{byID: map[string]*employee.Employee{boss.ID.String(): boss}})

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Resolve(context.Background(), boss.ID.String(), leaveID.String(), ResolveLeaveRequest{
		Status: StatusApproved,
	})
	assert.ErrorIs(t, err, leaveerrors.ErrCannotResolveOwnLeave)
}

func TestResolveLeave_OtherGroupNeedsCrossGroupFlag(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	empl := requester()
	empl.Department = "head-office"

	boss := approver() // member warehouse saja
	leaveID := uuid.New()

	repo := newEmptyRepo()
	repo.findByIDFn = func(ctx context.Context, id string) (*LeaveRequest, error) {
		return &LeaveRequest{ID: leaveID, EmployeeID: empl.ID, Status: StatusPending, TotalDays: 1}, nil
	}

	dir := &fakeDirectory{byID: map[string]*employee.Employee{
		empl.ID.String(): empl,
		boss.ID.String(): boss,
	}}
	svc := NewService(db, repo, dir)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Resolve(context.Background(), boss.ID.String(), leaveID.String(), ResolveLeaveRequest{
		Status: StatusApproved,
	})
	assert.Error(t, err)

	// Dengan approve_other_groups, approval lintas group jalan
	boss.Permissions.CanApproveOtherGroup = true
	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Resolve(context.Background(), boss.ID.String(), leaveID.String(), ResolveLeaveRequest{
		Status: StatusApproved,
	})
	assert.NoError(t, err)
	assert.Equal(t, StatusApproved, resp.Status)
}

func TestSeedDefaultCredits_Idempotent(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	calls := 0
	repo := newEmptyRepo()
	repo.seedDefaultCreditsFn = func(ctx context.Context, employeeID string) error {
		calls++
		return nil
	}

	svc := NewService(db, repo, &fakeDirectory{byID: map[string]*employee.Employee{}})

	id := uuid.NewString()
	assert.NoError(t, svc.SeedDefaultCredits(context.Background(), id))
	assert.NoError(t, svc.SeedDefaultCredits(context.Background(), id))
	assert.Equal(t, 2, calls)
}
