package leave

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *LeaveRequest) error
	FindAll(ctx context.Context) ([]LeaveRequest, error)
	FindByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	FindByID(ctx context.Context, id string) (*LeaveRequest, error)
	HasOverlappingPeriod(ctx context.Context, employeeID string, start, end time.Time) (bool, error)
	Update(ctx context.Context, l *LeaveRequest) error

	GetCredit(ctx context.Context, employeeID, leaveType string) (*LeaveCredit, error)
	ListCredits(ctx context.Context, employeeID string) ([]LeaveCredit, error)
	DeductCredit(ctx context.Context, employeeID, leaveType string, days int) error
	SeedDefaultCredits(ctx context.Context, employeeID string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx mengikat semua query ke transaksi milik service, bukan pool.
// *sql.Tx bukan TxBeginner, jadi gorm tidak membuka transaksi sendiri.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	session := r.db.Session(&gorm.Session{NewDB: true})
	session.Statement.ConnPool = tx
	return &repository{db: session}
}

func (r *repository) Create(ctx context.Context, l *LeaveRequest) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) FindAll(ctx context.Context) ([]LeaveRequest, error) {
	var rows []LeaveRequest
	err := r.db.WithContext(ctx).
		Order("submitted_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error) {
	var rows []LeaveRequest
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("submitted_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*LeaveRequest, error) {
	var l LeaveRequest
	err := r.db.WithContext(ctx).First(&l, "id = ?", id).Error
	return &l, err
}

func (r *repository) HasOverlappingPeriod(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Where("employee_id = ?", employeeID).
		Where("status IN ?", []string{StatusPending, StatusApproved}).
		Where("start_date <= ? AND end_date >= ?", end, start).
		Count(&n).Error
	return n > 0, err
}

func (r *repository) Update(ctx context.Context, l *LeaveRequest) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *repository) GetCredit(ctx context.Context, employeeID, leaveType string) (*LeaveCredit, error) {
	var c LeaveCredit
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("leave_type = ?", leaveType).
		First(&c).Error
	return &c, err
}

func (r *repository) ListCredits(ctx context.Context, employeeID string) ([]LeaveCredit, error) {
	var rows []LeaveCredit
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("leave_type ASC").
		Find(&rows).Error
	return rows, err
}

// DeductCredit atomik di level SQL: saldo tidak bisa negatif.
func (r *repository) DeductCredit(ctx context.Context, employeeID, leaveType string, days int) error {
	res := r.db.WithContext(ctx).
		Model(&LeaveCredit{}).
		Where("employee_id = ?", employeeID).
		Where("leave_type = ?", leaveType).
		Where("balance >= ?", days).
		UpdateColumn("balance", gorm.Expr("balance - ?", days))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SeedDefaultCredits idempotent: ON CONFLICT DO NOTHING, jadi aman
// dipanggil ulang kalau event Kafka terkirim dua kali.
func (r *repository) SeedDefaultCredits(ctx context.Context, employeeID string) error {
	emplUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return err
	}

	credits := make([]LeaveCredit, 0, len(DefaultCredits))
	for leaveType, balance := range DefaultCredits {
		credits = append(credits, LeaveCredit{
			ID:         uuid.New(),
			EmployeeID: emplUUID,
			LeaveType:  leaveType,
			Balance:    balance,
		})
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}, {Name: "leave_type"}},
			DoNothing: true,
		}).
		Create(&credits).Error
}
