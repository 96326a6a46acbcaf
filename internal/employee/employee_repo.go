package employee

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindByEmployeeNumber(ctx context.Context, number string) (*Employee, error)
	CountActive(ctx context.Context) (int64, error)
	CountActiveByScheduleGroup(ctx context.Context, group string) (int64, error)
	Update(ctx context.Context, e *Employee) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx mengikat semua query ke transaksi milik service, bukan pool.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	session := r.db.Session(&gorm.Session{NewDB: true})
	session.Statement.ConnPool = tx
	return &repository{db: session}
}

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var rows []Employee
	err := r.db.WithContext(ctx).
		Order("employee_number ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	return &e, err
}

func (r *repository) FindByEmployeeNumber(ctx context.Context, number string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		Where("employee_number = ?", number).
		First(&e).Error
	return &e, err
}

func (r *repository) CountActive(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("status = ?", StatusActive).
		Count(&n).Error
	return n, err
}

func (r *repository) CountActiveByScheduleGroup(ctx context.Context, group string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("status = ?", StatusActive).
		Where("schedule_group = ?", group).
		Count(&n).Error
	return n, err
}

func (r *repository) Update(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	// Soft delete: status inactive + gorm DeletedAt, record tetap ada untuk audit
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&Employee{}).
			Where("id = ?", id).
			Update("status", StatusInactive).Error; err != nil {
			return err
		}
		return tx.Delete(&Employee{}, "id = ?", id).Error
	})
}
