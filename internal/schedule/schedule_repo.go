package schedule

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=schedule_repo.go -destination=mock/schedule_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, s *Schedule) error
	FindAll(ctx context.Context) ([]Schedule, error)
	FindByID(ctx context.Context, id string) (*Schedule, error)
	FindByCode(ctx context.Context, code string) (*Schedule, error)
	Update(ctx context.Context, s *Schedule) error
	Delete(ctx context.Context, id string) error
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) WithTx(tx *gorm.DB) Repository {
	return &gormRepository{db: tx}
}

func (r *gormRepository) Create(ctx context.Context, s *Schedule) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *gormRepository) FindAll(ctx context.Context) ([]Schedule, error) {
	var schedules []Schedule
	err := r.db.WithContext(ctx).Order("code asc").Find(&schedules).Error
	return schedules, err
}

func (r *gormRepository) FindByID(ctx context.Context, id string) (*Schedule, error) {
	var s Schedule
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *gormRepository) FindByCode(ctx context.Context, code string) (*Schedule, error) {
	var s Schedule
	if err := r.db.WithContext(ctx).First(&s, "code = ?", code).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *gormRepository) Update(ctx context.Context, s *Schedule) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *gormRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Schedule{}, "id = ?", id).Error
}
