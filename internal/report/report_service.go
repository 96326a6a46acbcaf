package report

import (
	"context"
	"encoding/json"
	"time"

	"go-attendance/internal/attendance"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	statsCacheKey = "report:dashboard:"
	statsCacheTTL = 60 * time.Second
)

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	Dashboard(ctx context.Context) (DashboardStats, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	loc    *time.Location
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, loc *time.Location, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	if loc == nil {
		loc = time.Local
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		loc:    loc,
		logger: l,
	}
}

func (s *service) Dashboard(ctx context.Context) (DashboardStats, error) {
	today := time.Now().In(s.loc).Format("2006-01-02")
	cacheKey := statsCacheKey + today

	// 1. Cek Redis
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var stats DashboardStats
			if json.Unmarshal([]byte(cached), &stats) == nil {
				return stats, nil
			}
		}
	}

	// 2. Singleflight: dashboard di-refresh bersamaan oleh banyak admin
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		stats, err := s.compute(ctx, today)
		if err != nil {
			return DashboardStats{}, err
		}

		// 3. Cache pendek, angka harian boleh telat sebentar
		if s.rdb != nil {
			if jsonData, err := json.Marshal(stats); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, statsCacheTTL)
			}
		}
		return stats, nil
	})
	if err != nil {
		s.logger.Error("compute dashboard stats failed", zap.Error(err))
		return DashboardStats{}, err
	}

	return v.(DashboardStats), nil
}

func (s *service) compute(ctx context.Context, today string) (DashboardStats, error) {
	active, err := s.repo.CountActiveEmployees(ctx)
	if err != nil {
		return DashboardStats{}, err
	}

	present, err := s.repo.CountAttendanceByStatus(ctx, today, attendance.StatusPresent)
	if err != nil {
		return DashboardStats{}, err
	}

	late, err := s.repo.CountAttendanceByStatus(ctx, today, attendance.StatusLate)
	if err != nil {
		return DashboardStats{}, err
	}

	pending, err := s.repo.CountPendingLeaves(ctx)
	if err != nil {
		return DashboardStats{}, err
	}

	absent := active - present - late
	if absent < 0 {
		absent = 0
	}

	return DashboardStats{
		ActiveEmployees: active,
		PresentToday:    present,
		LateToday:       late,
		AbsentToday:     absent,
		PendingLeaves:   pending,
	}, nil
}
