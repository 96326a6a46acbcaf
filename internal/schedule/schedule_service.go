package schedule

import (
	"context"
	"errors"
	"strings"
	"time"

	scheduleerrors "go-attendance/internal/schedule/errors"
	"go-attendance/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GroupUsage adalah interface lokal; employee.Repository yang implement.
// Dipakai untuk mencegah hapus schedule yang masih ditempati employee aktif.
type GroupUsage interface {
	CountActiveByScheduleGroup(ctx context.Context, group string) (int64, error)
}

type Service interface {
	Create(ctx context.Context, req CreateScheduleRequest) (ScheduleResponse, error)
	GetAll(ctx context.Context) ([]ScheduleResponse, error)
	GetByID(ctx context.Context, id string) (ScheduleResponse, error)
	GetByCode(ctx context.Context, code string) (*Schedule, error)
	Update(ctx context.Context, id string, req UpdateScheduleRequest) (ScheduleResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	usage  GroupUsage
	logger *zap.Logger
}

func NewService(repo Repository, usage GroupUsage, logger ...*zap.Logger) Service {
	l := zap.L().Named("schedule.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("schedule.service")
	}
	return &service{repo: repo, usage: usage, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateScheduleRequest) (ScheduleResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create schedule requested",
		zap.String("request_id", rid),
		zap.String("code", req.Code),
	)

	if err := validateHours(req.Type, req.StartTime, req.EndTime); err != nil {
		return ScheduleResponse{}, err
	}
	if err := validateWorkingDays(req.WorkingDays); err != nil {
		return ScheduleResponse{}, err
	}

	sched := &Schedule{
		ID:                       uuid.New(),
		Code:                     strings.ToLower(strings.TrimSpace(req.Code)),
		Name:                     req.Name,
		Type:                     req.Type,
		StartTime:                req.StartTime,
		EndTime:                  req.EndTime,
		WorkingDays:              req.WorkingDays,
		BreakMinutes:             req.BreakMinutes,
		OvertimeThresholdMinutes: req.OvertimeThresholdMinutes,
	}

	if err := s.repo.Create(ctx, sched); err != nil {
		s.logger.Error("create schedule persist failed", zap.String("code", sched.Code), zap.Error(err))
		return ScheduleResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create schedule success",
		zap.String("request_id", rid),
		zap.String("schedule_id", sched.ID.String()),
		zap.String("code", sched.Code),
	)
	return ToScheduleResponse(sched), nil
}

func (s *service) GetAll(ctx context.Context) ([]ScheduleResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all schedules failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]ScheduleResponse, 0, len(rows))
	for i := range rows {
		res = append(res, ToScheduleResponse(&rows[i]))
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (ScheduleResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ScheduleResponse{}, scheduleerrors.ErrInvalidScheduleID
	}

	sched, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ScheduleResponse{}, mapRepositoryError(err)
	}
	return ToScheduleResponse(sched), nil
}

func (s *service) GetByCode(ctx context.Context, code string) (*Schedule, error) {
	sched, err := s.repo.FindByCode(ctx, strings.ToLower(strings.TrimSpace(code)))
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return sched, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateScheduleRequest) (ScheduleResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ScheduleResponse{}, scheduleerrors.ErrInvalidScheduleID
	}

	sched, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ScheduleResponse{}, mapRepositoryError(err)
	}

	if req.Name != nil {
		sched.Name = *req.Name
	}
	if req.Type != nil {
		sched.Type = *req.Type
	}
	if req.StartTime != nil {
		sched.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		sched.EndTime = *req.EndTime
	}
	if req.WorkingDays != nil {
		sched.WorkingDays = *req.WorkingDays
	}
	if req.BreakMinutes != nil {
		sched.BreakMinutes = *req.BreakMinutes
	}
	if req.OvertimeThresholdMinutes != nil {
		sched.OvertimeThresholdMinutes = *req.OvertimeThresholdMinutes
	}

	if err := validateHours(sched.Type, sched.StartTime, sched.EndTime); err != nil {
		return ScheduleResponse{}, err
	}
	if err := validateWorkingDays(sched.WorkingDays); err != nil {
		return ScheduleResponse{}, err
	}

	if err := s.repo.Update(ctx, sched); err != nil {
		s.logger.Error("update schedule failed", zap.String("schedule_id", id), zap.Error(err))
		return ScheduleResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update schedule success", zap.String("schedule_id", id))
	return ToScheduleResponse(sched), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return scheduleerrors.ErrInvalidScheduleID
	}

	sched, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	if s.usage != nil {
		n, err := s.usage.CountActiveByScheduleGroup(ctx, sched.Code)
		if err != nil {
			s.logger.Error("check schedule usage failed", zap.String("code", sched.Code), zap.Error(err))
			return err
		}
		if n > 0 {
			s.logger.Warn("delete schedule rejected, still in use",
				zap.String("code", sched.Code),
				zap.Int64("active_employees", n),
			)
			return scheduleerrors.ErrScheduleInUse
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete schedule failed", zap.String("schedule_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete schedule success", zap.String("schedule_id", id), zap.String("code", sched.Code))
	return nil
}

// validateHours: schedule fixed wajib punya jam, dan jam pulang harus
// setelah jam masuk. Flexible boleh kosong dua-duanya.
func validateHours(schedType, startTime, endTime string) error {
	if schedType == TypeFlexible {
		return nil
	}
	if startTime == "" || endTime == "" {
		return scheduleerrors.ErrFixedScheduleNeedsHours
	}

	start, err := time.Parse("15:04", startTime)
	if err != nil {
		return scheduleerrors.ErrFixedScheduleNeedsHours
	}
	end, err := time.Parse("15:04", endTime)
	if err != nil {
		return scheduleerrors.ErrFixedScheduleNeedsHours
	}
	if !end.After(start) {
		return scheduleerrors.ErrInvalidTimeRange
	}
	return nil
}

var weekdayNames = map[string]struct{}{
	"Mon": {}, "Tue": {}, "Wed": {}, "Thu": {}, "Fri": {}, "Sat": {}, "Sun": {},
}

// validateWorkingDays: CSV wajib berisi nama hari valid, minimal satu.
func validateWorkingDays(csv string) error {
	days := strings.Split(csv, ",")
	seen := 0
	for _, d := range days {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		if _, ok := weekdayNames[d]; !ok {
			return scheduleerrors.ErrInvalidWorkingDay
		}
		seen++
	}
	if seen == 0 {
		return scheduleerrors.ErrInvalidWorkingDay
	}
	return nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return scheduleerrors.ErrScheduleNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return scheduleerrors.ErrScheduleCodeAlreadyExists
	}

	if strings.Contains(err.Error(), "duplicate key") {
		return scheduleerrors.ErrScheduleCodeAlreadyExists
	}

	return err
}
