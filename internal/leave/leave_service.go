package leave

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go-attendance/internal/employee"
	leaveerrors "go-attendance/internal/leave/errors"
	"go-attendance/internal/permission"
	"go-attendance/internal/shared/apperror"
	"go-attendance/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EmployeeDirectory adalah interface lokal; employee.Repository yang implement.
type EmployeeDirectory interface {
	FindByID(ctx context.Context, id string) (*employee.Employee, error)
}

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, actorID string, req SubmitLeaveRequest) (LeaveResponse, error)
	Resolve(ctx context.Context, actorID, id string, req ResolveLeaveRequest) (LeaveResponse, error)
	GetAll(ctx context.Context, actorID string, canReadAll bool) ([]LeaveResponse, error)
	GetByID(ctx context.Context, id string) (LeaveResponse, error)
	GetCredits(ctx context.Context, employeeID string) ([]LeaveCreditResponse, error)
	SeedDefaultCredits(ctx context.Context, employeeID string) error
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees EmployeeDirectory
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, employees EmployeeDirectory, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{db: db, repo: repo, employees: employees, logger: l}
}

func (s *service) Submit(ctx context.Context, actorID string, req SubmitLeaveRequest) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("submit leave requested",
		zap.String("request_id", rid),
		zap.String("employee_id", actorID),
		zap.String("leave_type", req.LeaveType),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	actor, err := s.employees.FindByID(ctx, actorID)
	if err != nil {
		return LeaveResponse{}, mapNotFound(err)
	}

	allowed, err := permission.HasPermission(actor.Permissions, permission.CapabilityRequestLeaves)
	if err != nil {
		return LeaveResponse{}, err
	}
	if !allowed {
		s.logger.Warn("submit leave without request_leaves", zap.String("employee_id", actorID))
		return LeaveResponse{}, apperror.ErrForbidden
	}

	if !ValidLeaveType(req.LeaveType) {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveType
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}
	if endDate.Before(startDate) {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}
	totalDays := int(endDate.Sub(startDate).Hours()/24) + 1

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("submit leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	overlap, err := qtx.HasOverlappingPeriod(ctx, actorID, startDate, endDate)
	if err != nil {
		s.logger.Error("submit leave overlap check failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if overlap {
		s.logger.Warn("submit leave overlap detected",
			zap.String("employee_id", actorID),
			zap.String("start_date", req.StartDate),
			zap.String("end_date", req.EndDate),
		)
		return LeaveResponse{}, leaveerrors.ErrLeaveOverlap
	}

	// Cek saldo di muka biar employee tahu lebih awal. Saldo baru benar-benar
	// dipotong saat approve.
	credit, err := qtx.GetCredit(ctx, actorID, req.LeaveType)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrInsufficientLeaveCredits
		}
		return LeaveResponse{}, err
	}
	if credit.Balance < totalDays {
		return LeaveResponse{}, leaveerrors.ErrInsufficientLeaveCredits
	}

	l := &LeaveRequest{
		ID:          uuid.New(),
		EmployeeID:  actor.ID,
		LeaveType:   req.LeaveType,
		StartDate:   startDate,
		EndDate:     endDate,
		TotalDays:   totalDays,
		Reason:      req.Reason,
		Status:      StatusPending,
		SubmittedAt: time.Now().UTC(),
	}

	if err := qtx.Create(ctx, l); err != nil {
		s.logger.Error("submit leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("submit leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("submit leave success",
		zap.String("request_id", rid),
		zap.String("leave_id", l.ID.String()),
		zap.String("employee_id", actorID),
		zap.Int("total_days", totalDays),
	)
	return ToLeaveResponse(l), nil
}

func (s *service) Resolve(ctx context.Context, actorID, id string, req ResolveLeaveRequest) (LeaveResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}
	// Guard di service juga, jangan cuma andalkan binding tag di handler.
	if req.Status != StatusApproved && req.Status != StatusRejected {
		return LeaveResponse{}, leaveerrors.ErrInvalidResolutionStatus
	}
	if req.Status == StatusRejected && req.RejectionReason == "" {
		return LeaveResponse{}, leaveerrors.ErrRejectionReasonRequired
	}

	actor, err := s.employees.FindByID(ctx, actorID)
	if err != nil {
		return LeaveResponse{}, mapNotFound(err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("resolve leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}

	if l.IsResolved() {
		s.logger.Warn("resolve leave already resolved",
			zap.String("leave_id", id),
			zap.String("status", l.Status),
		)
		return LeaveResponse{}, leaveerrors.ErrLeaveAlreadyResolved
	}

	if l.EmployeeID == actor.ID {
		return LeaveResponse{}, leaveerrors.ErrCannotResolveOwnLeave
	}

	target, err := s.employees.FindByID(ctx, l.EmployeeID.String())
	if err != nil {
		return LeaveResponse{}, mapNotFound(err)
	}

	canApprove, err := permission.CanApproveForGroup(actor.Permissions, actor.GroupList(), target.Department)
	if err != nil {
		return LeaveResponse{}, err
	}
	if !canApprove {
		s.logger.Warn("resolve leave forbidden",
			zap.String("actor_id", actorID),
			zap.String("target_department", target.Department),
		)
		return LeaveResponse{}, apperror.ErrForbidden
	}

	now := time.Now().UTC()
	l.Status = req.Status
	l.ResolvedBy = &actor.ID
	l.ResolvedAt = &now

	switch req.Status {
	case StatusApproved:
		if err := qtx.DeductCredit(ctx, l.EmployeeID.String(), l.LeaveType, l.TotalDays); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return LeaveResponse{}, leaveerrors.ErrInsufficientLeaveCredits
			}
			s.logger.Error("resolve leave deduct credit failed", zap.Error(err))
			return LeaveResponse{}, err
		}
	case StatusRejected:
		l.RejectionReason = req.RejectionReason
	}

	if err := qtx.Update(ctx, l); err != nil {
		s.logger.Error("resolve leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("resolve leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("resolve leave success",
		zap.String("leave_id", id),
		zap.String("status", l.Status),
		zap.String("resolved_by", actorID),
	)
	return ToLeaveResponse(l), nil
}

func (s *service) GetAll(ctx context.Context, actorID string, canReadAll bool) ([]LeaveResponse, error) {
	var (
		rows []LeaveRequest
		err  error
	)
	if canReadAll {
		rows, err = s.repo.FindAll(ctx)
	} else {
		rows, err = s.repo.FindByEmployee(ctx, actorID)
	}
	if err != nil {
		s.logger.Error("get leaves failed", zap.Error(err))
		return nil, err
	}

	res := make([]LeaveResponse, 0, len(rows))
	for i := range rows {
		res = append(res, ToLeaveResponse(&rows[i]))
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (LeaveResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	return ToLeaveResponse(l), nil
}

func (s *service) GetCredits(ctx context.Context, employeeID string) ([]LeaveCreditResponse, error) {
	rows, err := s.repo.ListCredits(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	res := make([]LeaveCreditResponse, 0, len(rows))
	for i := range rows {
		res = append(res, LeaveCreditResponse{
			LeaveType: rows[i].LeaveType,
			Balance:   rows[i].Balance,
		})
	}
	return res, nil
}

func (s *service) SeedDefaultCredits(ctx context.Context, employeeID string) error {
	if err := s.repo.SeedDefaultCredits(ctx, employeeID); err != nil {
		s.logger.Error("seed default credits failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.ErrNotFound
	}
	return err
}
