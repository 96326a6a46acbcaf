package schedule_test

import (
	"context"
	"errors"
	"testing"

	"go-attendance/internal/schedule"
	scheduleerrors "go-attendance/internal/schedule/errors"
	"go-attendance/internal/schedule/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type stubUsage struct {
	count int64
	err   error
}

func (s *stubUsage) CountActiveByScheduleGroup(ctx context.Context, group string) (int64, error) {
	return s.count, s.err
}

func TestCreateSchedule_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	svc := schedule.NewService(repo, &stubUsage{})

	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *schedule.Schedule) error {
			assert.Equal(t, "store-based", s.Code)
			assert.Equal(t, schedule.TypeFixed, s.Type)
			return nil
		})

	resp, err := svc.Create(context.Background(), schedule.CreateScheduleRequest{
		Code:                     "Store-Based ",
		Name:                     "Store Based",
		Type:                     schedule.TypeFixed,
		StartTime:                "08:00",
		EndTime:                  "17:00",
		WorkingDays:              "Mon,Tue,Wed,Thu,Fri,Sat",
		BreakMinutes:             60,
		OvertimeThresholdMinutes: 480,
	})

	assert.NoError(t, err)
	assert.Equal(t, "store-based", resp.Code)
	assert.Equal(t, []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}, resp.WorkingDays)
}

func TestCreateSchedule_FixedWithoutHours(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	svc := schedule.NewService(repo, &stubUsage{})

	_, err := svc.Create(context.Background(), schedule.CreateScheduleRequest{
		Code:        "broken",
		Name:        "Broken",
		Type:        schedule.TypeFixed,
		WorkingDays: "Mon",
	})

	assert.ErrorIs(t, err, scheduleerrors.ErrFixedScheduleNeedsHours)
}

func TestCreateSchedule_BogusWorkingDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	svc := schedule.NewService(repo, &stubUsage{})

	_, err := svc.Create(context.Background(), schedule.CreateScheduleRequest{
		Code:        "typo",
		Name:        "Typo",
		Type:        schedule.TypeFixed,
		StartTime:   "08:00",
		EndTime:     "17:00",
		WorkingDays: "Mon,Funday",
	})

	assert.ErrorIs(t, err, scheduleerrors.ErrInvalidWorkingDay)
}

func TestCreateSchedule_EndBeforeStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	svc := schedule.NewService(repo, &stubUsage{})

	_, err := svc.Create(context.Background(), schedule.CreateScheduleRequest{
		Code:        "reversed",
		Name:        "Reversed",
		Type:        schedule.TypeFixed,
		StartTime:   "17:00",
		EndTime:     "08:00",
		WorkingDays: "Mon",
	})

	assert.ErrorIs(t, err, scheduleerrors.ErrInvalidTimeRange)
}

func TestCreateSchedule_FlexibleWithoutHours(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	svc := schedule.NewService(repo, &stubUsage{})

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	resp, err := svc.Create(context.Background(), schedule.CreateScheduleRequest{
		Code:        "open-schedule",
		Name:        "Open Schedule",
		Type:        schedule.TypeFlexible,
		WorkingDays: "Mon,Tue,Wed,Thu,Fri,Sat,Sun",
	})

	assert.NoError(t, err)
	assert.Equal(t, schedule.TypeFlexible, resp.Type)
	assert.Empty(t, resp.StartTime)
}

func TestGetScheduleByID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	svc := schedule.NewService(repo, &stubUsage{})

	id := uuid.NewString()
	repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, scheduleerrors.ErrScheduleNotFound)
}

func TestGetScheduleByID_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	svc := schedule.NewService(repo, &stubUsage{})

	_, err := svc.GetByID(context.Background(), "bukan-uuid")
	assert.ErrorIs(t, err, scheduleerrors.ErrInvalidScheduleID)
}

func TestDeleteSchedule_StillInUse(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	svc := schedule.NewService(repo, &stubUsage{count: 3})

	id := uuid.New()
	repo.EXPECT().FindByID(gomock.Any(), id.String()).Return(&schedule.Schedule{
		ID:   id,
		Code: "head-office",
		Type: schedule.TypeFixed,
	}, nil)

	err := svc.Delete(context.Background(), id.String())
	assert.ErrorIs(t, err, scheduleerrors.ErrScheduleInUse)
}

func TestDeleteSchedule_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	svc := schedule.NewService(repo, &stubUsage{count: 0})

	id := uuid.New()
	repo.EXPECT().FindByID(gomock.Any(), id.String()).Return(&schedule.Schedule{
		ID:   id,
		Code: "head-office",
	}, nil)
	repo.EXPECT().Delete(gomock.Any(), id.String()).Return(nil)

	err := svc.Delete(context.Background(), id.String())
	assert.NoError(t, err)
}

func TestUpdateSchedule_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	svc := schedule.NewService(repo, &stubUsage{})

	id := uuid.New()
	repo.EXPECT().FindByID(gomock.Any(), id.String()).Return(&schedule.Schedule{
		ID:          id,
		Code:        "store-based",
		Type:        schedule.TypeFixed,
		StartTime:   "08:00",
		EndTime:     "17:00",
		WorkingDays: "Mon,Tue,Wed,Thu,Fri,Sat",
	}, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	newName := "Store Based v2"
	_, err := svc.Update(context.Background(), id.String(), schedule.UpdateScheduleRequest{Name: &newName})
	assert.Error(t, err)
}
