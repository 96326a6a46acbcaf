package schedule

import "time"

type CreateScheduleRequest struct {
	Code                     string `json:"code" binding:"required,min=2,max=50"`
	Name                     string `json:"name" binding:"required,min=2,max=100"`
	Type                     string `json:"type" binding:"required,oneof=fixed flexible"`
	StartTime                string `json:"start_time" binding:"omitempty,len=5"`
	EndTime                  string `json:"end_time" binding:"omitempty,len=5"`
	WorkingDays              string `json:"working_days" binding:"required"`
	BreakMinutes             int    `json:"break_minutes" binding:"gte=0,lte=240"`
	OvertimeThresholdMinutes int    `json:"overtime_threshold_minutes" binding:"gte=0,lte=1440"`
}

type UpdateScheduleRequest struct {
	Name                     *string `json:"name" binding:"omitempty,min=2,max=100"`
	Type                     *string `json:"type" binding:"omitempty,oneof=fixed flexible"`
	StartTime                *string `json:"start_time" binding:"omitempty,len=5"`
	EndTime                  *string `json:"end_time" binding:"omitempty,len=5"`
	WorkingDays              *string `json:"working_days" binding:"omitempty"`
	BreakMinutes             *int    `json:"break_minutes" binding:"omitempty,gte=0,lte=240"`
	OvertimeThresholdMinutes *int    `json:"overtime_threshold_minutes" binding:"omitempty,gte=0,lte=1440"`
}

type ScheduleResponse struct {
	ID                       string    `json:"id"`
	Code                     string    `json:"code"`
	Name                     string    `json:"name"`
	Type                     string    `json:"type"`
	StartTime                string    `json:"start_time,omitempty"`
	EndTime                  string    `json:"end_time,omitempty"`
	WorkingDays              []string  `json:"working_days"`
	BreakMinutes             int       `json:"break_minutes"`
	OvertimeThresholdMinutes int       `json:"overtime_threshold_minutes"`
	CreatedAt                time.Time `json:"created_at"`
	UpdatedAt                time.Time `json:"updated_at"`
}

func ToScheduleResponse(s *Schedule) ScheduleResponse {
	return ScheduleResponse{
		ID:                       s.ID.String(),
		Code:                     s.Code,
		Name:                     s.Name,
		Type:                     s.Type,
		StartTime:                s.StartTime,
		EndTime:                  s.EndTime,
		WorkingDays:              s.WorkingDayList(),
		BreakMinutes:             s.BreakMinutes,
		OvertimeThresholdMinutes: s.OvertimeThresholdMinutes,
		CreatedAt:                s.CreatedAt,
		UpdatedAt:                s.UpdatedAt,
	}
}
