package leave

import "time"

type SubmitLeaveRequest struct {
	LeaveType string `json:"leave_type" binding:"required,oneof=annual sick emergency"`
	StartDate string `json:"start_date" binding:"required,len=10"`
	EndDate   string `json:"end_date" binding:"required,len=10"`
	Reason    string `json:"reason" binding:"required,min=3,max=500"`
}

type ResolveLeaveRequest struct {
	Status          string `json:"status" binding:"required,oneof=APPROVED REJECTED"`
	RejectionReason string `json:"rejection_reason" binding:"omitempty,max=500"`
}

type LeaveResponse struct {
	ID              string     `json:"id"`
	EmployeeID      string     `json:"employee_id"`
	LeaveType       string     `json:"leave_type"`
	StartDate       string     `json:"start_date"`
	EndDate         string     `json:"end_date"`
	TotalDays       int        `json:"total_days"`
	Reason          string     `json:"reason"`
	Status          string     `json:"status"`
	SubmittedAt     time.Time  `json:"submitted_at"`
	ResolvedBy      string     `json:"resolved_by,omitempty"`
	ResolvedAt      *time.Time `json:"resolved_at,omitempty"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
}

type LeaveCreditResponse struct {
	LeaveType string `json:"leave_type"`
	Balance   int    `json:"balance"`
}

func ToLeaveResponse(l *LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:              l.ID.String(),
		EmployeeID:      l.EmployeeID.String(),
		LeaveType:       l.LeaveType,
		StartDate:       l.StartDate.Format("2006-01-02"),
		EndDate:         l.EndDate.Format("2006-01-02"),
		TotalDays:       l.TotalDays,
		Reason:          l.Reason,
		Status:          l.Status,
		SubmittedAt:     l.SubmittedAt,
		ResolvedAt:      l.ResolvedAt,
		RejectionReason: l.RejectionReason,
	}
	if l.ResolvedBy != nil {
		resp.ResolvedBy = l.ResolvedBy.String()
	}
	return resp
}
