package leave

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

const (
	TypeAnnual    = "annual"
	TypeSick      = "sick"
	TypeEmergency = "emergency"
)

// DefaultCredits adalah saldo awal per tipe cuti untuk employee baru.
var DefaultCredits = map[string]int{
	TypeAnnual:    15,
	TypeSick:      10,
	TypeEmergency: 5,
}

// LeaveRequest: PENDING adalah satu-satunya status yang bisa berubah.
// APPROVED dan REJECTED terminal.
type LeaveRequest struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index" json:"employee_id"`

	LeaveType string    `gorm:"type:varchar(20);not null" json:"leave_type"`
	StartDate time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate   time.Time `gorm:"type:date;not null" json:"end_date"`

	// TotalDays inklusif: 2026-03-02 s/d 2026-03-04 = 3 hari
	TotalDays int    `gorm:"not null" json:"total_days"`
	Reason    string `gorm:"type:text" json:"reason"`

	Status      string     `gorm:"type:varchar(10);not null;default:'PENDING'" json:"status"`
	SubmittedAt time.Time  `gorm:"not null" json:"submitted_at"`
	ResolvedBy  *uuid.UUID `gorm:"type:uuid" json:"resolved_by,omitempty"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`

	RejectionReason string `gorm:"type:text" json:"rejection_reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

func (l *LeaveRequest) IsResolved() bool {
	return l.Status != StatusPending
}

// LeaveCredit adalah saldo cuti per tipe per employee, dalam hari.
type LeaveCredit struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_leave_credit_employee_type" json:"employee_id"`
	LeaveType  string    `gorm:"type:varchar(20);not null;uniqueIndex:uq_leave_credit_employee_type" json:"leave_type"`
	Balance    int       `gorm:"not null;default:0" json:"balance"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (LeaveCredit) TableName() string {
	return "leave_credits"
}

func ValidLeaveType(t string) bool {
	_, ok := DefaultCredits[t]
	return ok
}
