package auth

import (
	"time"

	"go-attendance/internal/leave"
	"go-attendance/internal/permission"
)

type LoginRequest struct {
	EmployeeNumber string `json:"employee_number" binding:"required"`
	Password       string `json:"password" binding:"required"`

	// BiometricSample opsional; string buram untuk verifier yang terpasang
	BiometricSample string `json:"biometric_sample" binding:"omitempty"`
}

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	Employee    MeProfile `json:"employee"`
}

type MeProfile struct {
	ID             string           `json:"id"`
	EmployeeNumber string           `json:"employee_number"`
	FullName       string           `json:"full_name"`
	Position       string           `json:"position"`
	Department     string           `json:"department"`
	ScheduleGroup  string           `json:"schedule_group"`
	Permissions    permission.Flags `json:"permissions"`
}

type MeResponse struct {
	Profile        MeProfile                   `json:"profile"`
	SessionExpires time.Time                   `json:"session_expires"`
	LastActivityAt time.Time                   `json:"last_activity_at"`
	LeaveCredits   []leave.LeaveCreditResponse `json:"leave_credits"`
}
