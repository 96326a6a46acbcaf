package employee

import "go-attendance/internal/permission"

type CreateEmployeeRequest struct {
	EmployeeNumber string `json:"employee_number"` // kosong = auto-generate
	Password       string `json:"password" binding:"required,min=6"`

	FirstName  string `json:"first_name" binding:"required"`
	MiddleName string `json:"middle_name"`
	LastName   string `json:"last_name" binding:"required"`

	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Birthday    string `json:"birthday"`
	CivilStatus string `json:"civil_status" binding:"omitempty,oneof=single married widowed separated"`
	HireDate    string `json:"hire_date" binding:"required"`

	Position      string `json:"position"`
	Department    string `json:"department"`
	ScheduleGroup string `json:"schedule_group" binding:"required"`

	DailyRateCents  int64 `json:"daily_rate_cents" binding:"min=0"`
	HourlyRateCents int64 `json:"hourly_rate_cents" binding:"min=0"`

	Permissions permission.Flags `json:"permissions"`
	Groups      []string         `json:"groups"`
}

type UpdateEmployeeRequest struct {
	FirstName  string `json:"first_name" binding:"required"`
	MiddleName string `json:"middle_name"`
	LastName   string `json:"last_name" binding:"required"`

	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Birthday    string `json:"birthday"`
	CivilStatus string `json:"civil_status" binding:"omitempty,oneof=single married widowed separated"`

	Position      string `json:"position"`
	Department    string `json:"department"`
	ScheduleGroup string `json:"schedule_group" binding:"required"`

	DailyRateCents  int64 `json:"daily_rate_cents" binding:"min=0"`
	HourlyRateCents int64 `json:"hourly_rate_cents" binding:"min=0"`

	Status string `json:"status" binding:"required,oneof=active inactive"`

	Permissions permission.Flags `json:"permissions"`
	Groups      []string         `json:"groups"`
}

type EmployeeResponse struct {
	ID             string `json:"id"`
	EmployeeNumber string `json:"employee_number"`
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone,omitempty"`
	Position       string `json:"position,omitempty"`
	Department     string `json:"department,omitempty"`
	ScheduleGroup  string `json:"schedule_group"`
	HireDate       string `json:"hire_date"`

	DailyRateCents  int64 `json:"daily_rate_cents"`
	HourlyRateCents int64 `json:"hourly_rate_cents"`

	Status      string           `json:"status"`
	Permissions permission.Flags `json:"permissions"`
	Groups      []string         `json:"groups,omitempty"`
}
