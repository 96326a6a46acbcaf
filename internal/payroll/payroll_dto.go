package payroll

// PayrollEstimateResponse adalah hasil hitung payroll untuk satu periode.
// Semua nilai uang dalam sen, durasi dalam perseratus jam. Ini estimasi
// read-only: tidak ada yang dipersist.
type PayrollEstimateResponse struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	PeriodStart  string `json:"period_start"`
	PeriodEnd    string `json:"period_end"`

	DaysWorked              int   `json:"days_worked"`
	TotalHoursHundredths    int64 `json:"total_hours_hundredths"`
	TotalOvertimeHundredths int64 `json:"total_overtime_hundredths"`

	BasicPayCents    int64 `json:"basic_pay_cents"`
	OvertimePayCents int64 `json:"overtime_pay_cents"`
	GrossPayCents    int64 `json:"gross_pay_cents"`
	DeductionsCents  int64 `json:"deductions_cents"`
	NetPayCents      int64 `json:"net_pay_cents"`
}
