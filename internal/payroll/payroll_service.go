package payroll

import (
	"context"
	"errors"
	"time"

	"go-attendance/internal/attendance"
	"go-attendance/internal/employee"
	payrollerrors "go-attendance/internal/payroll/errors"

	"gorm.io/gorm"
)

// deductionPercent dipotong flat dari gross (pajak + iuran).
const deductionPercent = 10

// overtimeMultiplierPercent: lembur dibayar 1.5x rate per jam.
const overtimeMultiplierPercent = 150

// AttendanceSource adalah interface lokal; attendance.Repository yang implement.
type AttendanceSource interface {
	FindCompletedInRange(ctx context.Context, employeeID, startDate, endDate string) ([]attendance.Attendance, error)
}

// EmployeeDirectory adalah interface lokal; employee.Repository yang implement.
type EmployeeDirectory interface {
	FindByID(ctx context.Context, id string) (*employee.Employee, error)
}

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Calculate(ctx context.Context, employeeID, startDate, endDate string) (PayrollEstimateResponse, error)
}

type service struct {
	attendances AttendanceSource
	employees   EmployeeDirectory
}

func NewService(attendances AttendanceSource, employees EmployeeDirectory) Service {
	return &service{attendances: attendances, employees: employees}
}

// Calculate murni baca: hitung ulang dari attendance yang sudah complete.
// Dipanggil dua kali dengan input sama hasilnya sama.
func (s *service) Calculate(ctx context.Context, employeeID, startDate, endDate string) (PayrollEstimateResponse, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return PayrollEstimateResponse{}, payrollerrors.ErrInvalidDateFormat
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return PayrollEstimateResponse{}, payrollerrors.ErrInvalidDateFormat
	}
	if end.Before(start) {
		return PayrollEstimateResponse{}, payrollerrors.ErrInvalidPeriod
	}

	empl, err := s.employees.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayrollEstimateResponse{}, payrollerrors.ErrEmployeeNotFound
		}
		return PayrollEstimateResponse{}, err
	}

	rows, err := s.attendances.FindCompletedInRange(ctx, employeeID, startDate, endDate)
	if err != nil {
		return PayrollEstimateResponse{}, err
	}

	var totalHours, totalOvertime int64
	for i := range rows {
		totalHours += rows[i].HoursWorkedHundredths
		totalOvertime += rows[i].OvertimeHundredths
	}
	daysWorked := len(rows)

	basicPay := empl.DailyRateCents * int64(daysWorked)

	// rate/jam * 1.5 * jam lembur; perseratus jam dan persen keduanya
	// skala 100, jadi pembaginya 100*100
	overtimePay := roundHalfUpDiv(empl.HourlyRateCents*overtimeMultiplierPercent*totalOvertime, 100*100)

	gross := basicPay + overtimePay
	deductions := roundHalfUpDiv(gross*deductionPercent, 100)
	net := gross - deductions

	return PayrollEstimateResponse{
		EmployeeID:              employeeID,
		EmployeeName:            empl.FullName(),
		PeriodStart:             startDate,
		PeriodEnd:               endDate,
		DaysWorked:              daysWorked,
		TotalHoursHundredths:    totalHours,
		TotalOvertimeHundredths: totalOvertime,
		BasicPayCents:           basicPay,
		OvertimePayCents:        overtimePay,
		GrossPayCents:           gross,
		DeductionsCents:         deductions,
		NetPayCents:             net,
	}, nil
}

// roundHalfUpDiv membagi dengan pembulatan half up, untuk nilai non-negatif.
func roundHalfUpDiv(numer, denom int64) int64 {
	return (numer + denom/2) / denom
}
