package attendance

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPresent = "PRESENT"
	StatusLate    = "LATE"
)

// Attendance adalah satu catatan kehadiran harian. Durasi disimpan dalam
// perseratus jam (1100 = 11.00 jam) supaya perhitungan payroll bebas
// floating point.
type Attendance struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_employee_date" json:"employee_id"`

	// AttendanceDate adalah tanggal lokal "2006-01-02" di timezone aplikasi.
	// Satu employee maksimal satu record per tanggal.
	AttendanceDate string `gorm:"type:varchar(10);not null;uniqueIndex:uq_attendance_employee_date" json:"attendance_date"`

	TimeIn  time.Time  `gorm:"not null" json:"time_in"`
	TimeOut *time.Time `json:"time_out,omitempty"`

	HoursWorkedHundredths int64 `gorm:"not null;default:0" json:"hours_worked_hundredths"`
	OvertimeHundredths    int64 `gorm:"not null;default:0" json:"overtime_hundredths"`

	Status string `gorm:"type:varchar(10);not null" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Attendance) TableName() string {
	return "attendances"
}

// IsOpen berarti sudah clock-in tapi belum clock-out.
func (a *Attendance) IsOpen() bool {
	return a.TimeOut == nil
}
