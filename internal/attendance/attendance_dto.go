package attendance

import "time"

type ClockRequest struct {
	// At opsional, format RFC3339. Kosong berarti "sekarang" di server.
	At string `json:"at" binding:"omitempty"`
}

type AttendanceResponse struct {
	ID                    string     `json:"id"`
	EmployeeID            string     `json:"employee_id"`
	AttendanceDate        string     `json:"attendance_date"`
	TimeIn                time.Time  `json:"time_in"`
	TimeOut               *time.Time `json:"time_out,omitempty"`
	HoursWorkedHundredths int64      `json:"hours_worked_hundredths"`
	OvertimeHundredths    int64      `json:"overtime_hundredths"`
	Status                string     `json:"status"`
}

func ToAttendanceResponse(a *Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:                    a.ID.String(),
		EmployeeID:            a.EmployeeID.String(),
		AttendanceDate:        a.AttendanceDate,
		TimeIn:                a.TimeIn,
		TimeOut:               a.TimeOut,
		HoursWorkedHundredths: a.HoursWorkedHundredths,
		OvertimeHundredths:    a.OvertimeHundredths,
		Status:                a.Status,
	}
}
