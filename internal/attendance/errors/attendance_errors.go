package attendanceerrors

import (
	"net/http"

	"go-attendance/internal/shared/apperror"
)

var (
	ErrAlreadyClockedIn = apperror.New(
		apperror.CodeConflict,
		"Sudah clock-in untuk hari ini",
		http.StatusConflict,
	)

	ErrOpenAttendance = apperror.New(
		apperror.CodeConflict,
		"Masih ada attendance yang belum di-clock-out",
		http.StatusConflict,
	)

	ErrNoOpenClockIn = apperror.New(
		apperror.CodeInvalidState,
		"Tidak ada clock-in yang sedang terbuka",
		http.StatusUnprocessableEntity,
	)

	ErrClockOutBeforeClockIn = apperror.New(
		apperror.CodeInvalidInput,
		"Waktu clock-out harus setelah clock-in",
		http.StatusBadRequest,
	)

	ErrAttendanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Attendance tidak ditemukan",
		http.StatusNotFound,
	)

	ErrEmployeeNotActive = apperror.New(
		apperror.CodeInvalidState,
		"Employee sudah tidak aktif",
		http.StatusUnprocessableEntity,
	)

	ErrScheduleNotFound = apperror.New(
		apperror.CodeInvalidState,
		"Schedule untuk employee ini tidak ditemukan",
		http.StatusUnprocessableEntity,
	)

	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"Rentang tanggal tidak valid",
		http.StatusBadRequest,
	)
)
