package scheduleerrors

import (
	"net/http"

	"go-attendance/internal/shared/apperror"
)

var (
	ErrScheduleNotFound = apperror.New(
		apperror.CodeNotFound,
		"Schedule tidak ditemukan",
		http.StatusNotFound,
	)

	ErrScheduleCodeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Kode schedule sudah terpakai",
		http.StatusConflict,
	)

	ErrInvalidScheduleID = apperror.New(
		apperror.CodeInvalidInput,
		"Format schedule ID tidak valid",
		http.StatusBadRequest,
	)

	ErrInvalidTimeRange = apperror.New(
		apperror.CodeInvalidInput,
		"Jam pulang harus setelah jam masuk",
		http.StatusBadRequest,
	)

	ErrInvalidWorkingDay = apperror.New(
		apperror.CodeInvalidInput,
		"working_days harus berisi nama hari valid (Mon..Sun)",
		http.StatusBadRequest,
	)

	ErrFixedScheduleNeedsHours = apperror.New(
		apperror.CodeInvalidInput,
		"Schedule fixed wajib punya start_time dan end_time",
		http.StatusBadRequest,
	)

	ErrScheduleInUse = apperror.New(
		apperror.CodeConflict,
		"Schedule masih dipakai oleh employee aktif",
		http.StatusConflict,
	)
)
