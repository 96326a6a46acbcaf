package payrollerrors

import (
	"net/http"

	"go-attendance/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee tidak ditemukan",
		http.StatusNotFound,
	)

	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"Periode payroll tidak valid, end harus >= start",
		http.StatusBadRequest,
	)

	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Format tanggal harus YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
