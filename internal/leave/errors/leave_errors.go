package leaveerrors

import (
	"net/http"

	"go-attendance/internal/shared/apperror"
)

var (
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave request tidak ditemukan",
		http.StatusNotFound,
	)

	ErrInvalidLeaveID = apperror.New(
		apperror.CodeInvalidInput,
		"Format leave request ID tidak valid",
		http.StatusBadRequest,
	)

	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"Tanggal selesai harus >= tanggal mulai",
		http.StatusBadRequest,
	)

	ErrInvalidLeaveType = apperror.New(
		apperror.CodeInvalidInput,
		"Tipe cuti harus annual, sick, atau emergency",
		http.StatusBadRequest,
	)

	ErrLeaveOverlap = apperror.New(
		apperror.CodeConflict,
		"Sudah ada pengajuan cuti di rentang tanggal ini",
		http.StatusConflict,
	)

	ErrLeaveAlreadyResolved = apperror.New(
		apperror.CodeInvalidState,
		"Leave request sudah diputuskan, tidak bisa diubah lagi",
		http.StatusUnprocessableEntity,
	)

	ErrInsufficientLeaveCredits = apperror.New(
		apperror.CodeInvalidState,
		"Saldo cuti tidak cukup",
		http.StatusUnprocessableEntity,
	)

	ErrInvalidResolutionStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Status keputusan harus APPROVED atau REJECTED",
		http.StatusBadRequest,
	)

	ErrRejectionReasonRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Alasan penolakan wajib diisi",
		http.StatusBadRequest,
	)

	ErrCannotResolveOwnLeave = apperror.New(
		apperror.CodeForbidden,
		"Tidak bisa memutuskan pengajuan cuti sendiri",
		http.StatusForbidden,
	)
)
