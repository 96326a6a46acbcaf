package autherrors

import (
	"net/http"

	"go-attendance/internal/shared/apperror"
)

var (
	// ErrInvalidCredentials sengaja tidak membedakan "employee tidak ada"
	// dari "password salah"
	ErrInvalidCredentials = apperror.New(
		apperror.CodeAuthFailed,
		"Employee number atau password salah",
		http.StatusUnauthorized,
	)

	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Token tidak valid",
		http.StatusUnauthorized,
	)

	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Token sudah kedaluwarsa",
		http.StatusUnauthorized,
	)

	ErrSessionExpired = apperror.New(
		apperror.CodeSessionExpired,
		"Session sudah lewat 8 jam, silakan login ulang",
		http.StatusUnauthorized,
	)

	ErrSessionNotFound = apperror.New(
		apperror.CodeUnauthorized,
		"Session tidak ditemukan, silakan login",
		http.StatusUnauthorized,
	)

	ErrEmployeeInactive = apperror.New(
		apperror.CodeAuthFailed,
		"Employee number atau password salah",
		http.StatusUnauthorized,
	)

	ErrBiometricRejected = apperror.New(
		apperror.CodeAuthFailed,
		"Verifikasi biometrik gagal",
		http.StatusUnauthorized,
	)
)
