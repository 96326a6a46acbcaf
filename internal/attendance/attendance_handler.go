package attendance

import (
	"context"
	"net/http"
	"time"

	"go-attendance/internal/permission"
	"go-attendance/internal/shared/apperror"
	"go-attendance/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// CapabilityChecker sama dengan punya middleware, di-declare lokal supaya
// handler bisa membedakan "lihat semua" vs "lihat punya sendiri" tanpa
// memblokir request di level route.
type CapabilityChecker interface {
	HasCapability(ctx context.Context, employeeID string, capability permission.Capability) (bool, error)
}

type Handler struct {
	service Service
	checker CapabilityChecker
}

func NewHandler(service Service, checker CapabilityChecker) *Handler {
	return &Handler{service: service, checker: checker}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func parseAt(req ClockRequest) (time.Time, error) {
	if req.At == "" {
		return time.Now(), nil
	}
	return time.Parse(time.RFC3339, req.At)
}

func (h *Handler) ClockIn(c *gin.Context) {
	var req ClockRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	at, err := parseAt(req)
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Format waktu harus RFC3339", nil)
		return
	}

	resp, err := h.service.ClockIn(c.Request.Context(), c.GetString("employee_id"), at)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) ClockOut(c *gin.Context) {
	var req ClockRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	at, err := parseAt(req)
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Format waktu harus RFC3339", nil)
		return
	}

	resp, err := h.service.ClockOut(c.Request.Context(), c.GetString("employee_id"), at)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	actorID := c.GetString("employee_id")

	canReadAll := false
	if h.checker != nil {
		ok, err := h.checker.HasCapability(c.Request.Context(), actorID, permission.CapabilityViewAllAttendance)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		canReadAll = ok
	}

	resp, err := h.service.GetAll(c.Request.Context(), actorID, canReadAll)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
