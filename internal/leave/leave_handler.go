package leave

import (
	"context"
	"net/http"

	"go-attendance/internal/permission"
	"go-attendance/internal/shared/apperror"
	"go-attendance/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// CapabilityChecker di-declare lokal: approve_leaves boleh lihat semua
// pengajuan, employee biasa hanya miliknya.
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

func (h *Handler) Submit(c *gin.Context) {
	var req SubmitLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	resp, err := h.service.Submit(c.Request.Context(), c.GetString("employee_id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Resolve(c *gin.Context) {
	var req ResolveLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	resp, err := h.service.Resolve(c.Request.Context(), c.GetString("employee_id"), c.Param("id"), req)
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
		ok, err := h.checker.HasCapability(c.Request.Context(), actorID, permission.CapabilityApproveLeaves)
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

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetCredits(c *gin.Context) {
	resp, err := h.service.GetCredits(c.Request.Context(), c.GetString("employee_id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
