package payroll

import (
	"context"
	"net/http"

	"go-attendance/internal/permission"
	"go-attendance/internal/shared/apperror"
	"go-attendance/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// CapabilityChecker di-declare lokal: employee biasa boleh hitung payroll
// dirinya sendiri, process_payroll dibutuhkan untuk employee lain.
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

func (h *Handler) Calculate(c *gin.Context) {
	actorID := c.GetString("employee_id")

	employeeID := c.Query("employee_id")
	if employeeID == "" {
		employeeID = actorID
	}
	startDate := c.Query("start")
	endDate := c.Query("end")
	if startDate == "" || endDate == "" {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput,
			"Query start dan end wajib diisi (YYYY-MM-DD)", nil)
		return
	}

	if employeeID != actorID {
		allowed, err := h.checker.HasCapability(c.Request.Context(), actorID, permission.CapabilityProcessPayroll)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		if !allowed {
			response.Error(c, http.StatusForbidden, apperror.CodeForbidden,
				"Butuh akses process_payroll untuk payroll employee lain", nil)
			return
		}
	}

	resp, err := h.service.Calculate(c.Request.Context(), employeeID, startDate, endDate)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
