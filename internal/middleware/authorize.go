package middleware

import (
	"context"
	"errors"
	"net/http"

	"go-attendance/internal/permission"
	"go-attendance/internal/shared/apperror"
	"go-attendance/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// CapabilityChecker adalah interface lokal.
// Apapun yang bisa menjawab "employee X punya capability Y?" boleh masuk,
// biasanya employee.Service.
type CapabilityChecker interface {
	HasCapability(ctx context.Context, employeeID string, capability permission.Capability) (bool, error)
}

func Authorize(checker CapabilityChecker, capability permission.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		employeeID := c.GetString("employee_id")
		if employeeID == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing auth context", nil)
			c.Abort()
			return
		}

		allowed, err := checker.HasCapability(c.Request.Context(), employeeID, capability)
		if err != nil {
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				response.Error(c, appErr.HTTPStatus, appErr.Code, appErr.Message, nil)
			} else {
				response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Permission check failed", nil)
			}
			c.Abort()
			return
		}

		if !allowed {
			response.Error(c, http.StatusForbidden, "FORBIDDEN",
				"You do not have permission to access this resource",
				map[string]string{"required": string(capability)},
			)
			c.Abort()
			return
		}

		c.Next()
	}
}
