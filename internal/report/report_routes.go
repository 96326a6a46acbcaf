package report

import (
	"go-attendance/internal/middleware"
	"go-attendance/internal/permission"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, session gin.HandlerFunc, checker middleware.CapabilityChecker) {
	group := r.Group("/reports")
	group.Use(session)
	{
		group.GET("/dashboard", middleware.Authorize(checker, permission.CapabilityViewReports), h.Dashboard)
	}
}
