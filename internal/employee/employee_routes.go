package employee

import (
	"go-attendance/internal/middleware"
	"go-attendance/internal/permission"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, session gin.HandlerFunc, checker middleware.CapabilityChecker) {
	employees := r.Group("/employees")
	employees.Use(session)
	{
		employees.GET("", middleware.Authorize(checker, permission.CapabilityManageEmployees), h.GetAll)
		employees.GET("/:id", middleware.Authorize(checker, permission.CapabilityManageEmployees), h.GetByID)
		employees.POST("", middleware.Authorize(checker, permission.CapabilityManageEmployees), h.Create)
		employees.PUT("/:id", middleware.Authorize(checker, permission.CapabilityManageEmployees), h.Update)
		employees.DELETE("/:id", middleware.Authorize(checker, permission.CapabilityManageEmployees), h.Delete)
	}
}
