package schedule

import (
	"go-attendance/internal/middleware"
	"go-attendance/internal/permission"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, session gin.HandlerFunc, checker middleware.CapabilityChecker) {
	schedules := r.Group("/schedules")
	schedules.Use(session)
	{
		// Semua employee boleh lihat daftar schedule
		schedules.GET("", h.GetAll)
		schedules.GET("/:id", h.GetByID)

		schedules.POST("", middleware.Authorize(checker, permission.CapabilityManageSchedules), h.Create)
		schedules.PUT("/:id", middleware.Authorize(checker, permission.CapabilityManageSchedules), h.Update)
		schedules.DELETE("/:id", middleware.Authorize(checker, permission.CapabilityManageSchedules), h.Delete)
	}
}
