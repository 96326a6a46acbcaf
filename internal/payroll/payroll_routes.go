package payroll

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, session gin.HandlerFunc) {
	group := r.Group("/payroll")
	group.Use(session)
	{
		group.GET("", h.Calculate)
	}
}
