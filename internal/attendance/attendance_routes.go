package attendance

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, session, idempotency, writeLimit gin.HandlerFunc) {
	group := r.Group("")
	group.Use(session)
	{
		group.POST("/clock-in", writeLimit, idempotency, h.ClockIn)
		group.POST("/clock-out", writeLimit, idempotency, h.ClockOut)
		group.GET("/attendances", h.GetAll)
	}
}
