package leave

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, session, idempotency, writeLimit gin.HandlerFunc) {
	group := r.Group("")
	group.Use(session)
	{
		group.POST("/leave-requests", writeLimit, idempotency, h.Submit)
		group.GET("/leave-requests", h.GetAll)
		group.GET("/leave-requests/:id", h.GetByID)
		group.PATCH("/leave-requests/:id", h.Resolve)

		group.GET("/leave-credits", h.GetCredits)
	}
}
