package auth

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, session, loginRateLimit gin.HandlerFunc) {
	group := r.Group("/session")
	{
		group.POST("", loginRateLimit, h.Login)
		group.GET("", session, h.Me)
		group.DELETE("", session, h.Logout)
	}
}
