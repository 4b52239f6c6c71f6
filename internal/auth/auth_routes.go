package auth

import (
	"ems-console/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, gate gin.HandlerFunc) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", middleware.RateLimitByIP(0.5, 5), handler.Login)
		authGroup.POST("/logout", handler.Logout)
		authGroup.GET("/session", gate, handler.Session)
	}
}
