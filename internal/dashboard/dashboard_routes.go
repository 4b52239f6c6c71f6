package dashboard

import (
	"ems-console/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, gate gin.HandlerFunc) {
	stats := r.Group("/dashboard")
	stats.Use(gate)
	{
		stats.GET("/stats", middleware.RateLimitBySession(2, 5), handler.Stats)
	}
}
