package employee

import (
	"ems-console/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RegisterRoutes mounts the employee table endpoints behind the session
// gate. Mutations get the redis double-submit guard and tighter limits.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	gate gin.HandlerFunc,
	rdb *redis.Client,
) {
	employees := r.Group("/employees")
	employees.Use(gate)
	{
		employees.GET("",
			middleware.RateLimitBySession(5, 10),
			handler.Browse,
		)
		employees.POST("",
			middleware.RateLimitBySession(0.5, 2),
			middleware.SubmitGuard(rdb),
			handler.Create,
		)
		employees.PUT("/:id",
			middleware.RateLimitBySession(0.5, 2),
			middleware.SubmitGuard(rdb),
			handler.Update,
		)
		employees.DELETE("/:id",
			middleware.RateLimitBySession(0.2, 1),
			handler.Delete,
		)
	}
}
