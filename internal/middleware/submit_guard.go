package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"ems-console/internal/shared/apperror"
	"ems-console/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const submitLockTTL = 30 * time.Second

// SubmitGuard rejects a duplicate create/update while the first one is still
// in flight, keyed per session and route. The lock is released when the
// handler returns; its TTL is only a safety net against a crashed worker.
func SubmitGuard(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		sessionID := c.GetString("session_id")
		if sessionID == "" {
			c.Next()
			return
		}

		lockKey := fmt.Sprintf("submit:%s:%s:%s", sessionID, c.Request.Method, c.Request.URL.Path)

		acquired, err := rdb.SetNX(c.Request.Context(), lockKey, "locked", submitLockTTL).Result()
		if err != nil {
			// Redis being down should not block the admin; the upstream API
			// remains the source of truth.
			c.Next()
			return
		}
		if !acquired {
			response.Error(c, http.StatusConflict, apperror.CodeConflict,
				"This form is already being submitted, please wait", nil)
			c.Abort()
			return
		}

		// Release on a fresh context: the request context may already be
		// cancelled when the browser gave up on the submit.
		defer rdb.Del(context.Background(), lockKey)
		c.Next()
	}
}
