package auth

import (
	"errors"
	"strings"

	autherrors "ems-console/internal/auth/errors"
	"ems-console/internal/shared/apperror"
	"ems-console/internal/shared/contextutil"
	"ems-console/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const SessionCookieName = "ems_session"

// SessionGate protects console views: no valid session, no content. The
// browser reads the 401 and redirects to the login screen. On success the
// session id and the resolved upstream token are propagated on the request
// context for downstream proxy calls.
func SessionGate(service Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := readSessionID(c)
		if sessionID == "" {
			e := autherrors.ErrSessionNotFound
			response.Error(c, e.HTTPStatus, e.Code, e.Message, nil)
			c.Abort()
			return
		}

		token, err := service.Resolve(c.Request.Context(), sessionID)
		if err != nil {
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				response.Error(c, appErr.HTTPStatus, appErr.Code, appErr.Message, nil)
			} else {
				e := apperror.ErrUnauthorized
				response.Error(c, e.HTTPStatus, e.Code, e.Message, nil)
			}
			c.Abort()
			return
		}

		c.Set("session_id", sessionID)

		ctx := contextutil.WithSessionID(c.Request.Context(), sessionID)
		ctx = contextutil.WithUpstreamToken(ctx, token)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func readSessionID(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie
	}

	// Non-browser clients may send the session id as a bearer credential.
	header := c.GetHeader("Authorization")
	if sid, found := strings.CutPrefix(header, "Bearer "); found {
		return sid
	}
	return ""
}
