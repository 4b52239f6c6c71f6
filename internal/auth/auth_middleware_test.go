package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ems-console/internal/auth"
	autherrors "ems-console/internal/auth/errors"
	"ems-console/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeAuthService struct {
	LoginFn   func(ctx context.Context, email, password string) (string, time.Duration, error)
	ResolveFn func(ctx context.Context, sessionID string) (string, error)
	SignOutFn func(ctx context.Context, sessionID string) error
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (string, time.Duration, error) {
	return f.LoginFn(ctx, email, password)
}
func (f *fakeAuthService) Resolve(ctx context.Context, sessionID string) (string, error) {
	return f.ResolveFn(ctx, sessionID)
}
func (f *fakeAuthService) SignOut(ctx context.Context, sessionID string) error {
	return f.SignOutFn(ctx, sessionID)
}

func gatedRouter(svc auth.Service, probe gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", auth.SessionGate(svc), probe)
	return r
}

func TestSessionGate(t *testing.T) {
	t.Run("no credential at all is rejected", func(t *testing.T) {
		svc := &fakeAuthService{
			ResolveFn: func(ctx context.Context, sessionID string) (string, error) {
				t.Fatal("resolve must not be called without a session id")
				return "", nil
			},
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		gatedRouter(svc, func(c *gin.Context) { c.Status(http.StatusOK) }).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "You must be logged in to access this page")
	})

	t.Run("session cookie passes and propagates the token", func(t *testing.T) {
		svc := &fakeAuthService{
			ResolveFn: func(ctx context.Context, sessionID string) (string, error) {
				assert.Equal(t, "sess-1", sessionID)
				return "upstream-token", nil
			},
		}

		probe := func(c *gin.Context) {
			assert.Equal(t, "sess-1", c.GetString("session_id"))
			assert.Equal(t, "sess-1", contextutil.GetSessionID(c.Request.Context()))
			assert.Equal(t, "upstream-token", contextutil.GetUpstreamToken(c.Request.Context()))
			c.Status(http.StatusOK)
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: "sess-1"})
		gatedRouter(svc, probe).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("bearer header works for non-browser clients", func(t *testing.T) {
		var gotID string
		svc := &fakeAuthService{
			ResolveFn: func(ctx context.Context, sessionID string) (string, error) {
				gotID = sessionID
				return "upstream-token", nil
			},
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer sess-2")
		gatedRouter(svc, func(c *gin.Context) { c.Status(http.StatusOK) }).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "sess-2", gotID)
	})

	t.Run("expired session is rejected with its own message", func(t *testing.T) {
		svc := &fakeAuthService{
			ResolveFn: func(ctx context.Context, sessionID string) (string, error) {
				return "", autherrors.ErrSessionExpired
			},
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: "sess-1"})
		gatedRouter(svc, func(c *gin.Context) { c.Status(http.StatusOK) }).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Your session has expired, please log in again")
	})
}
