package auth

import (
	"errors"
	"net/http"
	"os"

	"ems-console/internal/shared/apperror"
	"ems-console/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.MapValidationError(err)
		var appErr *apperror.AppError
		if errors.As(mapped, &appErr) {
			response.Error(c, appErr.HTTPStatus, appErr.Code, appErr.Message, nil)
			return
		}
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, "Invalid input", nil)
		return
	}

	sessionID, ttl, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	isProd := os.Getenv("APP_ENV") == "production"
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   isProd,
		SameSite: http.SameSiteLaxMode,
	})

	response.Success(c, http.StatusOK, LoginResponse{
		SessionID: sessionID,
		Email:     req.Email,
	}, nil)
}

func (h *Handler) Logout(c *gin.Context) {
	sessionID, _ := c.Cookie(SessionCookieName)
	if err := h.service.SignOut(c.Request.Context(), sessionID); err != nil {
		respondError(c, err)
		return
	}

	isProd := os.Getenv("APP_ENV") == "production"
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   isProd,
		SameSite: http.SameSiteLaxMode,
	})

	response.Success(c, http.StatusOK, "Logged out successfully!", nil)
}

// Session is mounted behind the gate; reaching it at all means the session
// is valid. The browser probes it before rendering protected views.
func (h *Handler) Session(c *gin.Context) {
	response.Success(c, http.StatusOK, SessionResponse{
		Authenticated: true,
		SessionID:     c.GetString("session_id"),
	}, nil)
}

func respondError(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		response.Error(c, appErr.HTTPStatus, appErr.Code, appErr.Message, appErr.Details)
		return
	}

	response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, apperror.ErrInternal.Message, nil)
}
