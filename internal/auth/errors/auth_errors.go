package autherrors

import (
	"net/http"

	"ems-console/internal/shared/apperror"
)

var (
	ErrLoginFailed = apperror.New(
		apperror.CodeUnauthorized,
		"Login failed",
		http.StatusUnauthorized,
	)

	// ErrInvalidUpstreamToken covers a 2xx login response without a usable
	// token in it.
	ErrInvalidUpstreamToken = apperror.New(
		apperror.CodeUpstream,
		"Invalid token received",
		http.StatusBadGateway,
	)

	ErrSessionNotFound = apperror.New(
		apperror.CodeUnauthorized,
		"You must be logged in to access this page",
		http.StatusUnauthorized,
	)

	ErrSessionExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Your session has expired, please log in again",
		http.StatusUnauthorized,
	)
)
