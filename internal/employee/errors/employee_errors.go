package employeeerrors

import (
	"net/http"

	"ems-console/internal/shared/apperror"
)

// Fallback copy shown when the employee API fails without a usable message.
var (
	ErrLoadFailed = apperror.New(
		apperror.CodeUpstream,
		"Failed to load employees",
		http.StatusBadGateway,
	)

	ErrOperationFailed = apperror.New(
		apperror.CodeUpstream,
		"Operation failed. Please try again.",
		http.StatusBadGateway,
	)

	ErrDeleteFailed = apperror.New(
		apperror.CodeUpstream,
		"Failed to delete employee",
		http.StatusBadGateway,
	)
)
