package apperror

import "net/http"

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Authentication is required",
		http.StatusUnauthorized,
	)

	ErrValidation = New(
		CodeValidation,
		"Please fix the errors in the form",
		http.StatusBadRequest,
	)

	// ErrUpstreamUnreachable covers transport-level failures talking to the
	// employee API: DNS, refused connections, timeouts. Distinct from an
	// upstream non-2xx, which carries the server's own message.
	ErrUpstreamUnreachable = New(
		CodeNetwork,
		"Employee service is unreachable",
		http.StatusBadGateway,
	)
)
