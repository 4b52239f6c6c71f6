package employee

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	employeeerrors "ems-console/internal/employee/errors"
	"ems-console/internal/shared/apperror"

	"go.uber.org/zap"
)

// Scope is the upstream listing partition selected before any client-side
// filtering runs.
type Scope string

const (
	ScopeAll      Scope = "all"
	ScopeActive   Scope = "active"
	ScopeInactive Scope = "inactive"
)

// ParseScope folds an arbitrary query value into a known scope; anything
// unrecognized lists everything.
func ParseScope(s string) Scope {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(ScopeActive):
		return ScopeActive
	case string(ScopeInactive):
		return ScopeInactive
	}
	return ScopeAll
}

func (s Scope) listPath() string {
	switch s {
	case ScopeActive:
		return "/active-employees"
	case ScopeInactive:
		return "/inactive-employees"
	}
	return "/all-employees-data"
}

type Repository interface {
	ListAll(ctx context.Context, scope Scope) ([]Record, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (Record, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (Record, error)
	Remove(ctx context.Context, id string) error
}

type httpRepository struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewHTTPRepository builds the repository client for the employee API.
// baseURL is the employees base path, e.g. http://localhost:5000/api/employees.
func NewHTTPRepository(baseURL string, client *http.Client, logger ...*zap.Logger) Repository {
	l := zap.L().Named("employee.repo")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.repo")
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &httpRepository{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		logger:  l,
	}
}

func (r *httpRepository) ListAll(ctx context.Context, scope Scope) ([]Record, error) {
	status, body, err := r.do(ctx, http.MethodGet, r.baseURL+scope.listPath(), nil)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, upstreamError(status, body, employeeerrors.ErrLoadFailed)
	}

	raws, err := decodeListing(body)
	if err != nil {
		r.logger.Error("decode employee listing failed", zap.Error(err))
		return nil, employeeerrors.ErrLoadFailed
	}

	return NormalizeAll(raws), nil
}

func (r *httpRepository) Create(ctx context.Context, req CreateEmployeeRequest) (Record, error) {
	status, body, err := r.do(ctx, http.MethodPost, r.baseURL+"/create-employee", req)
	if err != nil {
		return Record{}, err
	}
	if status < 200 || status >= 300 {
		return Record{}, upstreamError(status, body, employeeerrors.ErrOperationFailed)
	}

	return decodeRecord(body)
}

func (r *httpRepository) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (Record, error) {
	status, body, err := r.do(ctx, http.MethodPut, r.baseURL+"/update-employee/"+id, req)
	if err != nil {
		return Record{}, err
	}
	if status < 200 || status >= 300 {
		return Record{}, upstreamError(status, body, employeeerrors.ErrOperationFailed)
	}

	return decodeRecord(body)
}

func (r *httpRepository) Remove(ctx context.Context, id string) error {
	status, body, err := r.do(ctx, http.MethodDelete, r.baseURL+"/delete-employee/"+id, nil)
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		return upstreamError(status, body, employeeerrors.ErrDeleteFailed)
	}
	return nil
}

// do performs a single upstream exchange and returns the status plus the
// raw body. Transport failures come back as a NETWORK_ERROR AppError; the
// request context cancels the call when the browser disconnects, so a stale
// response is never applied.
func (r *httpRepository) do(ctx context.Context, method, url string, payload any) (int, []byte, error) {
	var reqBody io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, err
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return 0, nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := r.client.Do(req)
	if err != nil {
		r.logger.Error("employee api unreachable",
			zap.String("method", method),
			zap.String("url", url),
			zap.Error(err),
		)
		return 0, nil, apperror.Wrap(err, apperror.CodeNetwork,
			apperror.ErrUpstreamUnreachable.Message, http.StatusBadGateway)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, apperror.Wrap(err, apperror.CodeNetwork,
			apperror.ErrUpstreamUnreachable.Message, http.StatusBadGateway)
	}

	return resp.StatusCode, body, nil
}

// decodeListing accepts both upstream listing shapes: {data: [...]} and a
// bare array.
func decodeListing(body []byte) ([]RawRecord, error) {
	var envelope struct {
		Data []RawRecord `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Data != nil {
		return envelope.Data, nil
	}

	var raws []RawRecord
	if err := json.Unmarshal(body, &raws); err != nil {
		return nil, fmt.Errorf("unexpected listing payload: %w", err)
	}
	return raws, nil
}

// decodeRecord reads a single created/updated record, enveloped or bare,
// and normalizes it.
func decodeRecord(body []byte) (Record, error) {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	raw := body
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Data) > 0 {
		raw = envelope.Data
	}

	var rec RawRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return Record{}, employeeerrors.ErrOperationFailed
	}
	return rec.Normalize(), nil
}

// upstreamError surfaces the server-provided message/error text from a
// non-2xx response, falling back to the operation's generic message. The
// upstream status is kept when it is a usable HTTP error status.
func upstreamError(status int, body []byte, fallback *apperror.AppError) *apperror.AppError {
	var payload struct {
		Message   string `json:"message"`
		ErrorText string `json:"error"`
	}
	_ = json.Unmarshal(body, &payload)

	msg := payload.Message
	if msg == "" {
		msg = payload.ErrorText
	}
	if msg == "" {
		msg = fallback.Message
	}

	httpStatus := fallback.HTTPStatus
	if status >= 400 && status < 600 {
		httpStatus = status
	}

	return apperror.New(apperror.CodeUpstream, msg, httpStatus)
}
