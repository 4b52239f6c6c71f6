package employee

import (
	"context"
	"strings"
	"time"

	"ems-console/internal/events"
	"ems-console/internal/shared/apperror"
	"ems-console/internal/shared/contextutil"
	"ems-console/internal/shared/response"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const defaultPageSize = 10

type BrowseResult struct {
	Employees []Record
	Stats     WorkingSetStats
	Meta      response.PaginationMeta
}

type Service interface {
	Browse(ctx context.Context, q BrowseQuery) (BrowseResult, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (Record, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (Record, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo      Repository
	publisher EventPublisher
	logger    *zap.Logger
}

func NewService(repo Repository, publisher EventPublisher, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	if publisher == nil {
		publisher = NewNoopEventPublisher()
	}
	return &service{
		repo:      repo,
		publisher: publisher,
		logger:    l,
	}
}

// Browse rebuilds the working set from the upstream listing for the given
// scope, then runs the pure filter -> pager pipeline over it. The working
// set is never patched incrementally; every call refetches, so the view can
// not diverge from server state.
func (s *service) Browse(ctx context.Context, q BrowseQuery) (BrowseResult, error) {
	rid := contextutil.GetRequestID(ctx)
	scope := ParseScope(q.Scope)
	s.logger.Debug("browse employees requested",
		zap.String("request_id", rid),
		zap.String("scope", string(scope)),
		zap.String("term", q.Term),
		zap.String("status", q.Status),
		zap.Int("page", q.Page),
	)

	records, err := s.repo.ListAll(ctx, scope)
	if err != nil {
		s.logger.Error("browse employees fetch failed", zap.String("request_id", rid), zap.Error(err))
		return BrowseResult{}, err
	}

	stats := WorkingSetStats{Total: len(records)}
	for _, r := range records {
		switch strings.ToLower(r.Status) {
		case StatusActive:
			stats.Active++
		case StatusInactive:
			stats.Inactive++
		}
	}

	size := q.Size
	if size <= 0 {
		size = defaultPageSize
	}

	filtered := Filter(records, q.Term, q.Status)
	page := Page(filtered, q.Page, size)

	return BrowseResult{
		Employees: page,
		Stats:     stats,
		Meta:      response.NewPaginationMeta(len(filtered), q.Page, size),
	}, nil
}

// Create validates the candidate first; a non-empty error map blocks the
// submit before any network call. The submitted secret is bcrypt-hashed and
// only the hash travels upstream.
func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (Record, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	if errs := req.Validate(); len(errs) > 0 {
		s.logger.Warn("create employee rejected by validation",
			zap.String("request_id", rid),
			zap.Int("fields", len(errs)),
		)
		return Record{}, apperror.ErrValidation.WithDetails(errs)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.PasswordHash), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("create employee hash password failed", zap.String("request_id", rid), zap.Error(err))
		return Record{}, apperror.ErrInternal
	}
	req.PasswordHash = string(hash)
	req.Status = NormalizeStatus(req.Status)

	created, err := s.repo.Create(ctx, req)
	if err != nil {
		s.logger.Error("create employee upstream failed", zap.String("request_id", rid), zap.Error(err))
		return Record{}, err
	}

	s.publishAction(ctx, events.ActionEmployeeCreated, created.ID)
	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", created.ID),
	)
	return created, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (Record, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)

	if errs := req.Validate(); len(errs) > 0 {
		s.logger.Warn("update employee rejected by validation",
			zap.String("request_id", rid),
			zap.Int("fields", len(errs)),
		)
		return Record{}, apperror.ErrValidation.WithDetails(errs)
	}

	req.Status = NormalizeStatus(req.Status)

	updated, err := s.repo.Update(ctx, id, req)
	if err != nil {
		s.logger.Error("update employee upstream failed", zap.String("request_id", rid), zap.Error(err))
		return Record{}, err
	}

	s.publishAction(ctx, events.ActionEmployeeUpdated, updated.ID)
	s.logger.Info("update employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)

	if err := s.repo.Remove(ctx, id); err != nil {
		s.logger.Error("delete employee upstream failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	s.publishAction(ctx, events.ActionEmployeeDeleted, id)
	s.logger.Info("delete employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)
	return nil
}

// publishAction is fire-and-forget: the mutation already succeeded upstream,
// so a broker hiccup only costs the activity entry.
func (s *service) publishAction(ctx context.Context, action, employeeID string) {
	event := events.AdminActionEvent{
		EventType:  action,
		RequestID:  contextutil.GetRequestID(ctx),
		SessionID:  contextutil.GetSessionID(ctx),
		EmployeeID: employeeID,
		OccurredAt: time.Now().UTC(),
	}

	if err := s.publisher.PublishAdminAction(ctx, event); err != nil {
		s.logger.Warn("publish admin action failed",
			zap.String("action", action),
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
	}
}
