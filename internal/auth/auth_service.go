package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	autherrors "ems-console/internal/auth/errors"
	"ems-console/internal/shared/apperror"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const DefaultSessionTTL = 24 * time.Hour

type Service interface {
	// Login exchanges credentials at the upstream auth endpoint, stores the
	// returned token and hands back the session id plus its lifetime.
	Login(ctx context.Context, email, password string) (sessionID string, ttl time.Duration, err error)

	// Resolve maps a session id to the stored upstream token. A missing or
	// expired token means the session is not authorized.
	Resolve(ctx context.Context, sessionID string) (token string, err error)

	SignOut(ctx context.Context, sessionID string) error
}

type service struct {
	store      SessionStore
	client     *http.Client
	loginURL   string
	sessionTTL time.Duration
	logger     *zap.Logger
}

func NewService(store SessionStore, client *http.Client, loginURL string, sessionTTL time.Duration, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	if client == nil {
		client = http.DefaultClient
	}
	if sessionTTL <= 0 {
		sessionTTL = DefaultSessionTTL
	}
	return &service{
		store:      store,
		client:     client,
		loginURL:   loginURL,
		sessionTTL: sessionTTL,
		logger:     l,
	}
}

func (s *service) Login(ctx context.Context, email, password string) (string, time.Duration, error) {
	payload, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return "", 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.loginURL, bytes.NewReader(payload))
	if err != nil {
		return "", 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error("upstream login unreachable", zap.Error(err))
		return "", 0, apperror.Wrap(err, apperror.CodeNetwork,
			apperror.ErrUpstreamUnreachable.Message, http.StatusBadGateway)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", 0, apperror.Wrap(err, apperror.CodeNetwork,
			apperror.ErrUpstreamUnreachable.Message, http.StatusBadGateway)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var upstream struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(body, &upstream)
		msg := upstream.Message
		if msg == "" {
			msg = autherrors.ErrLoginFailed.Message
		}
		s.logger.Warn("upstream login rejected",
			zap.Int("status", resp.StatusCode),
			zap.String("email", email),
		)
		return "", 0, apperror.New(apperror.CodeUnauthorized, msg, http.StatusUnauthorized)
	}

	var result struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &result); err != nil || result.Token == "" {
		return "", 0, autherrors.ErrInvalidUpstreamToken
	}

	ttl := s.sessionTTL
	if remaining, ok := tokenLifetime(result.Token); ok {
		if remaining <= 0 {
			return "", 0, autherrors.ErrSessionExpired
		}
		if remaining < ttl {
			ttl = remaining
		}
	}

	sessionID := uuid.NewString()
	if err := s.store.Save(ctx, sessionID, result.Token, ttl); err != nil {
		s.logger.Error("persist session failed", zap.Error(err))
		return "", 0, apperror.ErrInternal
	}

	s.logger.Info("login success", zap.String("email", email))
	return sessionID, ttl, nil
}

func (s *service) Resolve(ctx context.Context, sessionID string) (string, error) {
	if sessionID == "" {
		return "", autherrors.ErrSessionNotFound
	}

	token, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return "", err
	}

	// Redis TTL already tracks the token lifetime, but an exp claim is
	// re-checked here so a token that aged out between writes never passes
	// the gate.
	if remaining, ok := tokenLifetime(token); ok && remaining <= 0 {
		_ = s.store.Delete(ctx, sessionID)
		return "", autherrors.ErrSessionExpired
	}

	return token, nil
}

func (s *service) SignOut(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.store.Delete(ctx, sessionID)
}

// tokenLifetime inspects the upstream token without verifying its
// signature; the gateway does not hold the upstream signing key. Returns
// false when the token is not a JWT or carries no exp claim, in which case
// presence alone authorizes, bounded by the configured session TTL.
func tokenLifetime(token string) (time.Duration, bool) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return 0, false
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return 0, false
	}

	return time.Until(exp.Time), true
}
