package dashboard

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"ems-console/internal/shared/apperror"
	"ems-console/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	statsCacheKey = "dashboard:stats"
	statsCacheTTL = 30 * time.Second
)

type Service interface {
	Stats(ctx context.Context) (StatsResponse, error)
}

type service struct {
	statsURL string
	client   *http.Client
	rdb      *redis.Client
	sf       *singleflight.Group
	logger   *zap.Logger
}

func NewService(statsURL string, client *http.Client, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &service{
		statsURL: statsURL,
		client:   client,
		rdb:      rdb,
		sf:       &singleflight.Group{},
		logger:   l,
	}
}

// Stats serves the dashboard cards. The upstream aggregate is cached
// briefly and concurrent refreshes collapse into one upstream call, so a
// wall of admins opening the dashboard costs a single fetch.
func (s *service) Stats(ctx context.Context) (StatsResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, statsCacheKey).Result(); err == nil {
			var resp StatsResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(statsCacheKey, func() (interface{}, error) {
		resp, err := s.fetch(ctx)
		if err != nil {
			return StatsResponse{}, err
		}

		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, statsCacheKey, data, statsCacheTTL)
			}
		}

		return resp, nil
	})
	if err != nil {
		return StatsResponse{}, err
	}

	return v.(StatsResponse), nil
}

func (s *service) fetch(ctx context.Context) (StatsResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.statsURL, nil)
	if err != nil {
		return StatsResponse{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token := contextutil.GetUpstreamToken(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error("dashboard stats unreachable", zap.Error(err))
		return StatsResponse{}, apperror.Wrap(err, apperror.CodeNetwork,
			apperror.ErrUpstreamUnreachable.Message, http.StatusBadGateway)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return StatsResponse{}, apperror.Wrap(err, apperror.CodeNetwork,
			apperror.ErrUpstreamUnreachable.Message, http.StatusBadGateway)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var upstream struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(body, &upstream)
		msg := upstream.Message
		if msg == "" {
			msg = "Failed to fetch dashboard data"
		}
		return StatsResponse{}, apperror.New(apperror.CodeUpstream, msg, http.StatusBadGateway)
	}

	var envelope struct {
		Data rawStats `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		s.logger.Error("decode dashboard stats failed", zap.Error(err))
		return StatsResponse{}, apperror.New(apperror.CodeUpstream,
			"Failed to fetch dashboard data", http.StatusBadGateway)
	}

	return mapToResponse(envelope.Data), nil
}
