package service

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"bankclients/internal/domain"
)

var userRequests = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "bankclients_user_requests_total",
		Help: "User repository calls by operation and result",
	},
	[]string{"op", "result"},
)

func init() { prometheus.MustRegister(userRequests) }

// UserService 用例层：透传仓库结果，记录日志和指标
type UserService struct {
	repo domain.UserRepository
	log  *zap.Logger
}

func NewUserService(repo domain.UserRepository, l *zap.Logger) *UserService {
	if l == nil {
		l = zap.NewNop()
	}
	return &UserService{repo: repo, log: l}
}

func (s *UserService) GetUsers(ctx context.Context, forceRemote bool) ([]domain.User, error) {
	op := "list_cache"
	if forceRemote {
		op = "list_remote"
	}
	users, err := s.repo.GetUsers(ctx, forceRemote)
	s.observe(op, err)
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserService) GetUser(ctx context.Context, id int) (domain.User, error) {
	u, err := s.repo.GetUser(ctx, id)
	s.observe("get", err, zap.Int("user_id", id))
	return u, err
}

func (s *UserService) ListItems(ctx context.Context, forceRemote bool) ([]domain.UserItem, error) {
	users, err := s.GetUsers(ctx, forceRemote)
	if err != nil {
		return nil, err
	}
	return domain.ToItems(users), nil
}

func (s *UserService) Stats() domain.CacheStats { return s.repo.Stats() }

// Warmup 启动时拉一次远端；失败只记日志，之后可以再强制刷新
func (s *UserService) Warmup(ctx context.Context) {
	users, err := s.GetUsers(ctx, true)
	if err != nil {
		s.log.Warn("user cache warmup failed", zap.Error(err))
		return
	}
	s.log.Info("user cache warmed up", zap.Int("users", len(users)))
}

func (s *UserService) observe(op string, err error, fields ...zap.Field) {
	if err == nil {
		userRequests.WithLabelValues(op, "ok").Inc()
		return
	}
	kind := domain.KindOf(err)
	userRequests.WithLabelValues(op, kind.String()).Inc()

	fields = append(fields, zap.String("op", op), zap.String("kind", kind.String()), zap.Error(err))
	switch kind {
	case domain.KindUnknown:
		s.log.Error("user request failed", fields...)
	case domain.KindNotFound:
		s.log.Debug("user request failed", fields...)
	default:
		s.log.Warn("user request failed", fields...)
	}
}
