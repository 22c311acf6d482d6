package repo

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"bankclients/internal/domain"
)

const (
	fetchKey            = "users"
	defaultFetchTimeout = 30 * time.Second
)

// UserRepo 内存缓存 + 数据源。缓存要么为空，要么是最近一次成功拉取的完整结果。
type UserRepo struct {
	src          domain.UserDataSource
	sf           singleflight.Group
	fetchTimeout time.Duration

	mu          sync.RWMutex
	users       []domain.User
	refreshedAt time.Time
	refreshes   int64
	failures    int64
}

type Option func(*UserRepo)

// WithFetchTimeout 共享回源的上限，与单个调用方的 ctx 无关
func WithFetchTimeout(d time.Duration) Option {
	return func(r *UserRepo) {
		if d > 0 {
			r.fetchTimeout = d
		}
	}
}

func NewUserRepo(src domain.UserDataSource, opts ...Option) *UserRepo {
	r := &UserRepo{src: src, fetchTimeout: defaultFetchTimeout}
	for _, o := range opts {
		o(r)
	}
	return r
}

func (r *UserRepo) GetUsers(ctx context.Context, forceRemote bool) ([]domain.User, error) {
	if forceRemote {
		return r.fetchRemote(ctx)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.users) == 0 {
		return nil, domain.ErrCacheNotAvailable
	}
	return domain.CloneUsers(r.users), nil
}

// GetUser 只查缓存
func (r *UserRepo) GetUser(_ context.Context, id int) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.ID == id {
			return u.Clone(), nil
		}
	}
	return domain.User{}, domain.NotFound(id)
}

func (r *UserRepo) Stats() domain.CacheStats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return domain.CacheStats{
		Size:        len(r.users),
		RefreshedAt: r.refreshedAt,
		Refreshes:   r.refreshes,
		Failures:    r.failures,
	}
}

// fetchRemote 并发的强制刷新合并成一次回源，所有调用方拿到同一结果。
// 回源不跟随任何调用方取消；调用方自己的 ctx 结束时只有它提前返回。
func (r *UserRepo) fetchRemote(ctx context.Context) ([]domain.User, error) {
	ch := r.sf.DoChan(fetchKey, func() (any, error) {
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.fetchTimeout)
		defer cancel()
		return r.refresh(fctx)
	})
	select {
	case <-ctx.Done():
		return nil, domain.Unknown(ctx.Err(), "fetch users abandoned: "+ctx.Err().Error())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return domain.CloneUsers(res.Val.([]domain.User)), nil
	}
}

func (r *UserRepo) refresh(ctx context.Context) ([]domain.User, error) {
	users, err := r.src.FetchUsers(ctx)
	if err != nil {
		r.mu.Lock()
		r.failures++
		r.mu.Unlock()
		return nil, classify(err)
	}
	fresh := domain.CloneUsers(users)
	// 整体替换，不做 clear + append
	r.mu.Lock()
	r.users = fresh
	r.refreshedAt = time.Now()
	r.refreshes++
	r.mu.Unlock()
	return fresh, nil
}
