package service

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"bankclients/internal/domain"
	"bankclients/internal/repo"
)

type stubSource struct {
	users []domain.User
	err   error
}

func (s *stubSource) FetchUsers(context.Context) ([]domain.User, error) { return s.users, s.err }

func newService(src domain.UserDataSource) (*UserService, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return NewUserService(repo.NewUserRepo(src), zap.New(core)), logs
}

func TestListItems(t *testing.T) {
	src := &stubSource{users: []domain.User{
		{ID: 1, Name: "Alice", Company: &domain.Company{Name: "ACME"}},
		{ID: 2, Name: "Bob"},
	}}
	svc, _ := newService(src)

	items, err := svc.ListItems(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "ACME", items[0].Company)
	assert.Equal(t, "Bob", items[1].Name)

	// 之后读缓存
	src.users = nil
	items, err = svc.ListItems(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestGetUsersPropagatesTypedError(t *testing.T) {
	svc, logs := newService(&stubSource{})

	before := testutil.ToFloat64(userRequests.WithLabelValues("list_cache", "cache_not_available"))
	_, err := svc.GetUsers(context.Background(), false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCacheNotAvailable))
	assert.Equal(t, before+1, testutil.ToFloat64(userRequests.WithLabelValues("list_cache", "cache_not_available")))

	entries := logs.FilterMessage("user request failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "cache_not_available", entries[0].ContextMap()["kind"])
}

func TestGetUserNotFound(t *testing.T) {
	svc, _ := newService(&stubSource{users: []domain.User{{ID: 1, Name: "Alice"}}})
	svc.Warmup(context.Background())

	u, err := svc.GetUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Alice", u.Name)

	_, err = svc.GetUser(context.Background(), 42)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Equal(t, 1, svc.Stats().Size)
}

func TestWarmupFailureIsLogged(t *testing.T) {
	svc, logs := newService(&stubSource{err: errors.New("boom")})
	svc.Warmup(context.Background())

	assert.Equal(t, 1, logs.FilterMessage("user cache warmup failed").Len())
	assert.Zero(t, svc.Stats().Size)
	assert.EqualValues(t, 1, svc.Stats().Failures)
}
