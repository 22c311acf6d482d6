package datasource

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bankclients/internal/core/config"
)

func TestDecodeUsers(t *testing.T) {
	users, err := decodeUsers(strings.NewReader(`[{"id":7,"name":"Alice","company":{"name":"ACME"}}]`))
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, 7, users[0].ID)
	assert.Equal(t, "ACME", users[0].Company.Name)
	assert.Nil(t, users[0].Address)

	users, err = decodeUsers(strings.NewReader(`[]`))
	require.NoError(t, err)
	assert.Empty(t, users)

	_, err = decodeUsers(strings.NewReader(`not json`))
	assert.Error(t, err)
}

func TestNewByDriver(t *testing.T) {
	l := zap.NewNop()

	cfg := &config.Config{Source: config.Source{Driver: "HTTP", BaseURL: "http://localhost:9999", Endpoint: "users", TimeoutSec: 1}}
	src, cleanup, err := New(cfg, l)
	require.NoError(t, err)
	defer cleanup()
	hs, ok := src.(*HTTPSource)
	require.True(t, ok)
	assert.Equal(t, "http://localhost:9999/users", hs.URL())

	cfg = &config.Config{
		Source: config.Source{Driver: DriverRedis},
		Redis:  config.Redis{Addr: "127.0.0.1:6379", Key: "bankclients:users"},
	}
	src, cleanup, err = New(cfg, l)
	require.NoError(t, err)
	_, ok = src.(*RedisSource)
	assert.True(t, ok)
	cleanup()

	cfg = &config.Config{Source: config.Source{Driver: "ldap"}}
	_, cleanup, err = New(cfg, l)
	assert.Error(t, err)
	assert.NotNil(t, cleanup)

	cfg = &config.Config{Source: config.Source{Driver: DriverDB}, DB: config.DB{Driver: "oracle"}}
	_, _, err = New(cfg, l)
	assert.Error(t, err)
}
