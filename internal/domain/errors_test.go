package domain

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchErrorMessages(t *testing.T) {
	assert.Equal(t, "internet access not available, check network connection", ErrNetworkUnavailable.Error())
	assert.Equal(t, "cached data is not available, try fetching remote data", ErrCacheNotAvailable.Error())
	assert.Equal(t, "no user found with id:99", NotFound(99).Error())
	assert.Equal(t, "boom", Unknown(io.EOF, "boom").Error())
	assert.Equal(t, io.EOF.Error(), Unknown(io.EOF, "").Error())
}

func TestFetchErrorIsMatchesByKind(t *testing.T) {
	err := fmt.Errorf("get user: %w", NotFound(7))

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrCacheNotAvailable))
	assert.False(t, errors.Is(err, ErrNetworkUnavailable))

	var fe *FetchError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, 7, fe.UserID)
}

func TestUnknownKeepsCause(t *testing.T) {
	cause := errors.New("tls handshake failure")
	err := Unknown(cause, "fetch users failed")

	assert.True(t, errors.Is(err, ErrUnknown))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, KindUnknown, KindOf(err))
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"network", ErrNetworkUnavailable, KindNetworkUnavailable},
		{"cache", fmt.Errorf("wrapped: %w", ErrCacheNotAvailable), KindCacheNotAvailable},
		{"not found", NotFound(1), KindNotFound},
		{"plain error", errors.New("x"), KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
	assert.Equal(t, "network_unavailable", KindNetworkUnavailable.String())
	assert.Equal(t, "unknown", KindUnknown.String())
}
