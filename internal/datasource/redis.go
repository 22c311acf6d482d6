package datasource

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"bankclients/internal/domain"
)

var ErrKeyNotFound = errors.New("users key not found")

// RedisSource 从一个 key 读取整份 JSON 数组（由其他服务写入）
type RedisSource struct {
	rdb *redis.Client
	key string
}

func NewRedisSource(addr, pass string, db int, key string) *RedisSource {
	return &RedisSource{
		rdb: redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db}),
		key: key,
	}
}

func (s *RedisSource) FetchUsers(ctx context.Context) ([]domain.User, error) {
	b, err := s.rdb.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, s.key)
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", s.key, err)
	}
	return decodeUsers(bytes.NewReader(b))
}

func (s *RedisSource) Close() error { return s.rdb.Close() }
