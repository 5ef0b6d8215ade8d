package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisTokenPrefix = "csrf:"

type redisTokenStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisTokenStore returns a TokenStore backed by redis, for
// deployments running more than one server process. GETDEL keeps the
// consume step a single round trip, so two concurrent submissions of
// the same token cannot both succeed.
func NewRedisTokenStore(client *redis.Client, ttl time.Duration) TokenStore {
	return &redisTokenStore{client: client, ttl: ttl}
}

func (s *redisTokenStore) Mint(ctx context.Context) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}
	if err := s.client.Set(ctx, redisTokenPrefix+token, "1", s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *redisTokenStore) Consume(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}
	val, err := s.client.GetDel(ctx, redisTokenPrefix+token).Result()
	return err == nil && val != ""
}
