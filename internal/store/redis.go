package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"codetext-backend/internal/config"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps shares in Redis, one string key per code.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisStore(cfg config.RedisConfig, ttl time.Duration) (*RedisStore, error) {
	if cfg.Address == "" {
		return nil, errors.New("redis address cannot be empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Address, err)
	}

	return &RedisStore{
		client: client,
		prefix: cfg.KeyPrefix,
		ttl:    ttl,
	}, nil
}

func (s *RedisStore) key(code string) string {
	if s.prefix == "" {
		return code
	}
	return s.prefix + ":" + code
}

func (s *RedisStore) Put(ctx context.Context, code, content string) error {
	// a zero TTL means no expiry
	ok, err := s.client.SetNX(ctx, s.key(code), content, s.ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to set share %s: %w", code, err)
	}
	if !ok {
		return ErrCodeTaken
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, code string) (string, error) {
	val, err := s.client.Get(ctx, s.key(code)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to get share %s: %w", code, err)
	}
	return val, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
