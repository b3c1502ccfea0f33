package store

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"codetext-backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Redis integration tests run only when REDIS_ADDR is set.
func newTestRedisStore(t *testing.T, ttl time.Duration) *RedisStore {
	t.Helper()

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("Skipping Redis integration tests - set REDIS_ADDR to run")
	}

	st, err := NewRedisStore(config.RedisConfig{
		Address:   addr,
		KeyPrefix: fmt.Sprintf("test-%d", time.Now().UnixNano()),
	}, ttl)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestNewRedisStore_EmptyAddress(t *testing.T) {
	st, err := NewRedisStore(config.RedisConfig{}, 0)

	assert.Error(t, err)
	assert.Nil(t, st)
}

func TestRedisStore_PutGet(t *testing.T) {
	st := newTestRedisStore(t, 0)
	ctx := context.Background()

	require.NoError(t, st.Put(ctx, "ABC123", "hello world"))

	got, err := st.Get(ctx, "ABC123")
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)

	_, err = st.Get(ctx, "ZZZZZZ")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStore_PutDoesNotOverwrite(t *testing.T) {
	st := newTestRedisStore(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, st.Put(ctx, "ABC123", "first"))
	assert.ErrorIs(t, st.Put(ctx, "ABC123", "second"), ErrCodeTaken)
}
