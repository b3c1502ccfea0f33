package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_PutGet(t *testing.T) {
	st := NewMemoryStore(0, time.Minute)
	defer st.Close()
	ctx := context.Background()

	require.NoError(t, st.Put(ctx, "ABC123", "hello world"))

	got, err := st.Get(ctx, "ABC123")
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, 1, st.Count())
}

func TestMemoryStore_GetMissing(t *testing.T) {
	st := NewMemoryStore(0, time.Minute)
	defer st.Close()

	_, err := st.Get(context.Background(), "ZZZZZZ")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_PutDoesNotOverwrite(t *testing.T) {
	st := NewMemoryStore(0, time.Minute)
	defer st.Close()
	ctx := context.Background()

	require.NoError(t, st.Put(ctx, "ABC123", "first"))
	assert.ErrorIs(t, st.Put(ctx, "ABC123", "second"), ErrCodeTaken)

	got, err := st.Get(ctx, "ABC123")
	require.NoError(t, err)
	assert.Equal(t, "first", got)
}

func TestMemoryStore_KeysAreCaseSensitive(t *testing.T) {
	st := NewMemoryStore(0, time.Minute)
	defer st.Close()
	ctx := context.Background()

	require.NoError(t, st.Put(ctx, "ABC123", "upper"))

	_, err := st.Get(ctx, "abc123")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_TTL(t *testing.T) {
	st := NewMemoryStore(20*time.Millisecond, time.Minute)
	defer st.Close()
	ctx := context.Background()

	require.NoError(t, st.Put(ctx, "ABC123", "short lived"))
	time.Sleep(40 * time.Millisecond)

	_, err := st.Get(ctx, "ABC123")
	assert.ErrorIs(t, err, ErrNotFound)

	// an expired code can be reused
	assert.NoError(t, st.Put(ctx, "ABC123", "again"))
}

func TestMemoryStore_CancelledContext(t *testing.T) {
	st := NewMemoryStore(0, time.Minute)
	defer st.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, st.Put(ctx, "ABC123", "x"), context.Canceled)
	_, err := st.Get(ctx, "ABC123")
	assert.ErrorIs(t, err, context.Canceled)
}
