package store

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// MemoryStore keeps shares in process memory. Records are lost on restart.
type MemoryStore struct {
	cache *cache.Cache
	ttl   time.Duration
}

// NewMemoryStore creates an in-memory store. A zero ttl keeps records until
// the process exits; cleanupInterval controls how often expired records are purged.
func NewMemoryStore(ttl, cleanupInterval time.Duration) *MemoryStore {
	return &MemoryStore{
		cache: cache.New(expiration(ttl), cleanupInterval),
		ttl:   ttl,
	}
}

func (s *MemoryStore) Put(ctx context.Context, code, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	// Add only writes when the key is absent or expired
	if err := s.cache.Add(code, content, expiration(s.ttl)); err != nil {
		return ErrCodeTaken
	}
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, code string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	val, found := s.cache.Get(code)
	if !found {
		return "", ErrNotFound
	}
	content, ok := val.(string)
	if !ok {
		return "", ErrNotFound
	}
	return content, nil
}

// Count returns the number of records held, including expired ones not yet purged.
func (s *MemoryStore) Count() int {
	return s.cache.ItemCount()
}

func (s *MemoryStore) Close() error {
	s.cache.Flush()
	return nil
}

func expiration(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return cache.NoExpiration
	}
	return ttl
}
