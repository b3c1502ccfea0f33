// Package store persists share records keyed by their share code.
package store

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned by Get when no live record exists for a code.
	ErrNotFound = errors.New("store: share not found")
	// ErrCodeTaken is returned by Put when the code is already in use.
	ErrCodeTaken = errors.New("store: share code already taken")
)

// Store maps share codes to shared text.
//
// Put never overwrites: a second Put for the same code fails with
// ErrCodeTaken, so callers can retry with a fresh code. Implementations must
// be safe for concurrent use.
type Store interface {
	Put(ctx context.Context, code, content string) error
	Get(ctx context.Context, code string) (string, error)
	Close() error
}
