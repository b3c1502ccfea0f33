package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"codetext-backend/internal/config"
	"codetext-backend/internal/models"
	"codetext-backend/internal/store"
	"codetext-backend/pkg/validator"

	"github.com/sirupsen/logrus"
)

var (
	ErrEmptyContent       = errors.New("content must not be empty")
	ErrContentTooLarge    = errors.New("content exceeds the maximum size")
	ErrEmptyCode          = errors.New("share code must not be empty")
	ErrNotFound           = store.ErrNotFound
	ErrCodeSpaceExhausted = errors.New("failed to generate a unique share code")
)

type ShareService struct {
	store    store.Store
	cfg      config.ShareConfig
	generate func(length int) (string, error)
}

func NewShareService(st store.Store, cfg config.ShareConfig) *ShareService {
	return &ShareService{
		store:    st,
		cfg:      cfg,
		generate: GenerateCode,
	}
}

// GenerateCode draws length uniformly random base-36 digits.
func GenerateCode(length int) (string, error) {
	max := big.NewInt(int64(len(models.ShareCodeAlphabet)))
	code := make([]byte, length)
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = models.ShareCodeAlphabet[n.Int64()]
	}
	return string(code), nil
}

// NormalizeCode trims surrounding whitespace and uppercases a user-entered code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Share stores content under a freshly generated code and returns the code.
// A code already in use is never overwritten; a new one is drawn instead.
func (s *ShareService) Share(ctx context.Context, content string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", ErrEmptyContent
	}
	if s.cfg.MaxContentBytes > 0 && len(content) > s.cfg.MaxContentBytes {
		return "", ErrContentTooLarge
	}

	attempts := s.cfg.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	for i := 0; i < attempts; i++ {
		code, err := s.generate(models.ShareCodeLength)
		if err != nil {
			return "", fmt.Errorf("failed to generate share code: %w", err)
		}

		err = s.store.Put(ctx, code, content)
		if err == nil {
			logrus.WithFields(logrus.Fields{
				"code":  code,
				"bytes": len(content),
			}).Info("share created")
			return code, nil
		}
		if !errors.Is(err, store.ErrCodeTaken) {
			return "", fmt.Errorf("failed to store share: %w", err)
		}

		logrus.WithFields(logrus.Fields{
			"code":    code,
			"attempt": i + 1,
			"max":     attempts,
		}).Warn("share code collision, retrying")
	}

	return "", ErrCodeSpaceExhausted
}

// Lookup resolves a user-entered code to the shared content. The returned
// record carries the normalised code and the content.
// A code that cannot have been issued is reported as ErrNotFound without
// touching the store.
func (s *ShareService) Lookup(ctx context.Context, code string) (*models.ShareRecord, error) {
	code = NormalizeCode(code)
	if code == "" {
		return nil, ErrEmptyCode
	}

	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	if err := validator.ValidateStruct(&models.ShareLookupRequest{Code: code}); err != nil {
		return nil, ErrNotFound
	}

	content, err := s.store.Get(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up share %s: %w", code, err)
	}

	return &models.ShareRecord{Code: code, Content: content}, nil
}

func (s *ShareService) wait(ctx context.Context) error {
	if s.cfg.LookupDelay <= 0 {
		return nil
	}

	timer := time.NewTimer(s.cfg.LookupDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
