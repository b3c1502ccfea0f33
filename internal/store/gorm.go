package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"codetext-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore persists shares in a SQL database through gorm.
type GormStore struct {
	db  *gorm.DB
	ttl time.Duration
	now func() time.Time
}

func NewGormStore(db *gorm.DB, ttl time.Duration) *GormStore {
	return &GormStore{db: db, ttl: ttl, now: time.Now}
}

func (s *GormStore) Put(ctx context.Context, code, content string) error {
	now := s.now()
	record := models.ShareRecord{
		Code:      code,
		Content:   content,
		CreatedAt: now,
	}
	if s.ttl > 0 {
		expiresAt := now.Add(s.ttl)
		record.ExpiresAt = &expiresAt
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// an expired row no longer holds its code
		if s.ttl > 0 {
			if err := tx.Where("code = ? AND expires_at IS NOT NULL AND expires_at < ?", code, now).
				Delete(&models.ShareRecord{}).Error; err != nil {
				return fmt.Errorf("failed to purge expired share %s: %w", code, err)
			}
		}

		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&record)
		if result.Error != nil {
			return fmt.Errorf("failed to create share %s: %w", code, result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrCodeTaken
		}
		return nil
	})
}

func (s *GormStore) Get(ctx context.Context, code string) (string, error) {
	var record models.ShareRecord
	if err := s.db.WithContext(ctx).Where("code = ?", code).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to get share %s: %w", code, err)
	}

	if record.Expired(s.now()) {
		return "", ErrNotFound
	}

	return record.Content, nil
}

// PurgeExpired deletes every record whose deadline has passed and reports how many were removed.
func (s *GormStore) PurgeExpired(ctx context.Context) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("expires_at IS NOT NULL AND expires_at < ?", s.now()).
		Delete(&models.ShareRecord{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to purge expired shares: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
