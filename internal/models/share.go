package models

import "time"

// Share codes are always ShareCodeLength characters drawn from ShareCodeAlphabet.
const (
	ShareCodeLength   = 6
	ShareCodeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// ShareRecord is one shared text. It is never modified after creation.
type ShareRecord struct {
	Code      string     `json:"code" gorm:"primaryKey;size:32"`
	Content   string     `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty" gorm:"index"`
}

func (ShareRecord) TableName() string {
	return "share_records"
}

// Expired reports whether the record has a deadline that lies before now.
func (r *ShareRecord) Expired(now time.Time) bool {
	return r.ExpiresAt != nil && now.After(*r.ExpiresAt)
}

type ShareCreateRequest struct {
	Content string `json:"content" validate:"notblank"`
}

// ShareLookupRequest carries a code that has already been trimmed and uppercased.
type ShareLookupRequest struct {
	Code string `json:"code" validate:"sharecode"`
}

type ShareCreateResponse struct {
	Code     string `json:"code"`
	ShareURL string `json:"share_url"`
}

type ShareResponse struct {
	Code    string `json:"code"`
	Content string `json:"content"`
}
