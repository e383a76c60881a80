package models

import "time"

// Session stores user login sessions (for logout and invalidation).
// Token is an opaque server-generated ID carried in a cookie.
type Session struct {
	Token     string    `gorm:"primaryKey;size:64"` // e.g. UUID
	Username  string    `gorm:"size:64;not null"`
	ExpiresAt time.Time `gorm:"index;not null"`
	CreatedAt time.Time
}
