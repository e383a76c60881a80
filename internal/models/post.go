package models

import "time"

// Post is a single feed entry. Author is a copied username, not a
// foreign key; posts outlive any notion of the account that wrote them.
type Post struct {
	ID        uint      `gorm:"primaryKey"`
	Author    string    `gorm:"size:64;index;not null"`
	Content   string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"index"`
}
