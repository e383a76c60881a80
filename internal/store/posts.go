package store

import (
	"context"
	"errors"
	"fmt"

	"miniforum/internal/models"

	"gorm.io/gorm"
)

// ErrEmptyContent is returned by Append for a post with no content.
// Presence is the only validation applied to post bodies.
var ErrEmptyContent = errors.New("post content is empty")

// PostStore persists feed entries. Posts are immutable once written.
type PostStore struct {
	db *gorm.DB
}

func NewPostStore(db *gorm.DB) *PostStore {
	return &PostStore{db: db}
}

// Append inserts a new post attributed to author with the current server
// time as creation timestamp and returns its id.
func (s *PostStore) Append(ctx context.Context, author, content string) (uint, error) {
	if content == "" {
		return 0, ErrEmptyContent
	}

	post := models.Post{
		Author:  author,
		Content: content,
	}
	if err := s.db.WithContext(ctx).Create(&post).Error; err != nil {
		return 0, fmt.Errorf("create post: %w", err)
	}
	return post.ID, nil
}

// ListAll returns every stored post, newest first. Posts sharing a
// creation timestamp are ordered by descending id, so the ordering stays
// stable across calls.
func (s *PostStore) ListAll(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := s.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}
