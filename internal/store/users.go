package store

import (
	"context"
	"errors"
	"fmt"

	"miniforum/internal/models"
	"miniforum/internal/util"

	"gorm.io/gorm"
)

var (
	// ErrUsernameTaken is returned by Register when the username already
	// exists. The failed attempt leaves the store untouched.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password, so callers cannot distinguish the two.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// UserStore persists username/password-hash pairs. Usernames are unique;
// users are never updated or deleted.
type UserStore struct {
	db         *gorm.DB
	bcryptCost int
}

func NewUserStore(db *gorm.DB, bcryptCost int) *UserStore {
	return &UserStore{db: db, bcryptCost: bcryptCost}
}

// Register hashes the password and inserts a new user. A duplicate
// username fails with ErrUsernameTaken. Uniqueness is arbitrated by the
// database constraint alone: two concurrent registrations never both
// succeed, and no read-then-write check is involved.
func (s *UserStore) Register(ctx context.Context, username, password string) (*models.User, error) {
	hash, err := util.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:     username,
		PasswordHash: hash,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &user, nil
}

// Verify looks up the stored hash for username and compares the supplied
// password against it. A lookup miss and a hash mismatch both return
// ErrInvalidCredentials.
func (s *UserStore) Verify(ctx context.Context, username, password string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).
		Where("username = ?", username).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !util.CheckPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}
