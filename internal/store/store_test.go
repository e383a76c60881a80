package store

import (
	"context"
	"testing"
	"time"

	"miniforum/internal/database"
	"miniforum/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// a second pool connection would see a different in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(db))
	return db
}

func TestUserStore_RegisterAndVerify(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserStore(db, 4)
	ctx := context.Background()

	user, err := users.Register(ctx, "alice", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, "secret123", user.PasswordHash)

	got, err := users.Verify(ctx, "alice", "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = users.Verify(ctx, "alice", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = users.Verify(ctx, "nobody", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserStore_DuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserStore(db, 4)
	ctx := context.Background()

	_, err := users.Register(ctx, "alice", "secret123")
	require.NoError(t, err)

	_, err = users.Register(ctx, "alice", "other-password")
	assert.ErrorIs(t, err, ErrUsernameTaken)

	// the failed attempt must not change the credential count
	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// and the original credentials still verify
	_, err = users.Verify(ctx, "alice", "secret123")
	assert.NoError(t, err)
}

func TestPostStore_AppendAndListAll(t *testing.T) {
	db := setupTestDB(t)
	posts := NewPostStore(db)
	ctx := context.Background()

	id1, err := posts.Append(ctx, "alice", "first")
	require.NoError(t, err)
	id2, err := posts.Append(ctx, "bob", "second")
	require.NoError(t, err)
	assert.Greater(t, id2, id1)

	all, err := posts.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	// newest first
	assert.Equal(t, "second", all[0].Content)
	assert.Equal(t, "bob", all[0].Author)
	assert.Equal(t, "first", all[1].Content)
}

func TestPostStore_EmptyContent(t *testing.T) {
	db := setupTestDB(t)
	posts := NewPostStore(db)

	_, err := posts.Append(context.Background(), "alice", "")
	assert.ErrorIs(t, err, ErrEmptyContent)

	all, err := posts.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestPostStore_TimestampTieBreak(t *testing.T) {
	db := setupTestDB(t)
	posts := NewPostStore(db)

	// force identical timestamps so only the id tie-break orders them
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for _, content := range []string{"one", "two", "three"} {
		require.NoError(t, db.Create(&models.Post{
			Author:    "alice",
			Content:   content,
			CreatedAt: ts,
		}).Error)
	}

	all, err := posts.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 3)

	// later inserts list first
	assert.Equal(t, "three", all[0].Content)
	assert.Equal(t, "two", all[1].Content)
	assert.Equal(t, "one", all[2].Content)
}
