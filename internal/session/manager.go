package session

import (
	"fmt"
	"net/http"
	"time"

	"miniforum/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Manager maps opaque cookie tokens to authenticated usernames. Tokens
// are stored server-side, so logout actually invalidates them.
type Manager struct {
	db         *gorm.DB
	cookieName string
	ttl        time.Duration
}

func NewManager(db *gorm.DB, cookieName string, ttlHours int) *Manager {
	if ttlHours <= 0 {
		ttlHours = 24
	}
	return &Manager{
		db:         db,
		cookieName: cookieName,
		ttl:        time.Duration(ttlHours) * time.Hour,
	}
}

// Identity derives the authenticated username from the request's session
// cookie. A missing, unknown or expired token reads as anonymous.
func (m *Manager) Identity(c *gin.Context) (string, bool) {
	token, err := c.Cookie(m.cookieName)
	if err != nil || token == "" {
		return "", false
	}

	var sess models.Session
	if err := m.db.WithContext(c.Request.Context()).
		First(&sess, "token = ?", token).Error; err != nil {
		return "", false
	}

	if time.Now().After(sess.ExpiresAt) {
		// lazy cleanup, the token is already useless
		_ = m.db.Delete(&models.Session{}, "token = ?", token).Error
		return "", false
	}
	return sess.Username, true
}

// SetIdentity marks the session as authenticated as username: a fresh
// token row is inserted and handed to the browser.
func (m *Manager) SetIdentity(c *gin.Context, username string) error {
	sess := models.Session{
		Token:     uuid.NewString(),
		Username:  username,
		ExpiresAt: time.Now().Add(m.ttl),
	}
	if err := m.db.WithContext(c.Request.Context()).Create(&sess).Error; err != nil {
		return fmt.Errorf("create session: %w", err)
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookieName, sess.Token, int(m.ttl.Seconds()), "/", "", false, true)
	return nil
}

// ClearIdentity destroys the session: the token row is removed so it
// cannot be replayed, and the cookie is expired.
func (m *Manager) ClearIdentity(c *gin.Context) error {
	token, err := c.Cookie(m.cookieName)
	if err != nil {
		// no cookie, nothing to clear
		return nil
	}

	if err := m.db.WithContext(c.Request.Context()).
		Delete(&models.Session{}, "token = ?", token).Error; err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookieName, "", -1, "/", "", false, true)
	return nil
}
