package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const contextUserKey = "currentUser"

// CurrentUser resolves the session identity (if any) and puts the
// username into the Gin context for handlers and templates.
func CurrentUser(m *Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if username, ok := m.Identity(c); ok {
			c.Set(contextUserKey, username)
		}
		c.Next()
	}
}

// RequireLogin redirects anonymous requests to the login page and aborts,
// so no mutation runs without an authenticated session.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := Username(c); !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// Username returns the authenticated username placed in the context by
// CurrentUser.
func Username(c *gin.Context) (string, bool) {
	v, ok := c.Get(contextUserKey)
	if !ok {
		return "", false
	}
	username, ok := v.(string)
	if !ok || username == "" {
		return "", false
	}
	return username, true
}
