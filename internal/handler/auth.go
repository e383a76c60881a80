package handler

import (
	"errors"
	"net/http"
	"strings"

	"miniforum/internal/session"
	"miniforum/internal/store"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves the register/login/logout pages and actions.
type AuthHandler struct {
	Users    *store.UserStore
	Sessions *session.Manager
}

func NewAuthHandler(users *store.UserStore, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{Users: users, Sessions: sessions}
}

type credentialsForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// ShowRegister renders the registration form.
func (h *AuthHandler) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{"Title": "Register"})
}

// Register creates a new user and redirects to the login page.
// Registration does not authenticate the session.
func (h *AuthHandler) Register(c *gin.Context) {
	var req credentialsForm
	if err := c.ShouldBind(&req); err != nil {
		renderError(c, http.StatusBadRequest, "Username and password are required")
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" {
		renderError(c, http.StatusBadRequest, "Username and password are required")
		return
	}

	if _, err := h.Users.Register(c.Request.Context(), req.Username, req.Password); err != nil {
		if errors.Is(err, store.ErrUsernameTaken) {
			renderError(c, http.StatusBadRequest, "Username already taken")
			return
		}
		serverError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/login")
}

// ShowLogin renders the login form.
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"Title": "Login"})
}

// Login verifies credentials and marks the session authenticated. Unknown
// usernames and wrong passwords produce the same message.
func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsForm
	if err := c.ShouldBind(&req); err != nil {
		renderError(c, http.StatusUnauthorized, "Invalid login")
		return
	}
	req.Username = strings.TrimSpace(req.Username)

	user, err := h.Users.Verify(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrInvalidCredentials) {
			renderError(c, http.StatusUnauthorized, "Invalid login")
			return
		}
		serverError(c, err)
		return
	}

	if err := h.Sessions.SetIdentity(c, user.Username); err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// Logout destroys the session and returns to the feed.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.Sessions.ClearIdentity(c); err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}
