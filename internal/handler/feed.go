package handler

import (
	"errors"
	"net/http"

	"miniforum/internal/session"
	"miniforum/internal/store"

	"github.com/gin-gonic/gin"
)

// FeedHandler serves the shared feed and the post action.
type FeedHandler struct {
	Posts *store.PostStore
}

func NewFeedHandler(posts *store.PostStore) *FeedHandler {
	return &FeedHandler{Posts: posts}
}

// Index renders every post, newest first. The post form is only shown to
// an authenticated session.
func (h *FeedHandler) Index(c *gin.Context) {
	posts, err := h.Posts.ListAll(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}

	username, _ := session.Username(c)
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Title":       "Forum",
		"CurrentUser": username,
		"Posts":       posts,
	})
}

// CreatePost appends a post attributed to the session's username.
// RequireLogin guards the route, so an identity is always present here.
func (h *FeedHandler) CreatePost(c *gin.Context) {
	username, ok := session.Username(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	content := c.PostForm("content")
	if _, err := h.Posts.Append(c.Request.Context(), username, content); err != nil {
		if errors.Is(err, store.ErrEmptyContent) {
			renderError(c, http.StatusBadRequest, "Post content is required")
			return
		}
		serverError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}
