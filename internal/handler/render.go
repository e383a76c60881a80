package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// renderError shows an inline error page with a user-facing message.
func renderError(c *gin.Context, status int, message string) {
	c.HTML(status, "error.html", gin.H{
		"Title":   "Error",
		"Message": message,
	})
}

// serverError records the cause for the request log and renders a generic
// 500 page. Nothing about the underlying failure reaches the client.
func serverError(c *gin.Context, err error) {
	_ = c.Error(err)
	renderError(c, http.StatusInternalServerError, "Something went wrong. Please try again.")
}
