package router

import (
	"html/template"
	"io/fs"
	"net/http"

	"miniforum/internal/config"
	"miniforum/internal/handler"
	"miniforum/internal/session"
	"miniforum/internal/store"
	"miniforum/web"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine, templates and static resources,
// and wires the stores and session manager into the handlers.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// embedded templates and static files
	r.SetHTMLTemplate(template.Must(template.ParseFS(web.Templates, "templates/*.html")))
	staticFS, _ := fs.Sub(web.Static, "static")
	r.StaticFS("/static", http.FS(staticFS))

	users := store.NewUserStore(db, cfg.Security.BcryptCost)
	posts := store.NewPostStore(db)
	sessions := session.NewManager(db, cfg.Session.CookieName, cfg.Session.TTLHours)

	// every route sees the session identity, if any
	r.Use(session.CurrentUser(sessions))

	authHandler := handler.NewAuthHandler(users, sessions)
	feedHandler := handler.NewFeedHandler(posts)

	r.GET("/", feedHandler.Index)
	r.GET("/register", authHandler.ShowRegister)
	r.POST("/register", authHandler.Register)
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	// mutations require a logged-in session
	protected := r.Group("", session.RequireLogin())
	protected.POST("/post", feedHandler.CreatePost)

	return r
}
