package router

import (
	"net/http"

	"github.com/blogsmith/internal/config"
	"github.com/blogsmith/internal/db"
	"github.com/blogsmith/internal/handler"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// Setup configures the Gin engine and routes.
func Setup(cfg config.AppConfig) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	r := gin.Default()

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("blogsmith_session", store))

	a := handler.NewAPI(db.DB, cfg)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	api := r.Group("/api")
	{
		api.POST("/register", a.Register)
		api.POST("/login", a.Login)
		api.POST("/logout", a.Logout)

		api.POST("/generate", a.GenerateBlogs)
		api.POST("/chat", a.Chat)
		api.GET("/trending-topics", a.TrendingTopics)
		api.GET("/stats", a.Stats)
		api.GET("/attribution", a.AttributionReport)

		blogs := api.Group("/blogs")
		{
			blogs.GET("", a.ListBlogs)
			blogs.DELETE("", a.ClearBlogs)
			blogs.GET("/:id", a.GetBlog)
			blogs.DELETE("/:id", a.DeleteBlog)
			blogs.POST("/:id/content", a.SaveBlogContent)
			blogs.POST("/:id/revert", a.RevertBlog)
		}
	}

	export := r.Group("/export")
	{
		export.GET("/blog/:id/:format", a.ExportBlog)
		export.GET("/all/:format", a.ExportAll)
	}

	return r
}
