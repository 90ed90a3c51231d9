package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"la-blog/api/handlers"
	"la-blog/api/middleware"
	"la-blog/auth"
	"la-blog/config"
	"la-blog/db"
	_ "la-blog/docs"
	"la-blog/repositories"
	"la-blog/services"
)

// New builds the gin engine with all routes wired. The Mongo database may
// still be unreachable at this point; repository calls then surface 500s
// while the rest of the surface keeps serving.
func New(jwtMgr *auth.JWTManager, creds *auth.Credentials) *gin.Engine {
	cfg := config.GetConfig()

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestTrace())

	// Root endpoint with an endpoint directory for quick orientation.
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to Lovely Associates Blog API",
			"endpoints": gin.H{
				"health":     "/api/health",
				"blogs":      "/api/blogs",
				"createBlog": "POST /api/blogs",
				"getBlog":    "/api/blogs/:slug",
				"updateBlog": "PUT /api/blogs/:slug",
				"deleteBlog": "DELETE /api/blogs/:slug",
				"tags":       "/api/blogs/tags/all",
				"login":      "POST /api/auth/login",
			},
		})
	})

	// Liveness probe. Database status is reported but never fails the probe;
	// the marketing surface stays available without Mongo.
	r.GET("/api/health", func(c *gin.Context) {
		database := "connected"
		if err := db.Ping(c.Request.Context()); err != nil {
			database = "disconnected"
		}
		c.JSON(http.StatusOK, gin.H{
			"message":     "Lovely Associates Blog API is running",
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"environment": cfg.Environment,
			"database":    database,
		})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		blogRepo := repositories.NewBlogRepository(db.Database())
		blogSvc := services.NewBlogService(blogRepo, cfg.Blog.DefaultAuthor)

		api.GET("/blogs", handlers.ListBlogsHandler(blogSvc))
		api.GET("/blogs/tags/all", handlers.GetBlogTagsHandler(blogSvc))
		api.GET("/blogs/:slug", handlers.GetBlogHandler(blogSvc))

		adminOnly := middleware.AdminAuth(jwtMgr)
		api.POST("/blogs", adminOnly, handlers.CreateBlogHandler(blogSvc))
		api.PUT("/blogs/:slug", adminOnly, handlers.UpdateBlogHandler(blogSvc))
		api.DELETE("/blogs/:slug", adminOnly, handlers.DeleteBlogHandler(blogSvc))

		api.POST("/auth/login", handlers.LoginHandler(creds, jwtMgr))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"message":       "Route not found",
			"requestedPath": c.Request.URL.Path,
		})
	})

	return r
}
