package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"kaalchakra-cms/middleware"
	"kaalchakra-cms/models"
)

// Router groups every handler mounted by NewRouter.
type Router struct {
	Auth       *AuthHandler
	Article    *ArticleHandler
	Category   *CategoryHandler
	Tag        *TagHandler
	Comment    *CommentHandler
	User       *UserHandler
	ENewspaper *ENewspaperHandler
	Sitemap    *SitemapHandler
	Health     *HealthHandler

	JWTSecret      []byte
	CommentLimiter *middleware.IPRateLimiter
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func NewRouter(r Router) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Recovery(), middleware.RequestID(), middleware.AccessLog(), middleware.Metrics(), cors())

	if r.Health != nil {
		router.GET("/health", r.Health.Health)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/sitemap.xml", r.Sitemap.Sitemap)

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", r.Auth.Login)
		}

		public := v1.Group("/public")
		{
			public.GET("/articles", r.Article.GetPublicArticles)
			public.GET("/articles/:lang/:slug", r.Article.GetPublicArticle)
			public.GET("/categories", r.Category.GetCategories)
			public.GET("/comments", r.Comment.GetApprovedComments)
			public.POST("/comments", middleware.RateLimit(r.CommentLimiter), r.Comment.SubmitComment)
			public.GET("/e-newspapers", r.ENewspaper.GetENewspapers)
		}

		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware(r.JWTSecret))
		{
			protected.GET("/profile", r.Auth.GetProfile)

			articles := protected.Group("/articles")
			{
				articles.POST("", r.Article.CreateArticle)
				articles.GET("", r.Article.GetArticles)
				articles.GET("/:id", r.Article.GetArticle)
				articles.PUT("/:id", r.Article.UpdateArticle)
				articles.DELETE("/:id", r.Article.DeleteArticle)
			}

			categories := protected.Group("/categories")
			{
				categories.POST("", r.Category.CreateCategory)
				categories.PUT("/:id", r.Category.UpdateCategory)
				categories.DELETE("/:id", r.Category.DeleteCategory)
			}

			tags := protected.Group("/tags")
			{
				tags.POST("", r.Tag.CreateTag)
				tags.GET("", r.Tag.GetTags)
			}

			comments := protected.Group("/comments")
			{
				comments.GET("", r.Comment.GetComments)
				comments.PUT("/:id/approve", r.Comment.ApproveComment)
				comments.DELETE("/:id", r.Comment.DeleteComment)
			}

			// Editors and reporters are turned away here, so any /users call
			// they make, including on their own id, answers 403.
			users := protected.Group("/users")
			users.Use(middleware.RequireRole(models.RoleOwner, models.RoleAdmin))
			{
				users.GET("", r.User.GetUsers)
				users.POST("", r.User.CreateUser)
				users.PATCH("/:id", r.User.UpdateUser)
				users.DELETE("/:id", r.User.DeleteUser)
			}

			papers := protected.Group("/e-newspapers")
			{
				papers.POST("", r.ENewspaper.CreateENewspaper)
				papers.DELETE("/:id", r.ENewspaper.DeleteENewspaper)
			}
		}
	}

	return router
}
