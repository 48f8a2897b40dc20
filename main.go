package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"kaalchakra-cms/cache"
	"kaalchakra-cms/config"
	"kaalchakra-cms/handlers"
	"kaalchakra-cms/helper"
	"kaalchakra-cms/logger"
	"kaalchakra-cms/middleware"
	"kaalchakra-cms/repositories"
	"kaalchakra-cms/services"
	"kaalchakra-cms/workflow"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}
	logger.Init(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := config.Migrate(db); err != nil {
		logger.Fatal().Err(err).Msg("failed to migrate database")
	}
	if err := config.Seed(db, cfg); err != nil {
		logger.Fatal().Err(err).Msg("failed to seed database")
	}

	store := cache.New(cfg.RedisURL, cfg.RedisPrefix, cfg.CacheTTL)
	defer store.Close()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	paperRepo := repositories.NewENewspaperRepository(db)

	// Initialize services
	authz := workflow.NewAuthorizer()
	secret := []byte(cfg.JWTSecret)
	authService := services.NewAuthService(userRepo, secret, cfg.JWTExpiration)
	articleService := services.NewArticleService(articleRepo, categoryRepo, tagRepo, authz, store)
	categoryService := services.NewCategoryService(categoryRepo, authz, store, cfg.CacheTTL)
	tagService := services.NewTagService(tagRepo, authz)
	commentService := services.NewCommentService(commentRepo, articleRepo, authz)
	userService := services.NewUserService(userRepo, authz)
	paperService := services.NewENewspaperService(paperRepo, authz)
	sitemapService := services.NewSitemapService(articleRepo, categoryRepo, store, cfg.SiteURL, cfg.CacheTTL)

	// Initialize handlers
	h := helper.NewHTTPHelper()
	router := handlers.NewRouter(handlers.Router{
		Auth:       handlers.NewAuthHandler(authService, h),
		Article:    handlers.NewArticleHandler(articleService, h),
		Category:   handlers.NewCategoryHandler(categoryService, h),
		Tag:        handlers.NewTagHandler(tagService, h),
		Comment:    handlers.NewCommentHandler(commentService, h),
		User:       handlers.NewUserHandler(userService, h),
		ENewspaper: handlers.NewENewspaperHandler(paperService, h),
		Sitemap:    handlers.NewSitemapHandler(sitemapService, h),
		Health:     handlers.NewHealthHandler(db),

		JWTSecret:      secret,
		CommentLimiter: middleware.NewIPRateLimiter(cfg.CommentRatePerMinute, cfg.CommentRateBurst),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("server forced to shutdown")
	}
}
