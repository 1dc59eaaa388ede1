package main

import (
	"context"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "landingcms/docs" // swagger docs

	"landingcms/internal/auth"
	"landingcms/internal/cache"
	"landingcms/internal/config"
	"landingcms/internal/db"
	"landingcms/internal/handler"
	"landingcms/internal/model"
	"landingcms/internal/repository"
	"landingcms/internal/router"
	"landingcms/internal/service"
)

// @title Landing Page CMS API
// @version 1.0
// @description REST backend for the landing page product: staff authentication, article management, site settings and contact intake.
// @host localhost:3001
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Article{},
		&model.Setting{},
		&model.Contact{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	articleRepo := repository.NewArticleRepository(gormDB)
	settingRepo := repository.NewSettingRepository(gormDB)
	contactRepo := repository.NewContactRepository(gormDB)

	// Initialize services
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	authService := service.NewAuthService(userRepo, jwtService)
	articleService := service.NewArticleService(articleRepo)
	settingsService := service.NewSettingsService(settingRepo, cacheClient)
	contactService := service.NewContactService(contactRepo)

	// Seed the bootstrap super admin and default settings. A failure here
	// would leave the service half initialized, so it is fatal.
	ctx := context.Background()
	if err := authService.EnsureSuperAdmin(ctx, cfg.SuperAdminUsername, cfg.SuperAdminEmail, cfg.SuperAdminPassword); err != nil {
		log.Fatalf("seed super admin: %v", err)
	}
	if err := settingsService.EnsureDefaults(ctx); err != nil {
		log.Fatalf("seed settings: %v", err)
	}

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	articleHandler := handler.NewArticleHandler(articleService)
	settingsHandler := handler.NewSettingsHandler(settingsService)
	contactHandler := handler.NewContactHandler(contactService)

	// Register routes
	router.Register(
		e,
		cfg,
		userRepo,
		authHandler,
		articleHandler,
		settingsHandler,
		contactHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
