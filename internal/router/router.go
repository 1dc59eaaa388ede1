package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"landingcms/internal/auth"
	"landingcms/internal/config"
	"landingcms/internal/handler"
	"landingcms/internal/repository"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	users repository.UserRepository,
	authHandler *handler.AuthHandler,
	articleHandler *handler.ArticleHandler,
	settingsHandler *handler.SettingsHandler,
	contactHandler *handler.ContactHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization, echo.HeaderAccept, echo.HeaderOrigin},
	}))

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	verifyToken := auth.Middleware(cfg.JWTSecret)
	loadIdentity := auth.LoadIdentity(users)

	api := e.Group("/api")

	// Auth: login is public, the rest requires a verified identity.
	api.POST("/auth/login", authHandler.Login)
	authGroup := api.Group("/auth", verifyToken, loadIdentity)
	authGroup.GET("/me", authHandler.Me)
	authGroup.POST("/create-user", authHandler.CreateUser, auth.RequireAdmin)
	authGroup.GET("/users", authHandler.Users, auth.RequireAdmin)

	// Articles: the public news page needs no token.
	api.GET("/articles/public", articleHandler.ListPublished)
	api.GET("/articles/public/:id", articleHandler.GetPublished)
	articles := api.Group("/articles", verifyToken, loadIdentity)
	articles.GET("", articleHandler.List)
	articles.POST("", articleHandler.Create)
	articles.GET("/:id", articleHandler.Get)
	articles.PUT("/:id", articleHandler.Update)
	articles.DELETE("/:id", articleHandler.Delete)

	// Contacts: submissions are public, the listing is staff-only.
	api.POST("/contacts", contactHandler.Create)
	api.GET("/contacts", contactHandler.List, verifyToken, loadIdentity)

	// Settings: the hero banner read is public.
	api.GET("/settings/hero-banner", settingsHandler.HeroBanner)
	settings := api.Group("/settings", verifyToken, loadIdentity)
	settings.GET("", settingsHandler.GetAll)
	settings.PUT("/hero-banner", settingsHandler.UpdateHeroBanner)
	settings.GET("/:key", settingsHandler.Get)
	settings.PUT("/:key", settingsHandler.Update)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
