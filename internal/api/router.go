package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/salonspot/masters-api/internal/api/handler"
	"github.com/salonspot/masters-api/internal/api/middleware"
	"github.com/salonspot/masters-api/internal/core/domain"
	"github.com/salonspot/masters-api/internal/core/service"
	"github.com/salonspot/masters-api/internal/infrastructure/config"
	mongodb "github.com/salonspot/masters-api/internal/infrastructure/db/mongo"
	redisdb "github.com/salonspot/masters-api/internal/infrastructure/db/redis"
	"github.com/salonspot/masters-api/internal/infrastructure/security"
	"github.com/salonspot/masters-api/internal/infrastructure/storage"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("catalog"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	sessionStore := redisdb.NewSessionStore(rdb, cfg.SessionTTL)
	hasher := security.NewBcryptHasher(cfg.BcryptCost)

	authService := service.NewAuthService(userRepo, hasher, sessionStore, log)
	profileService := service.NewProfileService(userRepo, sessionStore, log)
	catalogService := service.NewCatalogService(userRepo)

	photoStore, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		return nil, err
	}

	cookies := handler.CookieConfig{
		Name:   cfg.CookieName,
		TTL:    cfg.SessionTTL,
		Secure: cfg.Production(),
	}

	authHandler := handler.NewAuthHandler(authService, cookies, cfg.AllowSelfRole)
	profileHandler := handler.NewProfileHandler(profileService, cookies)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	uploadHandler := handler.NewUploadHandler(photoStore)

	session := middleware.Session(sessionStore, userRepo, cfg.CookieName)

	// --- API routes ---
	apiGroup := e.Group("/api", session)
	apiGroup.POST("/register", authHandler.Register)
	apiGroup.POST("/login", authHandler.Login)
	apiGroup.POST("/logout", authHandler.Logout, middleware.RequireAuth())
	apiGroup.GET("/me", authHandler.CurrentUser)
	apiGroup.GET("/masters", catalogHandler.ListMasters)
	apiGroup.POST("/update_profile", profileHandler.Update,
		middleware.RequireAuth(), middleware.RequireRole(domain.RoleMaster))
	apiGroup.POST("/upload", uploadHandler.Upload,
		echomiddleware.BodyLimit(cfg.MaxUploadSize))

	// Stored photos are served straight from disk.
	e.Static("/static/uploads", cfg.UploadDir)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e, nil
}
