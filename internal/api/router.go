package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/priyatech/agency-api/internal/api/handler"
	"github.com/priyatech/agency-api/internal/api/middleware"
	"github.com/priyatech/agency-api/internal/core/domain"
	"github.com/priyatech/agency-api/internal/core/service"
	"github.com/priyatech/agency-api/internal/infrastructure/config"
	mongodb "github.com/priyatech/agency-api/internal/infrastructure/db/mongo"
	redisdb "github.com/priyatech/agency-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("agency"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	catalogRepo := mongodb.NewCatalogRepository(db)
	requestRepo := mongodb.NewRequestRepository(db)
	projectRepo := mongodb.NewProjectRepository(db)
	messageRepo := mongodb.NewMessageRepository(db)

	// --- Services ---
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	userService := service.NewUserService(userRepo, log)
	catalogService := service.NewCatalogService(catalogRepo, log)
	projectService := service.NewProjectService(projectRepo, userRepo, catalogRepo, log)
	messageService := service.NewMessageService(messageRepo, projectRepo, userRepo, redisdb.NewUnreadCounter(rdb), log)
	requestService := service.NewRequestService(requestRepo, catalogRepo, userRepo, projectRepo, messageService, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService, userService)
	userHandler := handler.NewUserHandler(userService)
	serviceHandler := handler.NewServiceHandler(catalogService)
	requestHandler := handler.NewRequestHandler(requestService)
	projectHandler := handler.NewProjectHandler(projectService)
	messageHandler := handler.NewMessageHandler(messageService)

	authRequired := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	v1 := e.Group("/v1")

	// --- Auth ---
	v1.POST("/auth/register", authHandler.Register)
	v1.POST("/auth/login", authHandler.Login)
	v1.GET("/auth/me", authHandler.Me, authRequired)

	// --- Users ---
	users := v1.Group("/users", authRequired)
	users.GET("", userHandler.List, adminOnly)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete, adminOnly)

	// --- Service catalog ---
	services := v1.Group("/services", authRequired)
	services.GET("", serviceHandler.List)
	services.GET("/:id", serviceHandler.Get)
	services.POST("", serviceHandler.Create, adminOnly)
	services.PUT("/:id", serviceHandler.Update, adminOnly)
	services.DELETE("/:id", serviceHandler.Delete, adminOnly)

	// --- Service requests ---
	requests := v1.Group("/service-requests", authRequired)
	requests.POST("", requestHandler.Submit, middleware.RequireRole(domain.RoleClient))
	requests.GET("", requestHandler.List)
	requests.GET("/my-requests", requestHandler.List)
	requests.POST("/:id/approve", requestHandler.Approve, adminOnly)
	requests.POST("/:id/reject", requestHandler.Reject, adminOnly)

	// --- Projects ---
	projects := v1.Group("/projects", authRequired)
	projects.POST("", projectHandler.Create, adminOnly)
	projects.GET("", projectHandler.ListAll, adminOnly)
	projects.GET("/mine", projectHandler.ListMine)
	projects.GET("/:id", projectHandler.Get)
	projects.PUT("/:id", projectHandler.Update, adminOnly)
	projects.PATCH("/:id/status", projectHandler.UpdateStatus)
	projects.DELETE("/:id", projectHandler.Delete, adminOnly)

	// --- Messages ---
	messages := v1.Group("/messages", authRequired)
	messages.POST("", messageHandler.Send)
	messages.GET("/mine", messageHandler.ListMine)
	messages.GET("/unread-count", messageHandler.UnreadCount)
	messages.GET("/project/:id", messageHandler.ListForProject)
	messages.GET("/user/:id", messageHandler.ListWithUser)
	messages.PATCH("/:id/read", messageHandler.MarkRead)
	messages.DELETE("/:id", messageHandler.Delete)

	return e
}
