package api

import (
	"database/sql"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/c-a-r-l-x/accounts-service/internal/api/handler"
	"github.com/c-a-r-l-x/accounts-service/internal/api/middleware"
	"github.com/c-a-r-l-x/accounts-service/internal/core/domain"
	"github.com/c-a-r-l-x/accounts-service/internal/core/ports"
	"github.com/c-a-r-l-x/accounts-service/internal/core/service"
	redisinfra "github.com/c-a-r-l-x/accounts-service/internal/infrastructure/db/redis"
	sqliteinfra "github.com/c-a-r-l-x/accounts-service/internal/infrastructure/db/sqlite"
)

// RouterConfig carries the transport-level settings the router needs.
type RouterConfig struct {
	JWTSecret   string
	TokenTTL    time.Duration
	BcryptCost  int
	LoginLimit  int
	LoginWindow time.Duration
}

// NewRouter builds and returns the Echo instance with all routes registered.
// The audit sink is built by the caller so the dispatcher lifecycle stays in
// main.
func NewRouter(db *sql.DB, rdb *redis.Client, auditSink ports.AuditSink, cfg RouterConfig, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("accounts"))

	// --- Dependencies ---
	accountRepo := sqliteinfra.NewAccountRepository(db)
	hasher := service.NewBcryptHasher(cfg.BcryptCost)
	accountService := service.NewAccountService(accountRepo, hasher, auditSink, log)

	authHandler := handler.NewAuthHandler(accountService, cfg.JWTSecret, cfg.TokenTTL)
	accountHandler := handler.NewAccountHandler(accountService, sqliteinfra.NewAuditRepository(db))

	authMiddleware := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdministrator)
	loginLimiter := redisinfra.NewLoginLimiter(rdb, cfg.LoginLimit, cfg.LoginWindow)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login, middleware.LoginRateLimit(loginLimiter, log))

	// --- Account administration (admin only) ---
	accounts := e.Group("/accounts", authMiddleware, adminOnly)
	accounts.GET("", accountHandler.List)
	accounts.PATCH("/:username", accountHandler.Edit)
	accounts.GET("/:username/audit", accountHandler.Audit)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
