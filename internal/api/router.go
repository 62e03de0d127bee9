package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/clinicore/clinic-system/internal/api/handler"
	"github.com/clinicore/clinic-system/internal/api/middleware"
	"github.com/clinicore/clinic-system/internal/core/domain"
	"github.com/clinicore/clinic-system/internal/core/service"
	mongodb "github.com/clinicore/clinic-system/internal/infrastructure/db/mongo"
	redisdb "github.com/clinicore/clinic-system/internal/infrastructure/db/redis"
)

// Options carries the router's tunables.
type Options struct {
	JWTSecret string
	TokenTTL  time.Duration
	AuditSink service.AuditSink
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("clinic"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	clinicRepo := mongodb.NewClinicRepository(db)
	denylist := redisdb.NewTokenDenylist(rdb)

	authzService := service.NewAuthzService(userRepo, clinicRepo, opts.Logger)
	membershipService := service.NewMembershipService(userRepo, opts.AuditSink, opts.Logger)
	clinicService := service.NewClinicService(clinicRepo, opts.AuditSink, opts.Logger)
	sessionService := service.NewSessionService(userRepo, denylist, opts.JWTSecret, opts.TokenTTL)

	sessionHandler := handler.NewSessionHandler(sessionService)
	meHandler := handler.NewMeHandler(authzService)
	clinicHandler := handler.NewClinicHandler(authzService, membershipService, clinicService)

	authMiddleware := middleware.Auth(opts.JWTSecret, denylist)

	// --- Session routes ---
	e.POST("/auth/login", sessionHandler.Login)
	e.POST("/auth/logout", sessionHandler.Logout, authMiddleware)

	// --- Authenticated surface ---
	v1 := e.Group("/v1", authMiddleware)
	v1.GET("/me", meHandler.Me)
	v1.GET("/me/permissions", meHandler.Permissions)
	v1.GET("/me/views", meHandler.Views)

	clinics := v1.Group("/clinics")
	clinics.POST("", clinicHandler.Provision, middleware.RequireView(domain.ViewSAClinics))
	clinics.PUT("/:clinicID/members/:userID/role", clinicHandler.ChangeRole, middleware.RequireCapability(domain.CapStaffManage))
	clinics.DELETE("/:clinicID/members/:userID", clinicHandler.RemoveMember, middleware.RequireCapability(domain.CapStaffManage))

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
