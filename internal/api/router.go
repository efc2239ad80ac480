package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/vcplatform/marketplace/docs"
	"github.com/vcplatform/marketplace/internal/api/handler"
	"github.com/vcplatform/marketplace/internal/api/middleware"
	"github.com/vcplatform/marketplace/internal/core/domain"
	"github.com/vcplatform/marketplace/internal/core/ports"
	"github.com/vcplatform/marketplace/internal/core/service"
	"github.com/vcplatform/marketplace/internal/infrastructure/config"
	mongodb "github.com/vcplatform/marketplace/internal/infrastructure/db/mongo"
	redisdb "github.com/vcplatform/marketplace/internal/infrastructure/db/redis"
)

// Services are the use cases the HTTP layer is wired to.
type Services struct {
	Auth       ports.AuthService
	Tokens     ports.TokenVerifier
	Principals ports.PrincipalResolver
	Startups   ports.StartupService
	Investors  ports.InvestorService
	Readiness  []handler.DependencyCheck
}

// Options toggles the operational surface of the router.
type Options struct {
	CORSOrigins []string
	// Metrics registers request metrics and GET /metrics on the default
	// Prometheus registry; enable it on at most one router per process.
	Metrics bool
	Swagger bool
}

// NewRouter wires repositories, cache and services over the given connections
// and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	// --- Dependencies ---
	tokens := service.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.JWTTTL, service.WithIssuer(cfg.Auth.JWTIssuer))
	cache := redisdb.NewProfileCache(rdb, cfg.Redis.CacheTTL)

	authService := service.NewAuthService(
		mongodb.NewUserRepository(db), tokens,
		log.With().Str("component", "auth").Logger(),
	)
	startupService := service.NewStartupService(
		mongodb.NewStartupRepository(db), cache,
		log.With().Str("component", "startups").Logger(),
	)
	investorService := service.NewInvestorService(
		mongodb.NewInvestorRepository(db), cache,
		log.With().Str("component", "investors").Logger(),
	)

	return New(Services{
		Auth:       authService,
		Tokens:     tokens,
		Principals: authService,
		Startups:   startupService,
		Investors:  investorService,
		Readiness:  []handler.DependencyCheck{handler.MongoCheck(db), handler.RedisCheck(rdb)},
	}, Options{
		CORSOrigins: cfg.CORSOrigins,
		Metrics:     true,
		Swagger:     true,
	}, log)
}

// New builds the Echo instance over already constructed services.
func New(svc Services, opts Options, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Pre(echomiddleware.RemoveTrailingSlash())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(requestLogger(log))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: corsOrigins(opts.CORSOrigins),
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	if opts.Metrics {
		e.Use(echoprometheus.NewMiddleware("marketplace"))
		e.GET("/metrics", echoprometheus.NewHandler())
	}
	if opts.Swagger {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	// --- Health probes (no auth required) ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(svc.Readiness...).Readiness)

	registerRoutes(e.Group("/api"), svc)
	return e
}

func registerRoutes(api *echo.Group, svc Services) {
	authenticate := middleware.Authenticate(svc.Tokens, svc.Principals)

	// --- Accounts ---
	users := handler.NewUserHandler(svc.Auth)
	u := api.Group("/users")
	u.POST("/register", users.Register)
	u.POST("/login", users.Login)
	u.GET("/profile", users.Profile, authenticate)
	u.PUT("/profile", users.UpdateProfile, authenticate)

	// --- Startup profiles ---
	startups := handler.NewStartupHandler(svc.Startups)
	asStartup := middleware.RequireRole(domain.RoleStartup)
	s := api.Group("/startups")
	s.POST("", startups.Create, authenticate, asStartup)
	s.GET("/me", startups.Mine, authenticate, asStartup)
	s.PUT("/me", startups.UpdateMine, authenticate, asStartup)
	s.GET("/:id", startups.Get)
	s.GET("", startups.List)

	// --- Investor profiles ---
	investors := handler.NewInvestorHandler(svc.Investors)
	asInvestor := middleware.RequireRole(domain.RoleInvestor)
	i := api.Group("/investors")
	i.POST("", investors.Create, authenticate, asInvestor)
	i.GET("/me", investors.Mine, authenticate, asInvestor)
	i.PUT("/me", investors.UpdateMine, authenticate, asInvestor)
	i.GET("/:id", investors.Get)
	i.GET("", investors.List)
}

func corsOrigins(origins []string) []string {
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Status >= 500 {
				evt = log.Error().Err(v.Error)
			}
			evt.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
