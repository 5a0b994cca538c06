package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	_ "github.com/sbilibin2017/planetary-api/docs"
	"github.com/sbilibin2017/planetary-api/internal/config"
	"github.com/sbilibin2017/planetary-api/internal/events"
	"github.com/sbilibin2017/planetary-api/internal/handlers"
	"github.com/sbilibin2017/planetary-api/internal/jwt"
	"github.com/sbilibin2017/planetary-api/internal/logger"
	"github.com/sbilibin2017/planetary-api/internal/mailer"
	"github.com/sbilibin2017/planetary-api/internal/middlewares"
	"github.com/sbilibin2017/planetary-api/internal/migrations"
	"github.com/sbilibin2017/planetary-api/internal/repositories"
	"github.com/sbilibin2017/planetary-api/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title Planetary API
// @version 1.0.0
// @description Planet catalog with user registration, login and password recovery
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// eventPublisher is a services.EventPublisher owning a connection.
type eventPublisher interface {
	services.EventPublisher
	io.Closer
}

// newNotifier selects the mail gateway configured by MAIL_PROVIDER.
func newNotifier(cfg config.MailConfig) services.Notifier {
	if cfg.Provider == config.MailProviderMailgun {
		return mailer.NewMailgunSender(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.Sender)
	}
	return mailer.NewSMTPSender(cfg.Server, cfg.Port, cfg.Username, cfg.Password, cfg.Sender)
}

// newPublisher returns a Kafka publisher, or a no-op one when no brokers are set.
func newPublisher(cfg config.KafkaConfig) eventPublisher {
	if len(cfg.Brokers) == 0 {
		return events.NopPublisher{}
	}
	return events.NewKafkaPublisher(cfg.Brokers, cfg.Topic)
}

type routerDeps struct {
	auth       *services.AuthService
	planets    *services.PlanetService
	tokener    middlewares.Tokener
	registry   *prometheus.Registry
	swaggerURL string
}

// newRouter wires handlers and middlewares into a chi router.
func newRouter(deps routerDeps) http.Handler {
	httpMetrics := middlewares.NewHTTPMetrics(deps.registry)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(httpMetrics.Middleware)

	// Public routes
	r.Get("/planets", handlers.NewPlanetsHandler(deps.planets))
	r.Post("/register", handlers.NewRegisterHandler(deps.auth))
	r.Post("/login", handlers.NewLoginHandler(deps.auth))
	r.Get("/retrieve_password/{email}", handlers.NewRetrievePasswordHandler(deps.auth))
	r.Post("/reset_password", handlers.NewResetPasswordHandler(deps.auth))

	// Protected routes with JWT middleware
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(deps.tokener))
		r.Get("/profile", handlers.NewProfileHandler(deps.auth))
	})

	r.Handle("/metrics", promhttp.HandlerFor(deps.registry, promhttp.HandlerOpts{}))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(deps.swaggerURL)))

	return r
}

// run initializes the logger, database, Redis, mail and event clients and the
// HTTP server. It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.App.LogLevel)

	// Connect to PostgreSQL
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.Postgres.Host, "port", cfg.Postgres.Port, "db", cfg.Postgres.DB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("postgres connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)

	if err := migrations.Up(ctx, db.DB); err != nil {
		return err
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection error: %w", err)
	}
	defer rdb.Close()

	publisher := newPublisher(cfg.Kafka)
	defer publisher.Close()

	tokens := jwt.New(jwt.WithSecretKey(cfg.JWT.SecretKey), jwt.WithExpiration(cfg.JWT.Exp))

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	planetReadRepo := repositories.NewPlanetReadRepository(db)
	resetTokenRepo := repositories.NewResetTokenRepository(rdb)

	// Initialize services
	authService := services.NewAuthService(
		userReadRepo, userWriteRepo, tokens, resetTokenRepo,
		newNotifier(cfg.Mail), publisher, cfg.Reset.TokenTTL,
	)
	planetService := services.NewPlanetService(planetReadRepo, nil)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	srv := &http.Server{
		Addr: cfg.App.Addr(),
		Handler: newRouter(routerDeps{
			auth:       authService,
			planets:    planetService,
			tokener:    tokens,
			registry:   registry,
			swaggerURL: fmt.Sprintf("http://%s/swagger/doc.json", cfg.App.Addr()),
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("http server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
