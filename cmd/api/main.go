package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"

	"github.com/rasel-stacklearner/blogger/internal/accesslog"
	pgRepo "github.com/rasel-stacklearner/blogger/internal/infra/adapter/persistence/postgres"
	"github.com/rasel-stacklearner/blogger/internal/infra/cache"
	"github.com/rasel-stacklearner/blogger/internal/infra/db"
	"github.com/rasel-stacklearner/blogger/internal/observability/logging"
	"github.com/rasel-stacklearner/blogger/internal/observability/tracing"
	"github.com/rasel-stacklearner/blogger/pkg/config"

	postUC "github.com/rasel-stacklearner/blogger/internal/usecase/post"
	userUC "github.com/rasel-stacklearner/blogger/internal/usecase/user"

	hhttp "github.com/rasel-stacklearner/blogger/internal/handler/http"
	"github.com/rasel-stacklearner/blogger/internal/handler/http/middleware"
	hpost "github.com/rasel-stacklearner/blogger/internal/handler/http/post"
	"github.com/rasel-stacklearner/blogger/internal/handler/http/requestid"
	huser "github.com/rasel-stacklearner/blogger/internal/handler/http/user"
)

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	ctx := context.Background()

	database := initDatabase(ctx, logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	cacheClient := initCache(ctx)
	defer func() {
		if cacheClient != nil {
			if err := cacheClient.Close(); err != nil {
				logger.Error("failed to close cache client", slog.Any("error", err))
			}
		}
	}()

	version := getVersion()
	components := setupServer(logger, database, cacheClient, version)

	runServer(logger, components, version)
}

// initDatabase opens the database connection and runs migrations.
// The database is a hard dependency: the process refuses to start without it.
func initDatabase(ctx context.Context, logger *slog.Logger) *sql.DB {
	database, err := db.Open(ctx)
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// initCache opens the cache store client. Unlike the database, the cache is
// optional: Open logs a failed ping and the service starts in degraded mode
// where every detail read goes straight to the database.
func initCache(ctx context.Context) redis.UniversalClient {
	return cache.Open(ctx, cache.LoadConfig())
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// ServerComponents holds components needed for server operation and cleanup.
type ServerComponents struct {
	Handler http.Handler
	Sink    *accesslog.Sink
}

// setupServer wires repositories, services and handlers, and returns the
// fully assembled HTTP handler together with the components that need an
// explicit shutdown.
func setupServer(logger *slog.Logger, database *sql.DB, cacheClient redis.UniversalClient, version string) *ServerComponents {
	store := cache.NewStore(cacheClient)

	postSvc := &postUC.Service{
		Repo:      pgRepo.NewPostRepo(database),
		Cache:     store,
		DetailTTL: config.GetEnvDuration("CACHE_POST_DETAIL_TTL", postUC.DefaultDetailTTL),
	}
	userSvc := &userUC.Service{Repo: pgRepo.NewUserRepo(database)}

	sink := accesslog.NewSink(store, accesslog.LoadConfig())
	sink.Start()

	mux := http.NewServeMux()
	hpost.Register(mux, postSvc)
	huser.Register(mux, userSvc)

	mux.Handle("/health", &hhttp.HealthHandler{
		DB:      database,
		Cache:   cacheClient,
		Breaker: store.Breaker(),
		Version: version,
	})
	mux.Handle("/ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("/live", &hhttp.LiveHandler{})
	mux.Handle("/metrics", hhttp.MetricsHandler())

	handler := applyMiddleware(logger, mux, sink)

	return &ServerComponents{
		Handler: handler,
		Sink:    sink,
	}
}

// applyMiddleware wraps the handler with the middleware chain.
// Order (outer to inner): CORS → Request ID → Tracing → Rate Limit →
// Recovery → Logging → Access log mirror → Body Limit → Metrics.
func applyMiddleware(logger *slog.Logger, handler http.Handler, sink *accesslog.Sink) http.Handler {
	chain := handler

	// applied in reverse, innermost first
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.LimitRequestBody(1 << 20)(chain) // 1MB limit
	chain = hhttp.AccessLog(sink)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)

	if config.GetEnvBool("RATELIMIT_ENABLED", false) {
		limit := config.GetEnvInt("RATELIMIT_LIMIT", 100)
		window := config.GetEnvDuration("RATELIMIT_WINDOW", time.Minute)
		limiter := hhttp.NewRateLimiter(limit, window)
		chain = limiter.Limit(chain)
		logger.Info("rate limiting enabled",
			slog.Int("limit", limit),
			slog.Duration("window", window))
	}

	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)

	// CORS is opt-in: without configured origins the API serves
	// same-origin traffic only.
	if os.Getenv("CORS_ALLOWED_ORIGINS") != "" {
		corsConfig, err := middleware.LoadCORSConfig()
		if err != nil {
			logger.Error("failed to load CORS configuration", slog.Any("error", err))
			os.Exit(1)
		}
		corsConfig.Logger = &middleware.SlogAdapter{Logger: logger}
		logger.Info("CORS enabled",
			slog.Any("allowed_origins", corsConfig.Validator.GetAllowedOrigins()),
			slog.Any("allowed_methods", corsConfig.AllowedMethods),
			slog.Int("max_age", corsConfig.MaxAge))
		chain = middleware.CORS(*corsConfig)(chain)
	} else {
		logger.Warn("CORS_ALLOWED_ORIGINS not set, cross-origin requests disabled")
	}

	return chain
}

// runServer starts the HTTP server and handles graceful shutdown.
// Shutdown order matters: stop accepting requests first, then drain the
// access-log sink so in-flight records still reach the mirror.
func runServer(logger *slog.Logger, components *ServerComponents, version string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr := ":" + config.GetEnvString("PORT", "8080")
	srv := &http.Server{
		Addr:              addr,
		Handler:           components.Handler,
		ReadHeaderTimeout: 10 * time.Second, // Slowloris guard
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}

	if err := components.Sink.Close(shutdownCtx); err != nil {
		logger.Error("access log sink shutdown failed", slog.Any("error", err))
	}

	logger.Info("server stopped")
}
