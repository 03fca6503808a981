package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	pgRepo "dan-papers/internal/infra/adapter/persistence/postgres"
	"dan-papers/internal/infra/db"
	infralegacy "dan-papers/internal/infra/legacy"
	"dan-papers/internal/infra/seed"
	"dan-papers/internal/infra/structurer"
	"dan-papers/internal/observability/logging"
	"dan-papers/internal/observability/tracing"
	"dan-papers/internal/pkg/config"
	"dan-papers/internal/repository"

	artUC "dan-papers/internal/usecase/article"
	contentUC "dan-papers/internal/usecase/content"
	identUC "dan-papers/internal/usecase/identity"
	legacyUC "dan-papers/internal/usecase/legacy"

	hhttp "dan-papers/internal/handler/http"
	harticle "dan-papers/internal/handler/http/article"
	hauth "dan-papers/internal/handler/http/auth"
	hcontent "dan-papers/internal/handler/http/content"
	hlegacy "dan-papers/internal/handler/http/legacy"
	"dan-papers/internal/handler/http/requestid"
)

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	cfg, warnings, err := config.Load()
	if err != nil {
		logger.Error("configuration rejected", slog.Any("error", err))
		os.Exit(1)
	}
	for _, w := range warnings {
		logger.Warn("configuration fallback", slog.String("warning", w))
	}

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	seedStore, err := seed.Load()
	if err != nil {
		logger.Error("failed to load seed articles", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("seed articles loaded", slog.Int("count", len(seedStore.All())))

	provider := structurer.FromEnv()
	logger.Info("AI provider selected", slog.String("provider", structurer.Name(provider)))

	handler := setupServer(logger, cfg, database, seedStore, provider)
	runServer(logger, cfg, handler)
}

// initDatabase opens the database connection and runs migrations.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// setupServer wires services, routes, and the middleware chain.
func setupServer(
	logger *slog.Logger,
	cfg *config.AppConfig,
	database *sql.DB,
	seedStore *seed.Store,
	provider structurer.Provider,
) http.Handler {
	articleRepo := pgRepo.NewArticleRepo(database)
	artSvc := artUC.NewService(articleRepo, seedStore, cfg.AdminUsernames)
	identSvc := identUC.NewService(pgRepo.NewUserRepo(database))
	contentSvc := contentUC.NewService(provider)

	go refreshArticleGauge(articleRepo, logger)

	oauthProvider := hauth.NewGitHubProvider(cfg.OAuthClientID, cfg.OAuthClientSecret)
	signer := hauth.NewSessionSigner(cfg.JWTSecret)

	// Sliding-window limits on the endpoints that hit external services.
	authLimiter := hhttp.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)
	aiLimiter := hhttp.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)

	mux := http.NewServeMux()

	mux.Handle("GET    /health", &hhttp.HealthHandler{
		DB:         database,
		Version:    cfg.Version,
		AIProvider: structurer.Name(provider),
		SeedCount:  len(seedStore.All()),
	})
	mux.Handle("GET    /ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("GET    /live", &hhttp.LiveHandler{})
	mux.Handle("GET    /metrics", hhttp.MetricsHandler())

	harticle.Register(mux, artSvc, logger)

	authMux := http.NewServeMux()
	hauth.Register(authMux, oauthProvider, signer, identSvc, cfg.OAuthRedirectURI, logger)
	mux.Handle("/auth/", authLimiter.Limit(authMux))

	contentMux := http.NewServeMux()
	hcontent.Register(contentMux, contentSvc, logger)
	mux.Handle("/content/", aiLimiter.Limit(contentMux))

	if cfg.LegacyEnabled() {
		legacySvc := legacyUC.NewService(infralegacy.NewClient(), infralegacy.Config{
			Owner:  cfg.LegacyOwner,
			Repo:   cfg.LegacyRepo,
			Path:   cfg.LegacyPath,
			Branch: cfg.LegacyBranch,
		})
		hlegacy.Register(mux, artSvc, legacySvc, logger)
		logger.Info("legacy patcher enabled",
			slog.String("repo", cfg.LegacyOwner+"/"+cfg.LegacyRepo),
			slog.String("path", cfg.LegacyPath))
	} else {
		logger.Info("legacy patcher disabled, no target repo configured")
	}

	// Apply in reverse order (innermost to outermost).
	var chain http.Handler = mux
	chain = hauth.Identity(signer)(chain)
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.LimitRequestBody(5 << 20)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)

	return chain
}

// refreshArticleGauge keeps the stored-article gauge current. It counts only
// persisted articles, so the seed bundle never inflates the number.
func refreshArticleGauge(repo repository.ArticleRepository, logger *slog.Logger) {
	update := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		articles, err := repo.List(ctx)
		if err != nil {
			logger.Warn("article gauge refresh failed", slog.Any("error", err))
			return
		}
		hhttp.UpdateArticlesTotal(len(articles))
	}

	update()
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		update()
	}
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, cfg *config.AppConfig, handler http.Handler) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", cfg.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
