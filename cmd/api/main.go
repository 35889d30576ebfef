// Package main is the entrypoint for the Moodlog API server.
package main

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/moodlog/moodlog/internal/config"
	"github.com/moodlog/moodlog/internal/handler"
	"github.com/moodlog/moodlog/internal/middleware"
	"github.com/moodlog/moodlog/internal/repository"
	"github.com/moodlog/moodlog/internal/server"
	"github.com/moodlog/moodlog/internal/service"
	"github.com/moodlog/moodlog/internal/token"
)

func main() {
	ctx := context.Background()

	// Load configuration. DATABASE_URL and TOKEN_SECRET have no defaults
	// and missing values fail here, before anything listens.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := initLogger(cfg)

	// Initialize database
	repo, err := repository.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error(
			"failed to connect to database",
			slog.String("error", sanitizeError(err, cfg.DatabaseURL)),
			slog.String("database_url", redactURL(cfg.DatabaseURL)),
		)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// Initialize services
	journalService := service.NewJournalService(repo)
	issuer := token.NewIssuer(cfg.TokenSecret, cfg.TokenTTL)

	// Initialize handlers
	h := handler.New()
	healthHandler := handler.NewHealthHandler(repo)
	userHandler := handler.NewUserHandler(journalService, logger)
	emotionHandler := handler.NewEmotionHandler(journalService, logger)
	tokenHandler := handler.NewTokenHandler(issuer, logger)

	r := setupRouter(cfg, h, healthHandler, userHandler, emotionHandler, tokenHandler, logger)

	srv := server.New(
		r,
		cfg.AppPort,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)
	srv.OnShutdown("postgres", func(ctx context.Context) error {
		repo.Close()
		return nil
	})

	logger.Info("starting server",
		"port", cfg.AppPort,
		"env", cfg.AppEnv,
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	var h slog.Handler

	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}

	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// setupRouter configures the chi router with all routes and middleware.
func setupRouter(
	cfg *config.Config,
	h *handler.Handler,
	healthHandler *handler.HealthHandler,
	userHandler *handler.UserHandler,
	emotionHandler *handler.EmotionHandler,
	tokenHandler *handler.TokenHandler,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	securityCfg := middleware.DefaultSecurityConfig()
	securityCfg.IsDevelopment = cfg.IsDevelopment()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(middleware.Security(securityCfg))
	r.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	r.Use(middleware.MaxBodySize(securityCfg.MaxRequestBodySize))

	// Health endpoints
	r.Get("/healthz", healthHandler.Healthz)
	r.Get("/readyz", healthHandler.Readyz)

	// Root banner
	r.Get("/", h.Banner)

	// Standalone token issuer; nothing else consults the tokens it mints
	r.Post("/jwt", tokenHandler.Issue)

	r.Route("/api", func(r chi.Router) {
		r.Post("/users/register", userHandler.Register)
		r.Get("/users/email/{email}", userHandler.GetByEmail)

		r.Route("/emotions", func(r chi.Router) {
			r.Get("/", emotionHandler.List)
			r.Post("/", emotionHandler.Create)
			r.Delete("/", emotionHandler.DeleteAll)
			r.Delete("/{id}", emotionHandler.DeleteOne)
		})
	})

	// 404 and 405 handlers
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	return r
}

func redactURL(raw string) string {
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "[redacted]"
	}

	if parsed.User != nil {
		username := parsed.User.Username()
		if username == "" {
			parsed.User = url.User("redacted")
		} else {
			parsed.User = url.User(username)
		}
	}

	return parsed.String()
}

// sanitizeError strips configured secrets from an error message before logging.
func sanitizeError(err error, secrets ...string) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		redacted := redactURL(secret)
		if redacted == "" {
			redacted = "[redacted]"
		}
		msg = strings.ReplaceAll(msg, secret, redacted)
	}

	return msg
}
