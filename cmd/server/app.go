package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/lingua-api/internal/api"
	apiMiddleware "github.com/phrazzld/lingua-api/internal/api/middleware"
	"github.com/phrazzld/lingua-api/internal/config"
	"github.com/phrazzld/lingua-api/internal/domain/mastery"
	"github.com/phrazzld/lingua-api/internal/generation"
	"github.com/phrazzld/lingua-api/internal/platform/gemini"
	"github.com/phrazzld/lingua-api/internal/platform/mailer"
	"github.com/phrazzld/lingua-api/internal/platform/postgres"
	"github.com/phrazzld/lingua-api/internal/service"
	"github.com/phrazzld/lingua-api/internal/service/auth"
	"github.com/phrazzld/lingua-api/internal/service/personalization"
	"github.com/phrazzld/lingua-api/internal/service/proxy"
	"github.com/phrazzld/lingua-api/internal/service/reminder"
)

// application holds the wired handlers and the settings the server needs.
type application struct {
	config *config.Config
	logger *slog.Logger

	authMiddleware  *apiMiddleware.AuthMiddleware
	authHandler     *api.AuthHandler
	ledgerHandler   *api.LedgerHandler
	practiceHandler *api.PracticeHandler
	proxyHandler    *api.ProxyHandler
	reminderHandler *api.ReminderHandler
}

// newApplication builds every store, service and handler.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	users := postgres.NewPostgresUserStore(db, logger)
	languages := postgres.NewPostgresLanguageStore(db, logger)
	enrollments := postgres.NewPostgresEnrollmentStore(db, logger)
	results := postgres.NewPostgresExerciseResultStore(db, logger)

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		slog.Int("token_lifetime_hours", cfg.Auth.TokenLifetimeHours))

	authenticator, err := auth.NewAuthenticator(jwtService, users, logger)
	if err != nil {
		return nil, err
	}

	passwords := auth.NewBcrypt(cfg.Auth.BCryptCost)
	accounts, err := service.NewAccountService(users, passwords, passwords, jwtService, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create account service: %w", err)
	}

	ledger, err := service.NewLedgerService(languages, enrollments, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create ledger service: %w", err)
	}

	practice, err := personalization.NewService(db, enrollments, results, mastery.NewDefaultService(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create personalization service: %w", err)
	}

	generator, err := newGenerator(ctx, cfg.LLM, logger)
	if err != nil {
		return nil, err
	}

	m, err := mailer.New(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create mailer: %w", err)
	}
	reminders, err := reminder.NewService(users, m, cfg.Server.FrontendOrigin, cfg.Reminder.Concurrency, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create reminder service: %w", err)
	}

	return &application{
		config:          cfg,
		logger:          logger,
		authMiddleware:  apiMiddleware.NewAuthMiddleware(authenticator),
		authHandler:     api.NewAuthHandler(accounts),
		ledgerHandler:   api.NewLedgerHandler(ledger),
		practiceHandler: api.NewPracticeHandler(practice),
		proxyHandler:    api.NewProxyHandler(proxy.NewService(generator, logger)),
		reminderHandler: api.NewReminderHandler(reminders),
	}, nil
}

// newGenerator returns nil when no API key is configured; the proxy then
// answers with its local fallback.
func newGenerator(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (generation.Generator, error) {
	if cfg.GeminiAPIKey == "" {
		logger.Warn("no Gemini API key configured; translate and chat use the local fallback")
		return nil, nil
	}

	g, err := gemini.NewGeminiGenerator(ctx, logger, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
	}
	return g, nil
}
