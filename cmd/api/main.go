package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"task-assistant/config"
	_ "task-assistant/docs" // Swagger docs
	"task-assistant/internal/completion"
	completionUC "task-assistant/internal/completion/usecase"
	"task-assistant/internal/directory"
	directoryPG "task-assistant/internal/directory/repository/postgre"
	directoryUC "task-assistant/internal/directory/usecase"
	"task-assistant/internal/errtrack"
	"task-assistant/internal/extractor"
	"task-assistant/internal/httpserver"
	"task-assistant/internal/middleware"
	"task-assistant/internal/session"
	sessionRepo "task-assistant/internal/session/repository"
	sessionMemory "task-assistant/internal/session/repository/memory"
	sessionSQLite "task-assistant/internal/session/repository/sqlite"
	sessionUC "task-assistant/internal/session/usecase"
	"task-assistant/internal/task"
	taskHTTP "task-assistant/internal/task/delivery/http"
	taskPG "task-assistant/internal/task/repository/postgre"
	taskUC "task-assistant/internal/task/usecase"
	translationPG "task-assistant/internal/translation/repository/postgre"
	translationUC "task-assistant/internal/translation/usecase"
	validationUC "task-assistant/internal/validation/usecase"
	"task-assistant/pkg/llmprovider"
	"task-assistant/pkg/log"
	"task-assistant/pkg/postgres"
	"task-assistant/pkg/retry"
	"task-assistant/pkg/schedule"
)

// @title       Task Assistant API
// @description Conversational task creation: chat in plain English, get scheduled tasks.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Task Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Task store
	db, err := postgres.New(ctx, postgres.Config{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Postgres.ConnMaxIdleTime,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to task store: %v", err)
		return
	}
	defer db.Close()

	// 4. Pending sessions
	sessions, closeSessions, err := newSessionStore(ctx, cfg.Assistant, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to open session store: %v", err)
		return
	}
	defer closeSessions()
	sessionUseCase := sessionUC.New(logger, sessions)

	// 5. Language model
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize LLM providers: %v", err)
		return
	}
	for _, p := range providers {
		logger.Infof(ctx, "LLM provider ready: %s (%s)", p.Name(), p.Model())
	}
	llm := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		Retry: retry.Policy{
			Attempts:   cfg.LLM.RetryAttempts,
			BaseDelay:  parseDuration(cfg.LLM.RetryDelay, 2*time.Second),
			Multiplier: 2,
			MaxDelay:   10 * time.Second,
		},
		MaxTotalTimeout: parseDuration(cfg.LLM.MaxTotalTimeout, 60*time.Second),
	}, logger)
	completionUseCase := completionUC.New(logger, llm, completion.Config{
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
	})

	// 6. Directory, validation and translation
	directoryUseCase := directoryUC.New(logger, directoryPG.New(db, logger), directory.Config{
		CacheTTL: cfg.Assistant.DirectoryCacheTTL,
		Retry:    policyFrom(cfg.Retry.Directory),
	})
	validationUseCase := validationUC.New(logger, directoryUseCase)
	translationUseCase := translationUC.New(logger, translationPG.New(db, logger), nil)
	if !translationUseCase.ValidateIntegrity() {
		logger.Error(ctx, "Monthly day translation tables are inconsistent")
		return
	}

	// 7. Task use case
	taskUseCase := taskUC.New(
		logger,
		completionUseCase,
		extractor.New(schedule.New()),
		validationUseCase,
		sessionUseCase,
		directoryUseCase,
		translationUseCase,
		taskPG.New(db, logger),
		errtrack.New(logger),
		task.Config{
			DefaultTimezone: cfg.Assistant.DefaultTimezone,
			DatabaseRetry:   policyFrom(cfg.Retry.Database),
		},
	)

	// 8. Session housekeeping
	scheduler, err := startCleanup(ctx, sessionUseCase, cfg.Assistant.SessionRetention, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to schedule session cleanup: %v", err)
		return
	}
	defer scheduler.Stop()

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Ready:       db.PingContext,
		Middleware:  middleware.New(logger, middleware.Config{RateLimitPerMin: cfg.Assistant.RateLimitPerMin}),
		TaskHandler: taskHTTP.New(logger, taskUseCase, taskHTTP.Config{
			DefaultTimezone: cfg.Assistant.DefaultTimezone,
			DebugAllowed:    cfg.Assistant.DebugAllowed,
		}),
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func newSessionStore(ctx context.Context, cfg config.AssistantConfig, l log.Logger) (sessionRepo.Repository, func(), error) {
	if cfg.SessionStore != config.SessionStoreSQLite {
		l.Infof(ctx, "Session store: memory (ttl %s)", cfg.SessionTTL)
		return sessionMemory.New(sessionMemory.DefaultSize, cfg.SessionTTL), func() {}, nil
	}

	db, err := sessionSQLite.Open(ctx, cfg.SessionSQLitePath)
	if err != nil {
		return nil, nil, err
	}
	l.Infof(ctx, "Session store: sqlite at %s", cfg.SessionSQLitePath)
	return sessionSQLite.New(db, l), func() { db.Close() }, nil
}

// startCleanup drops abandoned sessions once an hour.
func startCleanup(ctx context.Context, uc session.UseCase, retention time.Duration, l log.Logger) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc("@hourly", func() {
		if _, err := uc.Cleanup(ctx, retention); err != nil {
			l.Warnf(ctx, "session cleanup: %v", err)
		}
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}

func policyFrom(p config.PolicyConfig) retry.Policy {
	return retry.Policy{
		Attempts:   p.Attempts,
		BaseDelay:  p.BaseDelay,
		Multiplier: p.Multiplier,
		MaxDelay:   p.MaxDelay,
	}
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
