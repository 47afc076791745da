package config

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand/v2"

	"daily-quotes/internal/domain"
	"daily-quotes/internal/exporter"
	"daily-quotes/internal/i18n"
	"daily-quotes/internal/infra/sqlite"
	"daily-quotes/internal/infra/supabase"
	"daily-quotes/internal/repository"
	"daily-quotes/internal/service"
	"daily-quotes/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config                 domain.Config
	Logger                 domain.Logger
	Quotes                 *repository.QuoteRepository
	KVStore                domain.KVStore
	ContributionRepository domain.ContributionRepository
	SupabaseClient         domain.SupabaseClient
	Catalog                *i18n.Catalog
	Session                *service.Session
	ContributionService    *service.ContributionService

	db *sql.DB
}

// NewContainer creates a new dependency injection container from the environment
func NewContainer(ctx context.Context) (*Container, error) {
	cfg := NewConfig()
	return NewContainerWithConfig(ctx, cfg, logger.NewLoggerWithFormat(cfg.GetLogLevel(), cfg.GetLogFormat()))
}

// NewContainerWithConfig wires the application around cfg
func NewContainerWithConfig(ctx context.Context, cfg domain.Config, appLogger domain.Logger) (*Container, error) {
	c := &Container{Config: cfg, Logger: appLogger}

	quotes, err := repository.LoadQuoteRepository(cfg.GetQuotesFile(), appLogger)
	if err != nil {
		return nil, fmt.Errorf("load quotes: %w", err)
	}
	c.Quotes = quotes

	if err := c.initStorage(); err != nil {
		c.Close()
		return nil, err
	}

	c.Catalog = i18n.New(cfg.GetUILanguage())
	notifier := service.NewHTTPContributionNotifier(
		cfg.GetContributionURL(),
		cfg.GetContributionAPIKey(),
		cfg.GetContributionTimeout(),
		appLogger,
	)

	var rng *rand.Rand
	if seed := cfg.GetRandomSeed(); seed != 0 {
		rng = rand.New(rand.NewPCG(seed, seed))
	}

	c.Session = service.NewSession(ctx, quotes, c.KVStore, notifier, service.SessionOptions{
		Presets:   quotes.PresetTranslations(),
		Exporters: exporter.Default(),
		Catalog:   c.Catalog,
		Rand:      rng,
		Contribution: service.ContributionOptions{
			CloseDelay: cfg.GetContributionCloseDelay(),
		},
	}, appLogger)
	c.ContributionService = service.NewContributionService(c.ContributionRepository, quotes, appLogger)

	appLogger.Info("Container initialized",
		"storage_backend", cfg.GetStorageBackend(),
		"quotes", quotes.Len(),
		"ui_language", c.Catalog.Language())
	return c, nil
}

func (c *Container) initStorage() error {
	switch backend := c.Config.GetStorageBackend(); backend {
	case "memory":
		c.KVStore = repository.NewMemoryKVStore()
		c.ContributionRepository = repository.NewMemoryContributionRepository()
	case "sqlite", "":
		db, err := sqlite.Open(c.Config.GetSQLitePath())
		if err != nil {
			return fmt.Errorf("open sqlite: %w", err)
		}
		c.db = db
		c.KVStore = repository.NewSQLiteKVStore(db, c.Config.GetSessionID())
		c.ContributionRepository = repository.NewSQLiteContributionRepository(db)
	case "supabase":
		client := supabase.NewClient(c.Config, c.Logger)
		if err := client.Initialize(); err != nil {
			return fmt.Errorf("initialize supabase: %w", err)
		}
		c.SupabaseClient = client
		c.KVStore = repository.NewSupabaseKVStore(client, c.Config.GetSessionID(), c.Logger)
		c.ContributionRepository = repository.NewSupabaseContributionRepository(client, c.Logger)
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownStorageBackend, backend)
	}
	return nil
}

// Close stops background work and releases the storage handle
func (c *Container) Close() error {
	if c.Session != nil {
		c.Session.Shutdown()
	}
	if c.db != nil {
		if err := c.db.Close(); err != nil {
			return fmt.Errorf("close sqlite: %w", err)
		}
		c.db = nil
	}
	if s, ok := c.Logger.(interface{ Sync() error }); ok {
		_ = s.Sync()
	}
	return nil
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}
