package container

import (
	"context"
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"space/explorer/internal/client"
	"space/explorer/internal/config"
	"space/explorer/internal/domain"
	"space/explorer/internal/localization"
	"space/explorer/internal/page"
	"space/explorer/internal/proxy"
	"space/explorer/internal/repository"
	"space/explorer/internal/scheduler"
	"space/explorer/internal/server"
	"space/explorer/internal/service"
	"space/explorer/internal/state"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// Container holds all initialized components
type Container struct {
	Config     *config.Config
	Client     client.NASAClient
	Languages  state.LanguageStore
	Repository repository.OutcomeRepository
	Registry   *page.Registry

	Service   *service.Service
	Scheduler *scheduler.Scheduler
	Server    *server.Server

	db    *pgxpool.Pool
	redis *redis.Client
}

// New creates a new container with all dependencies initialized
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	container := &Container{
		Config: cfg,
		Registry: page.NewRegistry(
			time.Duration(cfg.Sessions.IdleTimeout)*time.Second,
			cfg.Sessions.MaxSessions,
		),
	}

	bundle, err := localization.NewBundle()
	if err != nil {
		return nil, err
	}
	translator, err := localization.New(bundle, cfg.UI.Locale)
	if err != nil {
		return nil, err
	}

	var proxySupplier proxy.Supplier
	if len(cfg.NASA.Proxies) > 0 {
		proxySupplier = proxy.NewSupplier(ctx, cfg.NASA.Proxies, cfg.NASA.BaseURL, nil)
	}
	container.Client = client.NewNASAClient(cfg.NASA, proxySupplier)

	defaultLanguage, err := domain.ParseLanguage(cfg.APOD.DefaultLanguage)
	if err != nil {
		container.Close()
		return nil, err
	}

	switch cfg.State.Backend {
	case config.StateBackendRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.Database,
		})

		// Test connection
		if _, err := rdb.Ping(ctx).Result(); err != nil {
			_ = rdb.Close()
			container.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		log.Info("✅ Connected to Redis successfully")

		container.redis = rdb
		container.Languages = state.NewRedisLanguageStore(rdb, defaultLanguage, time.Duration(cfg.Redis.TTL)*time.Second)
	default:
		container.Languages = state.NewMemoryLanguageStore(defaultLanguage)
	}

	container.Repository = repository.NewNopOutcomeRepository()
	if cfg.Database.Enabled {
		db, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			container.Close()
			return nil, fmt.Errorf("failed to create database pool: %w", err)
		}
		container.db = db

		if err := db.Ping(ctx); err != nil {
			container.Close()
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		outcomeRepo := repository.NewOutcomeRepository(db)
		if err := outcomeRepo.EnsureSchema(ctx); err != nil {
			container.Close()
			return nil, err
		}
		log.Info("✅ Connected to Postgres successfully")
		container.Repository = outcomeRepo
	}

	container.Service = service.NewService(
		container.Client,
		container.Languages,
		container.Repository,
		translator,
		cfg.EPIC.ArchiveURL,
	)

	container.Scheduler, err = scheduler.New(cfg.Refresh.Schedule, container.Registry, container.Service)
	if err != nil {
		container.Close()
		return nil, err
	}

	container.Server = server.New(cfg.Server.Addr(), container.Service, container.Registry)

	return container, nil
}

// Run serves the dashboard and runs the refresh scheduler until ctx is done
func (c *Container) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return c.Server.Run(ctx)
	})

	g.Go(func() error {
		return c.Scheduler.Run(ctx)
	})

	return g.Wait()
}

// Snapshot loads every category of the combined view once on a fresh
// board and writes each result region as plain text.
func (c *Container) Snapshot(ctx context.Context, w io.Writer) error {
	id, board := c.Registry.Create()
	outcomes := c.Service.LoadAll(ctx, service.Session{ID: id, Target: board})

	for _, o := range outcomes {
		text, err := board.Text(o.Category.ResultsRegion())
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "== %s [%s] ==\n%s\n\n", o.Category.GetCategoryName(), o.Status, text); err != nil {
			return err
		}
	}
	return nil
}

// Close performs cleanup when shutting down
func (c *Container) Close() error {
	log.Info("Shutting down container...")

	if c.Client != nil {
		if err := c.Client.Close(); err != nil {
			log.Warnf("⚠️ Failed to close API client: %v", err)
		}
	}
	if c.db != nil {
		c.db.Close()
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			log.Warnf("⚠️ Failed to close Redis client: %v", err)
		}
	}

	log.Info("Container shut down successfully")
	return nil
}
