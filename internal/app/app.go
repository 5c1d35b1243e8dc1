package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/fifa-roster/internal/config"
	"github.com/riskibarqy/fifa-roster/internal/domain/player"
	"github.com/riskibarqy/fifa-roster/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/fifa-roster/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fifa-roster/internal/infrastructure/repository/sqlite"
	"github.com/riskibarqy/fifa-roster/internal/infrastructure/storage"
	"github.com/riskibarqy/fifa-roster/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/fifa-roster/internal/platform/cache"
	"github.com/riskibarqy/fifa-roster/internal/platform/logging"
	"github.com/riskibarqy/fifa-roster/internal/usecase"
)

// App wires the roster service to its storage and HTTP surface.
type App struct {
	Server *http.Server
	Roster *usecase.RosterService

	clearOnShutdown bool
	logger          *logging.Logger
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	playerRepo, err := newPlayerRepository(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	if cfg.CacheEnabled {
		playerRepo = cache.NewPlayerRepository(playerRepo, basecache.NewStore(cfg.CacheTTL))
		logger.Info("roster read cache enabled", "ttl", cfg.CacheTTL.String())
	}

	rosterSvc := usecase.NewRosterService(playerRepo, memory.SeedPlayers(), logger)
	if cfg.RosterSeedOnStart {
		if err := rosterSvc.SeedOnce(ctx); err != nil {
			return nil, fmt.Errorf("seed roster on start: %w", err)
		}
	}

	handler := httpapi.NewHandler(rosterSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	return &App{
		Server: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		Roster:          rosterSvc,
		clearOnShutdown: cfg.RosterClearOnShutdown,
		logger:          logger,
	}, nil
}

func newPlayerRepository(ctx context.Context, cfg config.Config, logger *logging.Logger) (player.Repository, error) {
	switch cfg.StorageDriver {
	case config.StorageMemory:
		logger.Info("roster storage selected", "driver", config.StorageMemory)
		return memory.NewPlayerRepository(nil), nil
	case config.StorageSQLite, "":
		gateway, err := storage.NewGateway(storage.Config{
			Path:        cfg.DBPath,
			BusyTimeout: cfg.DBBusyTimeout,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("create storage gateway: %w", err)
		}
		if cfg.DBAutoMigrate {
			if err := gateway.Migrate(ctx); err != nil {
				return nil, fmt.Errorf("migrate roster schema: %w", err)
			}
		}
		logger.Info("roster storage selected", "driver", config.StorageSQLite, "path", gateway.Path())
		return sqlite.NewPlayerRepository(gateway), nil
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

// Shutdown stops the HTTP server and, when configured, empties the roster.
func (a *App) Shutdown(ctx context.Context) error {
	if err := a.Server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	if !a.clearOnShutdown {
		return nil
	}

	if err := a.Roster.ClearAll(ctx); err != nil {
		return fmt.Errorf("clear roster on shutdown: %w", err)
	}
	return nil
}
