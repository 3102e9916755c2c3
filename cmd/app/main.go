// @title NeuroFarm API
// @version 1.0
// @description Farming game backend: players, farms, crops, animals, exploration and pastimes.
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/NeuroFarm_Go/internal/bootstrap"
	"github.com/osse101/NeuroFarm_Go/internal/catalog"
	"github.com/osse101/NeuroFarm_Go/internal/config"
	"github.com/osse101/NeuroFarm_Go/internal/database"
	"github.com/osse101/NeuroFarm_Go/internal/handler"
	"github.com/osse101/NeuroFarm_Go/internal/server"
	"github.com/osse101/NeuroFarm_Go/internal/sse"
)

const (
	startupTimeout  = 30 * time.Second
	shutdownTimeout = 15 * time.Second
)

func main() {
	if err := run(); err != nil {
		slog.Error("Fatal error", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	// Load has read .env into the environment by now
	if err := config.ValidateEnv(); err != nil {
		return err
	}

	loader, err := catalog.NewLoader()
	if err != nil {
		return fmt.Errorf("failed to build catalog loader: %w", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	startCtx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	dbPool, err := database.NewPool(startCtx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdle, cfg.DBMaxConnLife)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.AutoMigrate {
		if err := database.Migrate(startCtx, dbPool); err != nil {
			dbPool.Close()
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
	}

	eventBus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		dbPool.Close()
		return err
	}

	repos := bootstrap.InitializeRepositories(dbPool)
	svcs := bootstrap.InitializeServices(cfg, dbPool, repos, publisher)

	hub := sse.NewHub()
	hub.Start()

	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:        eventBus,
		EventLogService: svcs.EventLog,
		SSEHub:          hub,
	}); err != nil {
		hub.Stop()
		dbPool.Close()
		return err
	}

	if cfg.SeedOnStartup {
		if _, err := bootstrap.SeedCatalog(startCtx, svcs.Catalog, cfg.CatalogPath); err != nil {
			hub.Stop()
			dbPool.Close()
			return err
		}
	}

	workerPool, sched := bootstrap.StartBackgroundJobs(cfg, svcs.EventLog)

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
	}, dbPool, server.Handlers{
		Player:  handler.NewPlayerHandler(svcs.Ledger, svcs.Farm, svcs.Exploration, svcs.Activity, svcs.EventLog),
		Farm:    handler.NewFarmHandler(svcs.Farm, svcs.Plot, svcs.Husbandry),
		Catalog: handler.NewCatalogHandler(svcs.Catalog, loader, cfg.CatalogPath),
		SSEHub:  hub,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	var runErr error
	select {
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig.String())
	case err, ok := <-serverErr:
		if ok {
			runErr = fmt.Errorf("server failed: %w", err)
		}
	}

	ctx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:             srv,
		Scheduler:          sched,
		WorkerPool:         workerPool,
		SSEHub:             hub,
		ResilientPublisher: publisher,
		DBPool:             dbPool,
	})

	return runErr
}
