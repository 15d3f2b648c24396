// @title Alion API
// @version 1.0
// @description Backend of the Alion browser strategy game: villages, tribes and lazily accrued resources.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/alion/internal/auth"
	"github.com/osse101/alion/internal/bootstrap"
	"github.com/osse101/alion/internal/concurrency"
	"github.com/osse101/alion/internal/config"
	"github.com/osse101/alion/internal/database"
	"github.com/osse101/alion/internal/resource"
	"github.com/osse101/alion/internal/server"
	"github.com/osse101/alion/internal/tribe"
	"github.com/osse101/alion/internal/user"
	"github.com/osse101/alion/internal/village"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.LogDir == "" {
		initLogger(cfg)
	} else {
		logFile, err := bootstrap.SetupLogger(cfg)
		if err != nil {
			log.Fatalf("Failed to set up logging: %v", err)
		}
		defer logFile.Close()
	}

	if warnings, err := config.ValidateEnvWithWarnings(); err != nil {
		slog.Warn("Environment validation failed", "error", err)
	} else {
		for _, w := range warnings {
			slog.Warn(w)
		}
	}

	pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	if err := database.Migrate(ctx, pool); err != nil {
		slog.Error("Failed to apply migrations", "error", err)
		pool.Close()
		os.Exit(1)
	}

	verifier, err := auth.NewVerifier(cfg.JWTSecret)
	if err != nil {
		slog.Error("Failed to create token verifier", "error", err)
		pool.Close()
		os.Exit(1)
	}

	repos := bootstrap.InitializeRepositories(pool)

	userService := user.NewService(repos.User, repos.Village, user.CacheConfig{
		Size: cfg.UserCacheSize,
		TTL:  cfg.UserCacheTTL,
	})
	villageService := village.NewService(
		repos.Village,
		resource.NewEngine(),
		concurrency.NewLockManager(),
		cfg.ReconcileMaxRetries,
	)
	tribeService := tribe.NewService(repos.Tribe, userService, cfg.TribeCacheTTL)

	srv := server.NewServer(server.Params{
		Port:           cfg.Port,
		TrustedProxies: cfg.TrustedProxies,
		DBPool:         pool,
		Verifier:       verifier,
		UserService:    userService,
		VillageService: villageService,
		TribeService:   tribeService,
	})

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server: srv,
		DBPool: pool,
	})
}
