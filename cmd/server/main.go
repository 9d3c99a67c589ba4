// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/deopraglabs/prysme/internal/config"
	customerRouter "github.com/deopraglabs/prysme/internal/customer/router"
	"github.com/deopraglabs/prysme/internal/database/database"
	"github.com/deopraglabs/prysme/internal/database/migrate"
	"github.com/deopraglabs/prysme/internal/health"
	"github.com/deopraglabs/prysme/internal/lock"
	"github.com/deopraglabs/prysme/internal/middleware"
	productRouter "github.com/deopraglabs/prysme/internal/product/router"
	quotationRouter "github.com/deopraglabs/prysme/internal/quotation/router"
	"github.com/deopraglabs/prysme/internal/security"
	statisticsRouter "github.com/deopraglabs/prysme/internal/statistics/router"
	teamRouter "github.com/deopraglabs/prysme/internal/team/router"
	teamService "github.com/deopraglabs/prysme/internal/team/service"
	"github.com/deopraglabs/prysme/internal/tombstone"
	userRouter "github.com/deopraglabs/prysme/internal/user/router"
	userService "github.com/deopraglabs/prysme/internal/user/service"
	"github.com/deopraglabs/prysme/pkg/logger"
)

// lockWait bounds how long a save waits for a contended lock.
const lockWait = 3 * time.Second

func main() {
	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	sugar, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = sugar.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, sugar); err != nil {
		sugar.Fatalw("server stopped with error", "error", err)
	}
}

func run(ctx context.Context, cfg config.Config, sugar *zap.SugaredLogger) error {
	gin.SetMode(cfg.GinMode)
	middleware.SetupValidator()

	db, err := database.New(ctx, logger.NewGormLogger(sugar, logger.GormLogLevel(cfg.Logger.Level), cfg.Logger.SlowQuery))
	if err != nil {
		return err
	}
	defer func() { _ = database.Close(db) }()

	if cfg.MigrateOnStart {
		if err := migrate.Migrate(db); err != nil {
			return err
		}
		version, dirty, err := migrate.Version(db)
		if err != nil {
			return err
		}
		sugar.Infow("database migrated", "path", migrate.GetMigrationsPath(), "version", version, "dirty", dirty)
	}

	tombstones, err := tombstone.New([]byte(cfg.Security.TombstoneKey))
	if err != nil {
		return err
	}
	tombstones = tombstones.WithLength(cfg.Security.TombstoneLength)

	hasher, err := security.NewBcryptHasher(cfg.Security.BcryptCost)
	if err != nil {
		return err
	}

	locker, closeLocker, err := newLocker(ctx, cfg.Redis, sugar)
	if err != nil {
		return err
	}
	defer closeLocker()

	router := newRouter(db, sugar, locker, hasher, tombstones)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errorCh := make(chan error, 1)
	go func() {
		sugar.Infow("server starting", "addr", srv.Addr)
		errorCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			sugar.Errorw("graceful shutdown failed", "error", err)
			return err
		}
		sugar.Infow("server stopped")
		return nil
	case err := <-errorCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// newLocker returns a Redis backed locker when Redis is configured and an
// in-process one otherwise.
func newLocker(ctx context.Context, cfg config.RedisConfig, sugar *zap.SugaredLogger) (lock.Locker, func(), error) {
	if !cfg.Enabled() {
		sugar.Infow("redis not configured, using in-process locks")
		return lock.NewLocalLocker(lockWait), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, err
	}

	sugar.Infow("using redis locks", "addr", cfg.Addr)
	return lock.NewRedisLocker(client, cfg.LockTTL, lockWait, sugar), func() { _ = client.Close() }, nil
}

func newRouter(
	db *gorm.DB,
	sugar *zap.SugaredLogger,
	locker lock.Locker,
	hasher security.Hasher,
	tombstones *tombstone.Generator,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(sugar), middleware.Recovery(sugar))

	r.GET("/health", health.New(db, sugar).Check)

	api := r.Group("/api/v1")
	userRouter.RegisterRoutes(api, db, userService.Dependencies{
		Teams:      teamService.NewMembership(sugar),
		Locker:     locker,
		Hasher:     hasher,
		Tombstones: tombstones,
	}, sugar)
	teamRouter.RegisterRoutes(api, db, sugar)
	customerRouter.RegisterRoutes(api, db, locker, tombstones, sugar)
	productRouter.RegisterRoutes(api, db, sugar)
	quotationRouter.RegisterRoutes(api, db, sugar)
	statisticsRouter.RegisterRoutes(api, db, sugar)

	return r
}
