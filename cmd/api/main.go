package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/storefront-api/internal/audit"
	"github.com/BruksfildServices01/storefront-api/internal/auth"
	"github.com/BruksfildServices01/storefront-api/internal/config"
	dbpkg "github.com/BruksfildServices01/storefront-api/internal/db"
	infraRepo "github.com/BruksfildServices01/storefront-api/internal/infra/repository"
	"github.com/BruksfildServices01/storefront-api/internal/logging"
	"github.com/BruksfildServices01/storefront-api/internal/routes"
	"github.com/BruksfildServices01/storefront-api/internal/throttle"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := logging.New(cfg)
	slog.SetDefault(logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		logger.Error("database unavailable", slog.Any("error", err))
		os.Exit(1)
	}

	tokens, err := auth.NewTokenManagerFromConfig(cfg)
	if err != nil {
		logger.Error("invalid token configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	auditRepo := infraRepo.NewAuditGormRepository(db)
	auditDispatcher := audit.NewDispatcher(audit.New(auditRepo), logger)

	var guard throttle.Guard = throttle.Noop{}
	if cfg.RedisURL != "" {
		client, err := throttle.NewRedisClient(cfg.RedisURL)
		if err != nil {
			logger.Error("invalid redis url", slog.Any("error", err))
			os.Exit(1)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Warn("redis unreachable, login throttle degraded", slog.Any("error", err))
		}
		cancel()
		defer client.Close()
		guard = throttle.NewRedisGuard(client, cfg.LoginMaxFailures, cfg.LoginLockWindow)
	}

	r := routes.NewRouter(routes.Dependencies{
		Config:    cfg,
		Logger:    logger,
		Accounts:  infraRepo.NewAccountGormRepository(db),
		Customers: infraRepo.NewCustomerGormRepository(db),
		Products:  infraRepo.NewProductGormRepository(db),
		Orders:    infraRepo.NewOrderGormRepository(db),
		AuditLogs: auditRepo,
		Hasher:    auth.NewPasswordHasher(cfg.BcryptCost),
		Tokens:    tokens,
		Guard:     guard,
		Audit:     auditDispatcher,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server running", slog.String("addr", cfg.Addr()), slog.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to start server", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", slog.Any("error", err))
	}
	auditDispatcher.Close()
}
