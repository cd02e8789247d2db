// Package server implements the `famvest server` command: configuration
// loading, dependency wiring, and the HTTP server lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/famvest-inc/famvest/internal/application/payment/gateway"
	"github.com/famvest-inc/famvest/internal/application/payment/processorgw"
	purchaseUsecases "github.com/famvest-inc/famvest/internal/application/purchase/usecases"
	"github.com/famvest-inc/famvest/internal/infrastructure/catalog"
	"github.com/famvest-inc/famvest/internal/infrastructure/config"
	"github.com/famvest-inc/famvest/internal/infrastructure/repository"
	"github.com/famvest-inc/famvest/internal/infrastructure/sessionstore"
	httpRouter "github.com/famvest-inc/famvest/internal/interfaces/http"
	"github.com/famvest-inc/famvest/internal/interfaces/http/handlers"
	"github.com/famvest-inc/famvest/internal/shared/biztime"
	"github.com/famvest-inc/famvest/internal/shared/goroutine"
	"github.com/famvest-inc/famvest/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the famvest HTTP server with the configured session store and payment processor.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "default", "environment (default, debug, release)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	biztime.MustInit(cfg.Server.Timezone)

	if err := logger.Init(logger.Options{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		OutputPath: cfg.Logger.OutputPath,
	}); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	kv, cleanup, err := buildSessionStore(cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	recordStore := repository.NewPaymentRecordStore(kv)
	intentStore := repository.NewIntentStore(kv)

	if !cfg.FamPay.TestMode {
		log.Warnw("live FamPay integration is not configured, falling back to the sandbox simulator")
	}
	processor := processorgw.NewSimulated(cfg.FamPay.BaseURL, cfg.FamPay.SettlementDelay())

	gw := gateway.New(gateway.Config{
		APIKey:   cfg.FamPay.APIKey,
		BaseURL:  cfg.FamPay.BaseURL,
		TestMode: cfg.FamPay.TestMode,
	}, recordStore, processor, log)

	instruments, err := catalog.NewStatic()
	if err != nil {
		return fmt.Errorf("failed to load instrument catalog: %w", err)
	}

	purchaseUC := purchaseUsecases.NewPurchaseStockUseCase(instruments, gw, intentStore, purchaseUsecases.Config{
		SettlementWait: cfg.FamPay.SettlementDelay(),
		VerifyTimeout:  cfg.FamPay.VerifyTimeout(),
	}, log)
	reconcileUC := purchaseUsecases.NewReconcilePurchaseUseCase(gw, intentStore, log)

	router := httpRouter.NewRouter(cfg.Server.Mode, httpRouter.Handlers{
		Payment:  handlers.NewPaymentHandler(gw, log),
		Purchase: handlers.NewPurchaseHandler(purchaseUC, reconcileUC, log),
		Stock:    handlers.NewStockHandler(instruments, log),
	}, log)

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	goroutine.SafeGo(log, "http-server", func() {
		log.Infow("server listening", "addr", srv.Addr, "mode", cfg.Server.Mode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		log.Infow("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}

	log.Infow("server stopped")
	return nil
}

func buildSessionStore(cfg *config.Config, log logger.Interface) (sessionstore.KV, func(), error) {
	switch cfg.Session.Backend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			return nil, nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.Addr(), err)
		}
		log.Infow("session store ready", "backend", "redis", "addr", cfg.Redis.Addr())
		return sessionstore.NewRedis(client, cfg.Session.TTL()), func() { _ = client.Close() }, nil
	default:
		log.Infow("session store ready", "backend", "memory", "ttl", cfg.Session.TTL().String())
		store := sessionstore.NewMemory(cfg.Session.TTL(), log)
		return store, store.Close, nil
	}
}
