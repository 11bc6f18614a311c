package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"finanzas/internal/config"
	"finanzas/internal/events"
	apphttp "finanzas/internal/http"
	applog "finanzas/internal/log"
	"finanzas/internal/services"
	"finanzas/internal/storage"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := applog.New(applog.DefaultConfig())
	applog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", applog.FieldError, err)
		os.Exit(1)
	}

	repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
	if err != nil {
		logger.Error("Failed to initialize SQLite repository", applog.FieldError, err, "path", cfg.SQLiteDBPath)
		os.Exit(1)
	}
	defer repo.Close()

	// Event wiring. With an AMQP URL, events flow through the broker so cache
	// invalidation reaches every replica and the export worker; without one,
	// an in-process dispatcher covers the single-instance deployment.
	var (
		publisher  events.Publisher
		dispatcher *events.Dispatcher
		amqpClient *events.AMQPClient
	)
	if cfg.AMQPURL != "" {
		// Empty queue name: each replica gets its own private queue off the
		// fanout exchange, so invalidation never competes with the export
		// worker's durable queue for deliveries.
		amqpClient, err = events.NewAMQPClient(cfg.AMQPURL, cfg.AMQPExchange, "")
		if err != nil {
			logger.Error("Failed to initialize AMQP client", applog.FieldError, err)
			os.Exit(1)
		}
		defer amqpClient.Close()
		publisher = amqpClient
		logger.Info("Using AMQP event transport", "exchange", cfg.AMQPExchange)
	} else {
		dispatcher = events.NewDispatcher()
		publisher = dispatcher
		logger.Info("Using in-process event dispatch")
	}

	transactionService := services.NewTransactionService(repo, publisher)
	categoryService := services.NewCategoryService(repo)

	srv := apphttp.NewServer(":"+cfg.Port, transactionService, categoryService, repo, apphttp.Options{
		CacheSize:      cfg.CacheSize,
		CacheTTL:       cfg.CacheTTL,
		WriteRateLimit: cfg.WriteRateLimit,
	})
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16

	if dispatcher != nil {
		dispatcher.Subscribe(srv.HandleTransactionEvent)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting finanzas server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if amqpClient != nil {
		g.Go(func() error {
			err := amqpClient.ConsumeTransactionEvents(ctx, func(e *events.TransactionEvent) error {
				return srv.HandleTransactionEvent(ctx, *e)
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		})
	}

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", applog.FieldError, err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", applog.FieldError, err)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}
