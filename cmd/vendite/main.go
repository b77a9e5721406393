package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"vendite/internal/amqp"
	"vendite/internal/backend"
	"vendite/internal/config"
	apphttp "vendite/internal/http"
	"vendite/internal/log"
	"vendite/internal/metrics"
	"vendite/internal/snapshot"
	"vendite/internal/worker"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := log.New(log.DefaultConfig())
	log.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	result, err := backend.NewFactory(logger.Logger).Create(ctx, cfg)
	if err != nil {
		logger.Error("Failed to initialize data backend", "error", err, "backend", cfg.DataBackend)
		os.Exit(1)
	}
	if result.Cleanup != nil {
		defer func() {
			if err := result.Cleanup(); err != nil {
				logger.Error("Backend cleanup failed", "error", err)
			}
		}()
	}

	reg := metrics.NewRegistry()

	provider := snapshot.NewProvider(result.Source, cfg.SnapshotTTL)
	provider.OnRefresh(reg.SnapshotRefreshes.Inc)

	// Optional AMQP refresh consumer: invalidates the snapshot as soon
	// as a reseed is announced instead of waiting out the TTL.
	if cfg.AMQPURL != "" {
		amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Warn("Failed to initialize AMQP client, continuing with TTL-only freshness", "error", err)
		} else {
			defer amqpClient.Close()
			refresher := worker.NewRefreshWorker(amqpClient, provider, reg.SnapshotInvalidations.Inc)
			go func() {
				if err := refresher.Run(ctx); err != nil {
					logger.Error("Refresh worker stopped", "error", err)
				}
			}()
			logger.Info("Started dataset refresh consumer",
				"exchange", cfg.AMQPExchange,
				"queue", cfg.AMQPQueue)
		}
	}

	srv := apphttp.NewServer(":"+cfg.Port, provider, result.Source, reg)
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		cancel()
	}()

	logger.Info("Starting vendite server",
		"port", cfg.Port,
		"backend", cfg.DataBackend,
		"snapshot_ttl", cfg.SnapshotTTL.String())
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}
