// Command vendite-seed loads a JSON dataset into a sqlite or postgres
// backend and announces the refresh over AMQP when configured.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/schollz/progressbar/v3"

	"vendite/internal/amqp"
	"vendite/internal/config"
	"vendite/internal/core"
	"vendite/internal/datasource/memory"
	"vendite/internal/log"
	"vendite/internal/storage"
)

// seedTarget is the write side of a storage repository.
type seedTarget interface {
	Reset(ctx context.Context) error
	InsertCustomer(ctx context.Context, c core.Customer) error
	InsertProduct(ctx context.Context, p core.Product) error
	InsertPurchase(ctx context.Context, p core.Purchase) error
	Close() error
}

func main() {
	_ = godotenv.Load()

	logger := log.New(log.Config{Component: log.ComponentSeed})
	log.SetDefault(logger)

	cfg := config.Load()

	file := flag.String("file", "./data/seed.json", "Path to the JSON dataset file")
	backendName := flag.String("backend", cfg.DataBackend, "Target backend: sqlite or postgres")
	flag.Parse()

	dataset, err := memory.LoadDataset(*file)
	if err != nil {
		logger.Error("Failed to load dataset", "error", err, "file", *file)
		os.Exit(1)
	}

	var target seedTarget
	switch *backendName {
	case "sqlite":
		target, err = storage.NewSQLiteRepository(cfg.SQLiteDBPath)
	case "postgres":
		target, err = storage.NewPostgresRepository(cfg.PostgresDSN)
	default:
		logger.Error("Seeding requires a sqlite or postgres backend", "backend", *backendName)
		os.Exit(1)
	}
	if err != nil {
		logger.Error("Failed to initialize backend", "error", err, "backend", *backendName)
		os.Exit(1)
	}
	defer target.Close()

	ctx := context.Background()

	if err := target.Reset(ctx); err != nil {
		logger.Error("Failed to clear existing data", "error", err)
		os.Exit(1)
	}

	total := len(dataset.Customers) + len(dataset.Products) + len(dataset.Purchases)
	bar := progressbar.Default(int64(total), "seeding")

	for _, c := range dataset.Customers {
		if err := target.InsertCustomer(ctx, c); err != nil {
			logger.Error("Failed to insert customer", "error", err, "customer_id", c.ID)
			os.Exit(1)
		}
		_ = bar.Add(1)
	}
	for _, p := range dataset.Products {
		if err := target.InsertProduct(ctx, p); err != nil {
			logger.Error("Failed to insert product", "error", err, "product_id", p.ID)
			os.Exit(1)
		}
		_ = bar.Add(1)
	}
	for _, p := range dataset.Purchases {
		if err := target.InsertPurchase(ctx, p); err != nil {
			logger.Error("Failed to insert purchase", "error", err, "purchase_id", p.ID)
			os.Exit(1)
		}
		_ = bar.Add(1)
	}

	logger.Info("Dataset seeded",
		"backend", *backendName,
		"customers", len(dataset.Customers),
		"products", len(dataset.Products),
		"purchases", len(dataset.Purchases))

	// Tell running servers to drop their cached snapshots.
	if cfg.AMQPURL != "" {
		client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Warn("Failed to initialize AMQP client, servers will refresh on TTL", "error", err)
			return
		}
		defer client.Close()

		if err := client.PublishDatasetRefresh(ctx, *backendName, int64(total)); err != nil {
			logger.Warn("Failed to publish refresh message", "error", err)
		}
	}
}
