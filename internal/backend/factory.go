// Package backend selects and constructs the configured data source.
package backend

import (
	"context"
	"fmt"
	"log/slog"

	"vendite/internal/config"
	"vendite/internal/datasource"
	"vendite/internal/datasource/memory"
	"vendite/internal/datasource/sheets"
	"vendite/internal/storage"
)

// Type represents the kind of data backend
type Type string

const (
	MemoryBackend   Type = "memory"
	SQLiteBackend   Type = "sqlite"
	PostgresBackend Type = "postgres"
	SheetsBackend   Type = "sheets"
)

func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is valid
func (t Type) IsValid() bool {
	switch t {
	case MemoryBackend, SQLiteBackend, PostgresBackend, SheetsBackend:
		return true
	default:
		return false
	}
}

// CleanupFunc releases backend resources
type CleanupFunc func() error

// Result contains the source instance and optional cleanup function
type Result struct {
	Source  datasource.Source
	Cleanup CleanupFunc
}

// Factory creates data sources based on configuration
type Factory struct {
	logger *slog.Logger
}

func NewFactory(logger *slog.Logger) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{logger: logger}
}

// Create builds the data source named by cfg.DataBackend.
func (f *Factory) Create(ctx context.Context, cfg *config.Config) (*Result, error) {
	t := Type(cfg.DataBackend)
	if !t.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", cfg.DataBackend)
	}

	switch t {
	case SQLiteBackend:
		repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite repository: %w", err)
		}
		f.logger.Info("Initialized SQLite backend", "db_path", cfg.SQLiteDBPath)
		return &Result{Source: repo, Cleanup: repo.Close}, nil

	case PostgresBackend:
		repo, err := storage.NewPostgresRepository(cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("initialize postgres repository: %w", err)
		}
		f.logger.Info("Initialized Postgres backend")
		return &Result{Source: repo, Cleanup: repo.Close}, nil

	case SheetsBackend:
		cli, err := sheets.New(ctx, sheets.Config{
			SpreadsheetID:  cfg.GoogleSpreadsheetID,
			CustomersSheet: cfg.GoogleCustomersSheet,
			ProductsSheet:  cfg.GoogleProductsSheet,
			PurchasesSheet: cfg.GooglePurchasesSheet,
		})
		if err != nil {
			return nil, fmt.Errorf("initialize sheets client: %w", err)
		}
		f.logger.Info("Initialized Google Sheets backend", "spreadsheet_id", cfg.GoogleSpreadsheetID)
		return &Result{Source: cli}, nil

	default:
		store, err := memory.NewFromDir(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("initialize memory store: %w", err)
		}
		f.logger.Info("Initialized memory backend", "data_dir", cfg.DataDir)
		return &Result{Source: store}, nil
	}
}
