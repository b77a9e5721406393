package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// HTTP Server
	Port string

	// Backend selection: memory, sqlite, postgres, sheets
	DataBackend string

	// Memory backend
	DataDir string

	// SQLite
	SQLiteDBPath string

	// Postgres
	PostgresDSN string

	// AMQP (optional; empty URL disables refresh messaging)
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Snapshot caching of the raw collections
	SnapshotTTL time.Duration

	// Google Sheets
	GoogleSpreadsheetID  string
	GoogleCustomersSheet string
	GoogleProductsSheet  string
	GooglePurchasesSheet string
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "4000"),
		DataBackend: getEnv("DATA_BACKEND", "memory"),
		DataDir:     getEnv("DATA_DIR", "./data"),

		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/vendite.db"),
		PostgresDSN:  getEnv("POSTGRES_DSN", ""),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "vendite"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "dataset_refresh"),

		SnapshotTTL: getEnvDuration("SNAPSHOT_TTL", time.Minute),

		GoogleSpreadsheetID:  getEnv("GOOGLE_SPREADSHEET_ID", ""),
		GoogleCustomersSheet: getEnv("GOOGLE_CUSTOMERS_SHEET", "customers"),
		GoogleProductsSheet:  getEnv("GOOGLE_PRODUCTS_SHEET", "products"),
		GooglePurchasesSheet: getEnv("GOOGLE_PURCHASES_SHEET", "purchases"),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.DataBackend {
	case "memory", "sqlite", "postgres", "sheets":
	default:
		errs = append(errs, fmt.Sprintf("invalid data backend '%s': must be one of [memory sqlite postgres sheets]", c.DataBackend))
	}

	if c.DataBackend == "sqlite" && c.SQLiteDBPath == "" {
		errs = append(errs, "SQLite database path cannot be empty when using sqlite backend")
	}
	if c.DataBackend == "postgres" && c.PostgresDSN == "" {
		errs = append(errs, "POSTGRES_DSN cannot be empty when using postgres backend")
	}
	if c.DataBackend == "sheets" && c.GoogleSpreadsheetID == "" {
		errs = append(errs, "GOOGLE_SPREADSHEET_ID cannot be empty when using sheets backend")
	}

	if c.SnapshotTTL < 0 {
		errs = append(errs, fmt.Sprintf("invalid snapshot TTL %s: must not be negative", c.SnapshotTTL))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
