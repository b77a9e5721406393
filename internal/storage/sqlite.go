// Package storage provides the relational data source backends. The
// sqlite repository follows the embedded, zero-setup path; the
// postgres repository serves shared deployments.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"vendite/internal/core"
	"vendite/internal/datasource"
)

type SQLiteRepository struct {
	db *sql.DB
}

var _ datasource.Source = (*SQLiteRepository)(nil)

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runSQLiteMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Customers implements datasource.Source
func (r *SQLiteRepository) Customers(ctx context.Context) ([]core.Customer, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM customers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select customers: %w", err)
	}
	defer rows.Close()

	var out []core.Customer
	for rows.Next() {
		var c core.Customer
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Products implements datasource.Source
func (r *SQLiteRepository) Products(ctx context.Context) ([]core.Product, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, price, thumbnail FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}
	defer rows.Close()

	var out []core.Product
	for rows.Next() {
		var p core.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Thumbnail); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Purchases implements datasource.Source
func (r *SQLiteRepository) Purchases(ctx context.Context) ([]core.Purchase, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, customer_id, product_id, quantity, purchase_date FROM purchases ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select purchases: %w", err)
	}
	defer rows.Close()

	var out []core.Purchase
	for rows.Next() {
		var (
			p       core.Purchase
			rawDate string
		)
		if err := rows.Scan(&p.ID, &p.CustomerID, &p.ProductID, &p.Quantity, &rawDate); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		p.Date, err = core.ParseDate(rawDate)
		if err != nil {
			return nil, fmt.Errorf("parse purchase date %q: %w", rawDate, err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Reset clears all three tables, used before reseeding.
func (r *SQLiteRepository) Reset(ctx context.Context) error {
	for _, table := range []string{"purchases", "products", "customers"} {
		if _, err := r.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}

func (r *SQLiteRepository) InsertCustomer(ctx context.Context, c core.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO customers (id, name) VALUES (?, ?)`, c.ID, c.Name)
	if err != nil {
		return fmt.Errorf("insert customer %s: %w", c.ID, err)
	}
	return nil
}

func (r *SQLiteRepository) InsertProduct(ctx context.Context, p core.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO products (id, name, price, thumbnail) VALUES (?, ?, ?, ?)`,
		p.ID, p.Name, p.Price, p.Thumbnail)
	if err != nil {
		return fmt.Errorf("insert product %s: %w", p.ID, err)
	}
	return nil
}

func (r *SQLiteRepository) InsertPurchase(ctx context.Context, p core.Purchase) error {
	if err := p.Validate(); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO purchases (id, customer_id, product_id, quantity, purchase_date) VALUES (?, ?, ?, ?, ?)`,
		p.ID, p.CustomerID, p.ProductID, p.Quantity, p.Date.String())
	if err != nil {
		return fmt.Errorf("insert purchase %s: %w", p.ID, err)
	}
	return nil
}
