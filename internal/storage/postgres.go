package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"vendite/internal/core"
	"vendite/internal/datasource"
)

var pg = goqu.Dialect("postgres")

type PostgresRepository struct {
	db *sqlx.DB
}

var _ datasource.Source = (*PostgresRepository)(nil)

func NewPostgresRepository(dsn string) (*PostgresRepository, error) {
	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	if err := runPostgresMigrations(db.DB); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// purchaseRow separates scanning from the domain type because the DATE
// column needs a plain time.Time target.
type purchaseRow struct {
	ID         string    `db:"id"`
	CustomerID string    `db:"customer_id"`
	ProductID  string    `db:"product_id"`
	Quantity   int64     `db:"quantity"`
	Date       time.Time `db:"purchase_date"`
}

// Customers implements datasource.Source
func (r *PostgresRepository) Customers(ctx context.Context) ([]core.Customer, error) {
	q, _, err := pg.From("customers").Select("id", "name").Order(goqu.I("id").Asc()).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build customers query: %w", err)
	}

	var out []core.Customer
	if err := r.db.SelectContext(ctx, &out, q); err != nil {
		return nil, fmt.Errorf("select customers: %w", err)
	}
	return out, nil
}

// Products implements datasource.Source
func (r *PostgresRepository) Products(ctx context.Context) ([]core.Product, error) {
	q, _, err := pg.From("products").Select("id", "name", "price", "thumbnail").Order(goqu.I("id").Asc()).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build products query: %w", err)
	}

	var out []core.Product
	if err := r.db.SelectContext(ctx, &out, q); err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}
	return out, nil
}

// Purchases implements datasource.Source
func (r *PostgresRepository) Purchases(ctx context.Context) ([]core.Purchase, error) {
	q, _, err := pg.From("purchases").
		Select("id", "customer_id", "product_id", "quantity", "purchase_date").
		Order(goqu.I("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build purchases query: %w", err)
	}

	var rows []purchaseRow
	if err := r.db.SelectContext(ctx, &rows, q); err != nil {
		return nil, fmt.Errorf("select purchases: %w", err)
	}

	out := make([]core.Purchase, 0, len(rows))
	for _, row := range rows {
		out = append(out, core.Purchase{
			ID:         row.ID,
			CustomerID: row.CustomerID,
			ProductID:  row.ProductID,
			Quantity:   row.Quantity,
			Date:       core.Date{Time: row.Date},
		})
	}
	return out, nil
}

// Reset clears all three tables, used before reseeding.
func (r *PostgresRepository) Reset(ctx context.Context) error {
	for _, table := range []string{"purchases", "products", "customers"} {
		q, _, err := pg.Delete(table).ToSQL()
		if err != nil {
			return fmt.Errorf("build delete for %s: %w", table, err)
		}
		if _, err := r.db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}

func (r *PostgresRepository) InsertCustomer(ctx context.Context, c core.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}
	q, args, err := pg.Insert("customers").
		Cols("id", "name").
		Vals(goqu.Vals{c.ID, c.Name}).
		Prepared(true).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert customer: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		return fmt.Errorf("insert customer %s: %w", c.ID, err)
	}
	return nil
}

func (r *PostgresRepository) InsertProduct(ctx context.Context, p core.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}
	q, args, err := pg.Insert("products").
		Cols("id", "name", "price", "thumbnail").
		Vals(goqu.Vals{p.ID, p.Name, p.Price, p.Thumbnail}).
		Prepared(true).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert product: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		return fmt.Errorf("insert product %s: %w", p.ID, err)
	}
	return nil
}

func (r *PostgresRepository) InsertPurchase(ctx context.Context, p core.Purchase) error {
	if err := p.Validate(); err != nil {
		return err
	}
	q, args, err := pg.Insert("purchases").
		Cols("id", "customer_id", "product_id", "quantity", "purchase_date").
		Vals(goqu.Vals{p.ID, p.CustomerID, p.ProductID, p.Quantity, p.Date.Time}).
		Prepared(true).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert purchase: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		return fmt.Errorf("insert purchase %s: %w", p.ID, err)
	}
	return nil
}
