// Package sheets provides a read-only data source backed by a Google
// spreadsheet with one tab per collection.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	"vendite/internal/core"
	"vendite/internal/datasource"
)

type Client struct {
	svc            *gsheet.Service
	spreadsheetID  string
	customersSheet string
	productsSheet  string
	purchasesSheet string
}

var _ datasource.Source = (*Client)(nil)

// Config names the spreadsheet and its three tabs. Each tab carries a
// header row; data starts at row 2.
type Config struct {
	SpreadsheetID  string
	CustomersSheet string
	ProductsSheet  string
	PurchasesSheet string
}

// New creates a Sheets-backed source using service account credentials
// from GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or
// GOOGLE_APPLICATION_CREDENTIALS.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.SpreadsheetID) == "" {
		return nil, errors.New("missing spreadsheet id")
	}

	svc, err := newSheetsService(ctx)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	return &Client{
		svc:            svc,
		spreadsheetID:  cfg.SpreadsheetID,
		customersSheet: orDefault(cfg.CustomersSheet, "customers"),
		productsSheet:  orDefault(cfg.ProductsSheet, "products"),
		purchasesSheet: orDefault(cfg.PurchasesSheet, "purchases"),
	}, nil
}

func newSheetsService(ctx context.Context) (*gsheet.Service, error) {
	serviceAccountJSON := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	serviceAccountFile := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"))
	if serviceAccountJSON == "" && serviceAccountFile == "" {
		serviceAccountFile = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}

	var credentialsJSON []byte
	var err error
	switch {
	case serviceAccountJSON != "":
		credentialsJSON = []byte(serviceAccountJSON)
	case serviceAccountFile != "":
		credentialsJSON, err = os.ReadFile(serviceAccountFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS)")
	}

	service, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsReadonlyScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return service, nil
}

// Customers implements datasource.Source. Columns: id, name.
func (c *Client) Customers(ctx context.Context) ([]core.Customer, error) {
	rows, err := c.readRows(ctx, c.customersSheet, "A2:B")
	if err != nil {
		return nil, err
	}

	out := make([]core.Customer, 0, len(rows))
	for i, row := range rows {
		if len(row) < 2 {
			slog.WarnContext(ctx, "Skipping short customer row", "sheet", c.customersSheet, "row", i+2)
			continue
		}
		out = append(out, core.Customer{ID: cellString(row[0]), Name: cellString(row[1])})
	}
	return out, nil
}

// Products implements datasource.Source. Columns: id, name, price, thumbnail.
func (c *Client) Products(ctx context.Context) ([]core.Product, error) {
	rows, err := c.readRows(ctx, c.productsSheet, "A2:D")
	if err != nil {
		return nil, err
	}

	out := make([]core.Product, 0, len(rows))
	for i, row := range rows {
		if len(row) < 3 {
			slog.WarnContext(ctx, "Skipping short product row", "sheet", c.productsSheet, "row", i+2)
			continue
		}
		price, err := cellInt(row[2])
		if err != nil {
			return nil, fmt.Errorf("product row %d: parse price: %w", i+2, err)
		}
		p := core.Product{ID: cellString(row[0]), Name: cellString(row[1]), Price: price}
		if len(row) > 3 {
			p.Thumbnail = cellString(row[3])
		}
		out = append(out, p)
	}
	return out, nil
}

// Purchases implements datasource.Source. Columns: id, customer id,
// product id, quantity, date.
func (c *Client) Purchases(ctx context.Context) ([]core.Purchase, error) {
	rows, err := c.readRows(ctx, c.purchasesSheet, "A2:E")
	if err != nil {
		return nil, err
	}

	out := make([]core.Purchase, 0, len(rows))
	for i, row := range rows {
		if len(row) < 5 {
			slog.WarnContext(ctx, "Skipping short purchase row", "sheet", c.purchasesSheet, "row", i+2)
			continue
		}
		qty, err := cellInt(row[3])
		if err != nil {
			return nil, fmt.Errorf("purchase row %d: parse quantity: %w", i+2, err)
		}
		date, err := core.ParseDate(cellString(row[4]))
		if err != nil {
			return nil, fmt.Errorf("purchase row %d: parse date: %w", i+2, err)
		}
		out = append(out, core.Purchase{
			ID:         cellString(row[0]),
			CustomerID: cellString(row[1]),
			ProductID:  cellString(row[2]),
			Quantity:   qty,
			Date:       date,
		})
	}
	return out, nil
}

func (c *Client) readRows(ctx context.Context, sheet, span string) ([][]interface{}, error) {
	rng := fmt.Sprintf("%s!%s", sheet, span)
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read range %s: %w", rng, err)
	}
	return resp.Values, nil
}

func cellString(v interface{}) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

func cellInt(v interface{}) (int64, error) {
	switch t := v.(type) {
	case string:
		return strconv.ParseInt(strings.TrimSpace(t), 10, 64)
	case float64:
		return int64(t), nil
	default:
		return 0, fmt.Errorf("unexpected cell type %T", v)
	}
}

func orDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
