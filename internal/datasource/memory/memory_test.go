package memory

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"vendite/internal/core"
)

const sampleDataset = `{
  "customers": [{"id": "1", "name": "김철수"}],
  "products": [{"id": "101", "name": "가죽 지갑", "price": 20000, "thumbnail": "/img/101.jpg"}],
  "purchases": [{"id": "1001", "customerId": "1", "productId": "101", "quantity": 2, "date": "2024-07-01"}]
}`

func writeSeed(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "seed.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write seed file: %v", err)
	}
	return path
}

func TestNewFromFile(t *testing.T) {
	path := writeSeed(t, t.TempDir(), sampleDataset)

	store, err := NewFromFile(path)
	if err != nil {
		t.Fatalf("NewFromFile() = %v", err)
	}

	ctx := context.Background()

	customers, err := store.Customers(ctx)
	if err != nil {
		t.Fatalf("Customers() = %v", err)
	}
	if len(customers) != 1 || customers[0].Name != "김철수" {
		t.Errorf("customers = %+v", customers)
	}

	purchases, err := store.Purchases(ctx)
	if err != nil {
		t.Fatalf("Purchases() = %v", err)
	}
	if len(purchases) != 1 {
		t.Fatalf("purchases = %+v", purchases)
	}
	if !purchases[0].Date.Equal(core.NewDate(2024, 7, 1).Time) {
		t.Errorf("purchase date = %s, want 2024-07-01", purchases[0].Date)
	}
	if purchases[0].Quantity != 2 {
		t.Errorf("purchase quantity = %d, want 2", purchases[0].Quantity)
	}
}

func TestNewFromFile_RejectsInvalidDataset(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "not json",
			content: "customers: []",
		},
		{
			name:    "zero quantity purchase",
			content: `{"customers":[{"id":"1","name":"김철수"}],"products":[{"id":"101","name":"지갑","price":1}],"purchases":[{"id":"1001","customerId":"1","productId":"101","quantity":0,"date":"2024-07-01"}]}`,
		},
		{
			name:    "negative price product",
			content: `{"customers":[],"products":[{"id":"101","name":"지갑","price":-5}],"purchases":[]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSeed(t, t.TempDir(), tt.content)
			if _, err := NewFromFile(path); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestNewFromDir_FallsBackWithoutSeedFile(t *testing.T) {
	store, err := NewFromDir(t.TempDir())
	if err != nil {
		t.Fatalf("NewFromDir() = %v", err)
	}

	customers, err := store.Customers(context.Background())
	if err != nil {
		t.Fatalf("Customers() = %v", err)
	}
	if len(customers) == 0 {
		t.Error("fallback dataset should not be empty")
	}
}

func TestStore_ReturnsCopies(t *testing.T) {
	store := New(fallbackDataset())
	ctx := context.Background()

	first, err := store.Customers(ctx)
	if err != nil {
		t.Fatalf("Customers() = %v", err)
	}
	first[0].Name = "mutated"

	second, err := store.Customers(ctx)
	if err != nil {
		t.Fatalf("Customers() = %v", err)
	}
	if second[0].Name == "mutated" {
		t.Error("callers must not be able to mutate the store through returned slices")
	}
}
