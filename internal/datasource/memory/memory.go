// Package memory provides an in-memory data source seeded from a JSON
// dataset file, used for local development and tests.
package memory

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	jsoniter "github.com/json-iterator/go"

	"vendite/internal/core"
	"vendite/internal/datasource"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Dataset is the JSON shape of a seed file.
type Dataset struct {
	Customers []core.Customer `json:"customers"`
	Products  []core.Product  `json:"products"`
	Purchases []core.Purchase `json:"purchases"`
}

// Validate checks every record in the dataset.
func (d Dataset) Validate() error {
	for _, c := range d.Customers {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("customer %q: %w", c.ID, err)
		}
	}
	for _, p := range d.Products {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("product %q: %w", p.ID, err)
		}
	}
	for _, p := range d.Purchases {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("purchase %q: %w", p.ID, err)
		}
	}
	return nil
}

type Store struct {
	mu        sync.Mutex
	customers []core.Customer
	products  []core.Product
	purchases []core.Purchase
}

var _ datasource.Source = (*Store)(nil)

// New creates a store holding the given dataset.
func New(d Dataset) *Store {
	return &Store{
		customers: append([]core.Customer(nil), d.Customers...),
		products:  append([]core.Product(nil), d.Products...),
		purchases: append([]core.Purchase(nil), d.Purchases...),
	}
}

// LoadDataset reads and validates a JSON dataset file.
func LoadDataset(path string) (Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("read dataset file: %w", err)
	}
	var d Dataset
	if err := json.Unmarshal(raw, &d); err != nil {
		return Dataset{}, fmt.Errorf("decode dataset file %s: %w", path, err)
	}
	if err := d.Validate(); err != nil {
		return Dataset{}, fmt.Errorf("validate dataset file %s: %w", path, err)
	}
	return d, nil
}

// NewFromFile loads a dataset from a JSON file.
func NewFromFile(path string) (*Store, error) {
	d, err := LoadDataset(path)
	if err != nil {
		return nil, err
	}
	return New(d), nil
}

// NewFromDir loads seed.json from the given directory, falling back to
// a small built-in dataset when the file is absent.
func NewFromDir(dir string) (*Store, error) {
	path := filepath.Join(dir, "seed.json")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return New(fallbackDataset()), nil
	}
	return NewFromFile(path)
}

// Customers implements datasource.Source.
func (s *Store) Customers(_ context.Context) ([]core.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Customer(nil), s.customers...), nil
}

// Products implements datasource.Source.
func (s *Store) Products(_ context.Context) ([]core.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Product(nil), s.products...), nil
}

// Purchases implements datasource.Source.
func (s *Store) Purchases(_ context.Context) ([]core.Purchase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Purchase(nil), s.purchases...), nil
}

// Replace swaps the whole dataset, used by tests.
func (s *Store) Replace(d Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers = append([]core.Customer(nil), d.Customers...)
	s.products = append([]core.Product(nil), d.Products...)
	s.purchases = append([]core.Purchase(nil), d.Purchases...)
}

func fallbackDataset() Dataset {
	return Dataset{
		Customers: []core.Customer{
			{ID: "c1", Name: "김철수"},
			{ID: "c2", Name: "이영희"},
		},
		Products: []core.Product{
			{ID: "p1", Name: "운동화", Price: 20000, Thumbnail: "/img/p1.jpg"},
			{ID: "p2", Name: "백팩", Price: 55000, Thumbnail: "/img/p2.jpg"},
		},
		Purchases: []core.Purchase{
			{ID: "o1", CustomerID: "c1", ProductID: "p1", Quantity: 1, Date: core.NewDate(2024, 7, 1)},
			{ID: "o2", CustomerID: "c2", ProductID: "p2", Quantity: 2, Date: core.NewDate(2024, 7, 2)},
		},
	}
}
