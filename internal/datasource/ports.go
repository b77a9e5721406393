// Package datasource defines the read contract every data backend
// implements and the snapshot the query layer computes over.
package datasource

import (
	"context"

	"golang.org/x/sync/errgroup"

	"vendite/internal/core"
)

// Source supplies the three raw entity collections. Implementations
// must return defensive copies or otherwise guarantee the slices are
// not mutated after return.
type Source interface {
	Customers(ctx context.Context) ([]core.Customer, error)
	Products(ctx context.Context) ([]core.Product, error)
	Purchases(ctx context.Context) ([]core.Purchase, error)
}

// Snapshot holds the three collections retrieved together. Queries
// treat it as immutable.
type Snapshot struct {
	Customers []core.Customer
	Products  []core.Product
	Purchases []core.Purchase
}

// Fetch retrieves the three collections concurrently. This is the only
// blocking step in a query; everything downstream is in-memory.
func Fetch(ctx context.Context, src Source) (Snapshot, error) {
	var snap Snapshot
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		snap.Customers, err = src.Customers(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Products, err = src.Products(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Purchases, err = src.Purchases(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}
