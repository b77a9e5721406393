// Package query implements the three analytical queries. Each is a
// pure function of a dataset snapshot and its parameters; no state is
// shared between calls and results are recomputed every time.
package query

import (
	"vendite/internal/core"
	"vendite/internal/datasource"
)

// PurchaseFrequency buckets quantity-weighted purchase counts into the
// fixed price bands, optionally restricted to an inclusive date range.
// The result always has exactly one bucket per band, in band order,
// with zero-count bands present. A purchase referencing an unknown
// product aborts the whole query; partial totals are never reported.
func PurchaseFrequency(snap datasource.Snapshot, rng *core.DateRange) ([]core.FrequencyBucket, error) {
	products := productIndex(snap.Products)

	buckets := make([]core.FrequencyBucket, len(core.PriceBands))
	for i, b := range core.PriceBands {
		buckets[i] = core.FrequencyBucket{Range: b.Label}
	}

	for _, pur := range snap.Purchases {
		if !rng.Contains(pur.Date) {
			continue
		}
		prod, ok := products[pur.ProductID]
		if !ok {
			return nil, &core.IntegrityError{Entity: "product", ID: pur.ProductID}
		}
		idx, ok := core.ClassifyPrice(prod.Price)
		if !ok {
			// Negative price, which the data model forbids.
			return nil, &core.IntegrityError{Entity: "product", ID: prod.ID}
		}
		buckets[idx].Count += pur.Quantity
	}

	return buckets, nil
}

func productIndex(products []core.Product) map[string]core.Product {
	idx := make(map[string]core.Product, len(products))
	for _, p := range products {
		idx[p.ID] = p
	}
	return idx
}
