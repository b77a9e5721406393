package query

import (
	"sort"

	"vendite/internal/core"
	"vendite/internal/datasource"
)

// CustomerPurchaseDetails lists one customer's purchases enriched with
// the joined product fields. An unknown customer id is a not-found
// failure, distinct from a known customer with zero purchases, which
// returns an empty slice. A purchase whose product cannot be resolved
// aborts the query, same integrity policy as the frequency query.
// Results are ordered by purchase date ascending, ties broken by
// purchase id, so output is stable regardless of source ordering.
func CustomerPurchaseDetails(snap datasource.Snapshot, customerID string) ([]core.PurchaseDetail, error) {
	found := false
	for _, c := range snap.Customers {
		if c.ID == customerID {
			found = true
			break
		}
	}
	if !found {
		return nil, &core.NotFoundError{Entity: "customer", ID: customerID}
	}

	products := productIndex(snap.Products)

	out := make([]core.PurchaseDetail, 0)
	for _, pur := range snap.Purchases {
		if pur.CustomerID != customerID {
			continue
		}
		prod, ok := products[pur.ProductID]
		if !ok {
			return nil, &core.IntegrityError{Entity: "product", ID: pur.ProductID}
		}
		out = append(out, core.PurchaseDetail{
			ID:           pur.ID,
			CustomerID:   pur.CustomerID,
			ProductID:    prod.ID,
			ProductName:  prod.Name,
			Price:        prod.Price,
			PurchaseDate: pur.Date,
			Thumbnail:    prod.Thumbnail,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].PurchaseDate.Equal(out[j].PurchaseDate.Time) {
			return out[i].PurchaseDate.Before(out[j].PurchaseDate.Time)
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}
