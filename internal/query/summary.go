package query

import (
	"sort"
	"strings"

	"vendite/internal/core"
	"vendite/internal/datasource"
)

// Sort orders accepted by CustomerSummaries.
const (
	SortByID       = "id"   // ascending by customer id
	SortAmountAsc  = "asc"  // ascending by total amount
	SortAmountDesc = "desc" // descending by total amount
)

// CustomerSummaries aggregates purchase count and spend per customer,
// filters by name substring and sorts. TotalPurchases counts purchase
// records (one per record, not quantity-weighted) and TotalAmount adds
// the joined product price per record, unlike the quantity-weighted
// frequency buckets.
// Customers with no purchases are kept with zero totals. The name
// filter is a case-sensitive unanchored substring match.
func CustomerSummaries(snap datasource.Snapshot, sortBy, nameFilter string) ([]core.CustomerSummary, error) {
	switch sortBy {
	case "", SortByID, SortAmountAsc, SortAmountDesc:
	default:
		return nil, &core.ValidationError{Reason: "sortBy must be one of id, asc, desc"}
	}

	products := productIndex(snap.Products)

	known := make(map[string]bool, len(snap.Customers))
	for _, c := range snap.Customers {
		known[c.ID] = true
	}

	type totals struct {
		purchases int64
		amount    int64
	}
	acc := make(map[string]totals, len(snap.Customers))
	for _, pur := range snap.Purchases {
		if !known[pur.CustomerID] {
			return nil, &core.IntegrityError{Entity: "customer", ID: pur.CustomerID}
		}
		prod, ok := products[pur.ProductID]
		if !ok {
			return nil, &core.IntegrityError{Entity: "product", ID: pur.ProductID}
		}
		t := acc[pur.CustomerID]
		t.purchases++
		t.amount += prod.Price
		acc[pur.CustomerID] = t
	}

	out := make([]core.CustomerSummary, 0, len(snap.Customers))
	for _, c := range snap.Customers {
		if nameFilter != "" && !strings.Contains(c.Name, nameFilter) {
			continue
		}
		t := acc[c.ID]
		out = append(out, core.CustomerSummary{
			ID:             c.ID,
			Name:           c.Name,
			TotalPurchases: t.purchases,
			TotalAmount:    t.amount,
		})
	}

	switch sortBy {
	case SortAmountAsc:
		sort.Slice(out, func(i, j int) bool {
			if out[i].TotalAmount != out[j].TotalAmount {
				return out[i].TotalAmount < out[j].TotalAmount
			}
			return out[i].ID < out[j].ID
		})
	case SortAmountDesc:
		sort.Slice(out, func(i, j int) bool {
			if out[i].TotalAmount != out[j].TotalAmount {
				return out[i].TotalAmount > out[j].TotalAmount
			}
			return out[i].ID < out[j].ID
		})
	default:
		sort.Slice(out, func(i, j int) bool {
			return out[i].ID < out[j].ID
		})
	}

	return out, nil
}
