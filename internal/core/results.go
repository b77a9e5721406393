package core

// Derived query results. These are recomputed on every call and never
// cached or persisted; only the raw collections are ever held.

// FrequencyBucket is one price band with its quantity-weighted count.
type FrequencyBucket struct {
	Range string `json:"range"`
	Count int64  `json:"count"`
}

// CustomerSummary aggregates one customer's purchase activity.
// TotalPurchases counts purchase records; TotalAmount sums the joined
// product price per record.
type CustomerSummary struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	TotalPurchases int64  `json:"totalPurchases"`
	TotalAmount    int64  `json:"totalAmount"`
}

// PurchaseDetail is one purchase enriched with its product fields,
// ready for display.
type PurchaseDetail struct {
	ID           string `json:"id"`
	CustomerID   string `json:"customerId"`
	ProductID    string `json:"productId"`
	ProductName  string `json:"productName"`
	Price        int64  `json:"price"`
	PurchaseDate Date   `json:"purchaseDate"`
	Thumbnail    string `json:"thumbnail"`
}
