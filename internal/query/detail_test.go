package query

import (
	"errors"
	"testing"

	"vendite/internal/core"
)

func TestCustomerPurchaseDetails_EnrichedAndOrdered(t *testing.T) {
	details, err := CustomerPurchaseDetails(testSnapshot(), "1")
	if err != nil {
		t.Fatalf("CustomerPurchaseDetails() = %v", err)
	}

	want := []core.PurchaseDetail{
		{
			ID:           "1001",
			CustomerID:   "1",
			ProductID:    "101",
			ProductName:  "가죽 지갑",
			Price:        20000,
			PurchaseDate: core.NewDate(2024, 7, 1),
			Thumbnail:    "/img/101.jpg",
		},
		{
			ID:           "1002",
			CustomerID:   "1",
			ProductID:    "102",
			ProductName:  "블루투스 스피커",
			Price:        25000,
			PurchaseDate: core.NewDate(2024, 7, 10),
			Thumbnail:    "/img/102.jpg",
		},
	}

	if len(details) != len(want) {
		t.Fatalf("got %d details, want %d", len(details), len(want))
	}
	for i := range want {
		if details[i] != want[i] {
			t.Errorf("detail %d = %+v, want %+v", i, details[i], want[i])
		}
	}
}

func TestCustomerPurchaseDetails_StableOrderRegardlessOfSource(t *testing.T) {
	snap := testSnapshot()
	// Same day purchases in scrambled source order.
	snap.Purchases = []core.Purchase{
		{ID: "9003", CustomerID: "1", ProductID: "101", Quantity: 1, Date: core.NewDate(2024, 7, 5)},
		{ID: "9001", CustomerID: "1", ProductID: "102", Quantity: 1, Date: core.NewDate(2024, 7, 5)},
		{ID: "9002", CustomerID: "1", ProductID: "103", Quantity: 1, Date: core.NewDate(2024, 7, 4)},
	}

	details, err := CustomerPurchaseDetails(snap, "1")
	if err != nil {
		t.Fatalf("CustomerPurchaseDetails() = %v", err)
	}

	wantIDs := []string{"9002", "9001", "9003"}
	for i, id := range wantIDs {
		if details[i].ID != id {
			t.Errorf("position %d: got %s, want %s", i, details[i].ID, id)
		}
	}
}

func TestCustomerPurchaseDetails_ZeroPurchasesIsEmptyNotError(t *testing.T) {
	details, err := CustomerPurchaseDetails(testSnapshot(), "3")
	if err != nil {
		t.Fatalf("CustomerPurchaseDetails() = %v", err)
	}
	if len(details) != 0 {
		t.Errorf("got %d details, want 0", len(details))
	}
	if details == nil {
		t.Error("empty result should be a non-nil slice so it encodes as []")
	}
}

func TestCustomerPurchaseDetails_UnknownCustomer(t *testing.T) {
	_, err := CustomerPurchaseDetails(testSnapshot(), "404")
	if err == nil {
		t.Fatal("expected not-found error")
	}

	var notFoundErr *core.NotFoundError
	if !errors.As(err, &notFoundErr) {
		t.Fatalf("error type = %T, want *NotFoundError", err)
	}
	if notFoundErr.ID != "404" {
		t.Errorf("error reports id %q, want %q", notFoundErr.ID, "404")
	}
}

func TestCustomerPurchaseDetails_MissingProductAborts(t *testing.T) {
	snap := testSnapshot()
	snap.Purchases = append(snap.Purchases, core.Purchase{
		ID: "1099", CustomerID: "1", ProductID: "999", Quantity: 1, Date: core.NewDate(2024, 7, 2),
	})

	details, err := CustomerPurchaseDetails(snap, "1")
	if err == nil {
		t.Fatal("expected integrity error, got nil")
	}
	if details != nil {
		t.Error("partial details must not be returned")
	}

	var integrityErr *core.IntegrityError
	if !errors.As(err, &integrityErr) {
		t.Fatalf("error type = %T, want *IntegrityError", err)
	}
}
