package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vendite/internal/core"
	"vendite/internal/datasource/memory"
	"vendite/internal/metrics"
	"vendite/internal/snapshot"
)

func testServer(t *testing.T, d memory.Dataset) *Server {
	t.Helper()
	store := memory.New(d)
	provider := snapshot.NewProvider(store, time.Minute)
	srv := NewServer(":0", provider, store, metrics.NewRegistry())
	t.Cleanup(func() {
		srv.rateLimiter.stop()
	})
	return srv
}

func testDataset() memory.Dataset {
	return memory.Dataset{
		Customers: []core.Customer{
			{ID: "1", Name: "김철수"},
			{ID: "2", Name: "이영희"},
		},
		Products: []core.Product{
			{ID: "101", Name: "가죽 지갑", Price: 20000, Thumbnail: "/img/101.jpg"},
			{ID: "102", Name: "블루투스 스피커", Price: 25000, Thumbnail: "/img/102.jpg"},
		},
		Purchases: []core.Purchase{
			{ID: "1001", CustomerID: "1", ProductID: "101", Quantity: 3, Date: core.NewDate(2024, 7, 1)},
			{ID: "1002", CustomerID: "1", ProductID: "102", Quantity: 2, Date: core.NewDate(2024, 7, 10)},
		},
	}
}

func doRequest(t *testing.T, srv *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	srv.Server.Handler.ServeHTTP(rec, req)
	return rec
}

func TestHandlePurchaseFrequency(t *testing.T) {
	srv := testServer(t, testDataset())

	rec := doRequest(t, srv, "/api/purchase-frequency")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var buckets []core.FrequencyBucket
	if err := json.Unmarshal(rec.Body.Bytes(), &buckets); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(buckets) != 10 {
		t.Fatalf("got %d buckets, want 10", len(buckets))
	}
	if buckets[0].Count != 3 || buckets[1].Count != 2 {
		t.Errorf("bucket counts = %d/%d, want 3/2", buckets[0].Count, buckets[1].Count)
	}
	if buckets[0].Range != "2만원 이하" {
		t.Errorf("first bucket label = %q", buckets[0].Range)
	}
}

func TestHandlePurchaseFrequency_Validation(t *testing.T) {
	srv := testServer(t, testDataset())

	tests := []struct {
		name   string
		target string
	}{
		{name: "only from", target: "/api/purchase-frequency?from=2024-07-01"},
		{name: "only to", target: "/api/purchase-frequency?to=2024-07-31"},
		{name: "bad format", target: "/api/purchase-frequency?from=07-01-2024&to=2024-07-31"},
		{name: "from after to", target: "/api/purchase-frequency?from=2024-08-01&to=2024-07-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, srv, tt.target)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}

			var resp struct {
				Error string `json:"error"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if resp.Error == "" {
				t.Error("error body should carry a reason")
			}
		})
	}
}

func TestHandlePurchaseFrequency_IntegrityFailure(t *testing.T) {
	d := testDataset()
	d.Purchases = append(d.Purchases, core.Purchase{
		ID: "1099", CustomerID: "1", ProductID: "999", Quantity: 1, Date: core.NewDate(2024, 7, 2),
	})
	srv := testServer(t, d)

	rec := doRequest(t, srv, "/api/purchase-frequency")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}

func TestHandleCustomerSummaries(t *testing.T) {
	srv := testServer(t, testDataset())

	rec := doRequest(t, srv, "/api/customers?sortBy=desc")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var summaries []core.CustomerSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &summaries); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("got %d summaries, want 2", len(summaries))
	}
	if summaries[0].ID != "1" || summaries[0].TotalAmount != 45000 || summaries[0].TotalPurchases != 2 {
		t.Errorf("top spender = %+v", summaries[0])
	}
	if summaries[1].TotalAmount != 0 {
		t.Errorf("zero-purchase customer amount = %d, want 0", summaries[1].TotalAmount)
	}
}

func TestHandleCustomerSummaries_NameFilterAndBadSort(t *testing.T) {
	srv := testServer(t, testDataset())

	rec := doRequest(t, srv, "/api/customers?name=김")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var summaries []core.CustomerSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &summaries); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(summaries) != 1 || summaries[0].Name != "김철수" {
		t.Errorf("filtered summaries = %+v", summaries)
	}

	rec = doRequest(t, srv, "/api/customers?sortBy=amount")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("invalid sortBy status = %d, want 400", rec.Code)
	}
}

func TestHandleCustomerPurchases(t *testing.T) {
	srv := testServer(t, testDataset())

	rec := doRequest(t, srv, "/api/customers/1/purchases")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var details []core.PurchaseDetail
	if err := json.Unmarshal(rec.Body.Bytes(), &details); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(details) != 2 {
		t.Fatalf("got %d details, want 2", len(details))
	}
	first := details[0]
	if first.ID != "1001" || first.ProductName != "가죽 지갑" || first.Price != 20000 || first.Thumbnail != "/img/101.jpg" {
		t.Errorf("first detail = %+v", first)
	}
}

func TestHandleCustomerPurchases_NotFoundVsEmpty(t *testing.T) {
	srv := testServer(t, testDataset())

	// Unknown customer is a 404.
	rec := doRequest(t, srv, "/api/customers/404/purchases")
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown customer status = %d, want 404", rec.Code)
	}

	// Known customer without purchases is an empty list.
	rec = doRequest(t, srv, "/api/customers/2/purchases")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if body := rec.Body.String(); body != "[]\n" && body != "[]" {
		t.Errorf("body = %q, want empty JSON array", body)
	}
}

func TestHandleHealth(t *testing.T) {
	srv := testServer(t, testDataset())

	rec := doRequest(t, srv, "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp["status"] != "ok" {
		t.Errorf("status field = %v", resp["status"])
	}
}

func TestHandleReady(t *testing.T) {
	srv := testServer(t, testDataset())

	rec := doRequest(t, srv, "/readyz")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
}
