package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"vendite/internal/core"
	"vendite/internal/query"
)

// handlePurchaseFrequency serves GET /api/purchase-frequency?from&to.
func (s *Server) handlePurchaseFrequency(w http.ResponseWriter, r *http.Request) {
	const queryName = "purchase_frequency"
	timer := prometheus.NewTimer(s.metrics.QueryDuration.WithLabelValues(queryName))
	defer timer.ObserveDuration()

	params := r.URL.Query()
	rng, err := core.ParseDateRange(params.Get("from"), params.Get("to"))
	if err != nil {
		s.writeQueryError(w, queryName, err)
		return
	}

	snap, err := s.provider.Get(r.Context())
	if err != nil {
		s.writeQueryError(w, queryName, err)
		return
	}

	buckets, err := query.PurchaseFrequency(snap, rng)
	if err != nil {
		s.writeQueryError(w, queryName, err)
		return
	}

	s.metrics.QueriesTotal.WithLabelValues(queryName).Inc()
	s.writeJSON(w, http.StatusOK, buckets)
}

// handleCustomerSummaries serves GET /api/customers?sortBy&name.
func (s *Server) handleCustomerSummaries(w http.ResponseWriter, r *http.Request) {
	const queryName = "customer_summaries"
	timer := prometheus.NewTimer(s.metrics.QueryDuration.WithLabelValues(queryName))
	defer timer.ObserveDuration()

	params := r.URL.Query()
	sortBy := params.Get("sortBy")
	nameFilter := params.Get("name")

	snap, err := s.provider.Get(r.Context())
	if err != nil {
		s.writeQueryError(w, queryName, err)
		return
	}

	summaries, err := query.CustomerSummaries(snap, sortBy, nameFilter)
	if err != nil {
		s.writeQueryError(w, queryName, err)
		return
	}

	s.metrics.QueriesTotal.WithLabelValues(queryName).Inc()
	s.writeJSON(w, http.StatusOK, summaries)
}

// handleCustomerPurchases serves GET /api/customers/{id}/purchases.
func (s *Server) handleCustomerPurchases(w http.ResponseWriter, r *http.Request) {
	const queryName = "customer_purchase_details"
	timer := prometheus.NewTimer(s.metrics.QueryDuration.WithLabelValues(queryName))
	defer timer.ObserveDuration()

	customerID := r.PathValue("id")
	if customerID == "" {
		s.writeQueryError(w, queryName, &core.ValidationError{Reason: "customer id must not be empty"})
		return
	}

	snap, err := s.provider.Get(r.Context())
	if err != nil {
		s.writeQueryError(w, queryName, err)
		return
	}

	details, err := query.CustomerPurchaseDetails(snap, customerID)
	if err != nil {
		s.writeQueryError(w, queryName, err)
		return
	}

	s.metrics.QueriesTotal.WithLabelValues(queryName).Inc()
	s.writeJSON(w, http.StatusOK, details)
}
