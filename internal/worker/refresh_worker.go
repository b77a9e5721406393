// Package worker runs the dataset refresh consumer inside the server
// process.
package worker

import (
	"context"
	"errors"
	"log/slog"

	"vendite/internal/amqp"
)

// Invalidator drops cached raw data, forcing the next query to fetch
// a fresh snapshot.
type Invalidator interface {
	Invalidate()
}

// RefreshWorker consumes dataset refresh messages and invalidates the
// snapshot provider so queries observe reseeded data immediately
// instead of waiting out the TTL.
type RefreshWorker struct {
	client      *amqp.Client
	invalidator Invalidator
	onRefresh   func()
}

func NewRefreshWorker(client *amqp.Client, invalidator Invalidator, onRefresh func()) *RefreshWorker {
	return &RefreshWorker{
		client:      client,
		invalidator: invalidator,
		onRefresh:   onRefresh,
	}
}

// Run blocks consuming refresh messages until ctx is cancelled.
func (w *RefreshWorker) Run(ctx context.Context) error {
	err := w.client.Consume(ctx, w.handle)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (w *RefreshWorker) handle(ctx context.Context, msg *amqp.DatasetRefreshMessage) error {
	slog.InfoContext(ctx, "Dataset refreshed, invalidating snapshot",
		"source", msg.Source,
		"records", msg.Records,
		"published_at", msg.Timestamp)

	w.invalidator.Invalidate()
	if w.onRefresh != nil {
		w.onRefresh()
	}
	return nil
}
