package api

import (
	"context"
	"log/slog"
	"time"

	"github.com/ethereum/go-ethereum/metrics"
	"github.com/rotblauer/pintour/events"
	"github.com/rotblauer/pintour/params"
	"github.com/rotblauer/pintour/stream"
	"github.com/rotblauer/pintour/types/location"
)

// LocationSink persists pins.
type LocationSink interface {
	Put(records ...location.Record) (int, error)
}

// Populate persists incoming pins.
// Unusable pins are dropped, as are repeats of a pin already seen in this run.
// Pins without a time are stamped with the time they arrive.
// Every stored pin is sent on events.NewLocationFeed.
// It returns the number stored and the last store error.
func Populate(ctx context.Context, sink LocationSink, in <-chan location.Record) (stored int, lastErr error) {
	logger := slog.With("svc", "populate")
	started := time.Now()
	meter := metrics.GetOrRegisterMeter("populate/stored", nil)
	defer func() {
		logger.Info("Populate done", "stored", stored,
			"elapsed", time.Since(started).Round(time.Millisecond))
	}()

	dedupe := location.NewDedupeLRUFunc(params.CacheDedupeSize)
	validated := stream.Filter(ctx, func(r location.Record) bool {
		if !r.IsValid() {
			logger.Debug("Invalid pin", "pin", r.String())
			return false
		}
		if !dedupe(r) {
			logger.Debug("Deduped pin", "pin", r.String())
			return false
		}
		return true
	}, in)

	stamped := stream.Transform(ctx, func(r location.Record) location.Record {
		if r.Timestamp.IsZero() {
			r.Timestamp = time.Now().UTC()
		}
		return r
	}, validated)

	for batch := range stream.Batch(ctx, params.DefaultBatchSize, stamped) {
		n, err := sink.Put(batch...)
		if err != nil {
			lastErr = err
			logger.Error("Failed to store pins", "error", err, "batch", len(batch))
			continue
		}
		stored += n
		meter.Mark(int64(n))
		for _, r := range batch {
			events.NewLocationFeed.Send(r)
		}
	}
	if lastErr == nil {
		lastErr = ctx.Err()
	}
	return stored, lastErr
}
