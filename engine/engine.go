package engine

import (
	"context"
	"errors"
	"time"

	"memocache/expiration"
	"memocache/refresh"
	"memocache/sink"
	"memocache/types"
)

// ErrNoProducer is returned when the cache misses but no Producer was configured.
var ErrNoProducer = errors.New("engine: no producer configured")

/*
Engine is the "brain" of the cache. It is responsible for the BEHAVIOR of
the cache, not its storage. This is the policy layer.

It decides:
- When an entry is expired
- How TTL is updated on reads and stores
- When refresh hooks run
- How values are produced on a cache miss
- How stored values are forwarded to the sink
- How metrics are recorded

It does NOT:
- Store entries
- Handle sharding
- Handle locking
- Decide eviction order
*/
type Engine struct {

	// Expiration controls when a cache entry is considered too old.
	// If nil, entries never expire — every computed value lives for
	// the lifetime of the cache.
	Expiration expiration.Strategy

	// Refresh is an optional hook that runs when an entry is read.
	// Used to keep values fresh in the background without blocking
	// the current caller. If nil, nothing runs.
	Refresh refresh.Hook

	// Producer is how the cache obtains a value it does not have.
	// A database call, an API call, an expensive computation — the
	// cache treats it as opaque. This is what makes the cache a
	// memoizer instead of a plain map.
	Producer types.Producer

	// Sink optionally persists every value the producer returns.
	// If nil, computed values live only in memory.
	Sink sink.Sink

	// Metrics records what the cache is doing: hits, misses,
	// evictions, expirations, producer failures.
	Metrics types.Metrics
}

// New creates an Engine.
func New(
	exp expiration.Strategy,
	ref refresh.Hook,
	producer types.Producer,
	snk sink.Sink,
	metrics types.Metrics,
) *Engine {

	// Ensure metrics is always non-nil.
	// This avoids nil checks throughout the codebase.
	if metrics == nil {
		metrics = types.NoopMetrics{}
	}

	return &Engine{
		Expiration: exp,
		Refresh:    ref,
		Producer:   producer,
		Sink:       snk,
		Metrics:    metrics,
	}
}

// IsExpired checks whether a cache entry is expired right now.
// With no expiration strategy configured, nothing ever expires.
func (e *Engine) IsExpired(ent *types.Entry) bool {
	return e.Expiration != nil &&
		e.Expiration.IsExpired(ent, time.Now())
}

/*
OnRead is called every time the cache successfully returns a value.

Typical things that happen here:
- Sliding-TTL strategies push the expiration deadline forward
- The refresh hook gets a chance to run
*/
func (e *Engine) OnRead(key string, ent *types.Entry) {
	now := time.Now()

	if e.Expiration != nil {
		e.Expiration.OnAccess(ent, now)
	}

	// Refresh is optional and best-effort.
	// It must never slow down the read path.
	if e.Refresh != nil {
		e.Metrics.Refresh()
		e.Refresh.OnRead(key, ent)
	}
}

/*
OnStore is called whenever a freshly produced value is written to the cache.

This is where we:
- Apply store-related expiration rules (the entry itself is already
  stamped by its constructor)
- Forward the value to the sink, if one is configured
*/
func (e *Engine) OnStore(ctx context.Context, ent *types.Entry) {
	if e.Expiration != nil {
		e.Expiration.OnStore(ent, time.Now())
	}

	if e.Sink != nil {
		e.Sink.OnStore(ctx, ent.Key, ent.Value)
	}
}

// Produce is used when the cache does NOT have the value.
// On failure the error is counted and passed through untouched, so the
// caller sees exactly what the producer reported.
func (e *Engine) Produce(ctx context.Context, key string) (any, error) {
	if e.Producer == nil {
		return nil, ErrNoProducer
	}

	val, err := e.Producer.Produce(ctx, key)
	if err != nil {
		e.Metrics.ProducerError()
		return nil, err
	}
	return val, nil
}

// Close flushes the sink. Pending asynchronous records are written out
// before this returns.
func (e *Engine) Close() {
	if e.Sink != nil {
		e.Sink.Close()
	}
}
