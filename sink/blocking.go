package sink

import (
	"context"

	"github.com/apex/log"

	"memocache/types"
)

/*
This file implements the synchronous sink.

Whenever the cache stores a computed value, the same value is recorded
immediately, on the calling goroutine:

	producer result → memory → Recorder (synchronous)

The cache store is not considered complete until the Recorder returns,
so a slow Recorder makes cache misses slower.
*/

// Blocking records every stored value before returning.
type Blocking struct {

	// rec is where computed values are persisted.
	rec types.Recorder
}

// NewBlocking creates a synchronous sink around the given Recorder.
func NewBlocking(rec types.Recorder) *Blocking {
	return &Blocking{rec: rec}
}

// OnStore forwards the value right away. A Recorder failure is logged and
// otherwise ignored: the in-memory store already holds the value, and
// failing the caller's read over a persistence hiccup would be worse.
func (b *Blocking) OnStore(ctx context.Context, key string, value any) {
	if err := b.rec.Record(ctx, key, value); err != nil {
		log.WithError(err).WithField("key", key).Warn("sink: record failed")
	}
}

// Close is required by the Sink interface. The blocking sink keeps no
// state between calls, so there is nothing to flush.
func (b *Blocking) Close() {}
