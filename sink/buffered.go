package sink

import (
	"context"
	"sync"

	"github.com/apex/log"

	"memocache/types"
)

// This file implements the asynchronous sink.

// record is one pending value waiting to be persisted.
type record struct {
	ctx   context.Context
	key   string
	value any
}

/*
Buffered persists computed values in the background.

OnStore only enqueues; a single worker goroutine drains the queue and
calls the Recorder. The read path never waits for persistence.
*/
type Buffered struct {
	rec types.Recorder

	// ch holds pending records. Buffering absorbs bursts of misses
	// without blocking the callers that caused them.
	ch chan record

	// wg waits for the worker during shutdown.
	wg sync.WaitGroup
}

// NewBuffered creates an asynchronous sink with the given queue size
// and starts its worker.
func NewBuffered(rec types.Recorder, buffer int) *Buffered {
	s := &Buffered{
		rec: rec,
		ch:  make(chan record, buffer),
	}

	s.wg.Add(1)
	go s.worker()

	return s
}

// OnStore enqueues the value. If the queue is full the record is DROPPED:
// blocking here would put the Recorder's latency back on the read path,
// which is exactly what an asynchronous sink exists to avoid. The
// in-memory cache still holds the value either way.
func (s *Buffered) OnStore(ctx context.Context, key string, value any) {
	select {
	case s.ch <- record{ctx, key, value}:
		// queued
	default:
		log.WithField("key", key).Debug("sink: queue full, record dropped")
	}
}

// worker drains the queue until Close.
func (s *Buffered) worker() {
	defer s.wg.Done()

	for r := range s.ch {
		if err := s.rec.Record(r.ctx, r.key, r.value); err != nil {
			log.WithError(err).WithField("key", r.key).Warn("sink: record failed")
		}
	}
}

/*
Close shuts the sink down gracefully:
1. Close the channel (no more records accepted)
2. Wait for the worker to finish what is already queued

Without this, queued records would be lost on shutdown.
*/
func (s *Buffered) Close() {
	close(s.ch)
	s.wg.Wait()
}
