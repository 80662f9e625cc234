package metrics

import "sync/atomic"

/*
Counters is an in-process implementation of types.Metrics backed by
atomic counters. It has no dependencies and no locks, which makes it
safe to use on the cache hot path and convenient in tests.
*/
type Counters struct {
	hits           atomic.Int64
	misses         atomic.Int64
	evictions      atomic.Int64
	expirations    atomic.Int64
	refreshes      atomic.Int64
	producerErrors atomic.Int64
}

func NewCounters() *Counters {
	return &Counters{}
}

func (c *Counters) Hit()           { c.hits.Add(1) }
func (c *Counters) Miss()          { c.misses.Add(1) }
func (c *Counters) Eviction()      { c.evictions.Add(1) }
func (c *Counters) Expire()        { c.expirations.Add(1) }
func (c *Counters) Refresh()       { c.refreshes.Add(1) }
func (c *Counters) ProducerError() { c.producerErrors.Add(1) }

// Snapshot returns the current counter values keyed by metric name.
// The snapshot is a copy; reading it does not disturb the counters.
func (c *Counters) Snapshot() map[string]int64 {
	return map[string]int64{
		"hits":            c.hits.Load(),
		"misses":          c.misses.Load(),
		"evictions":       c.evictions.Load(),
		"expirations":     c.expirations.Load(),
		"refreshes":       c.refreshes.Load(),
		"producer_errors": c.producerErrors.Load(),
	}
}
