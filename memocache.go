package memocache

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/singleflight"

	"memocache/engine"
	"memocache/eviction"
	"memocache/shard"
	"memocache/types"
)

// ErrEmptyKey is returned when GetOrCompute is called with an empty key.
// The store and the producer are never consulted in that case.
var ErrEmptyKey = errors.New("memocache: empty key")

/*
Cache is the main implementation: a memoizing accessor in front of a
producer. The first lookup for a key computes the value through the
producer; every later lookup returns the stored value.

This struct is the orchestrator that connects:
- shards (storage)
- the engine (expiration, refresh, producer, sink, metrics)
- eviction
- request coalescing
*/
type Cache struct {
	// shards are the storage units. Each shard is an independent mini-cache.
	shards []*shard.Shard

	// engine contains the "rules" of the cache: TTL, refresh hook,
	// producer, sink, metrics.
	engine *engine.Engine

	// selector decides which shard a key belongs to.
	selector shard.Selector

	// perShardCap is the entry limit per shard; 0 means unbounded.
	perShardCap int64

	// flights coalesces concurrent producer calls: if 100 goroutines
	// miss on the same key simultaneously, exactly ONE of them runs
	// the producer and the rest wait for its result.
	flights singleflight.Group
}

/*
New creates a Cache.

shards <= 1 gives a single-shard cache. capacity <= 0 means the cache is
unbounded and the eviction policy is never consulted — the default shape
of a memoization table. With a positive capacity, the limit is divided
across shards and the policy picks victims per shard.
*/
func New(
	shards int,
	capacity int,
	policy eviction.PolicyType,
	eng *engine.Engine,
) *Cache {

	if shards < 1 {
		shards = 1
	}

	s := make([]*shard.Shard, shards)
	for i := range s {
		// Each shard gets its own eviction policy instance.
		s[i] = shard.New(eviction.New(policy))
	}

	var perShard int64
	if capacity > 0 {
		perShard = int64(capacity / shards)
		if perShard < 1 {
			perShard = 1
		}
	}

	return &Cache{
		shards:      s,
		engine:      eng,
		selector:    shard.HashSelector{},
		perShardCap: perShard,
	}
}

/*
GetOrCompute returns the value for key, computing it through the producer
if the cache does not hold it yet. See api.Accessor for the full contract.
*/
func (c *Cache) GetOrCompute(ctx context.Context, key string) (any, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}

	sh := c.selector.Select(key, c.shards)

	// Try to read from shard storage. Lock-free.
	if ent, ok := sh.Store.Get(key); ok {
		if c.engine.IsExpired(ent) {
			c.engine.Metrics.Expire()
			c.Invalidate(key) // lazy removal; fall through to the miss path
		} else {
			// Cache hit
			c.engine.Metrics.Hit()

			// Sliding TTL / refresh hook
			c.engine.OnRead(key, ent)

			// Eviction metadata
			sh.Eviction.OnGet(key)

			return ent.Value, nil
		}
	}

	// Cache miss
	c.engine.Metrics.Miss()

	/*
		Coalesce through singleflight. DoChan instead of Do so a caller
		whose context is cancelled can stop WAITING without cancelling
		the computation itself — other waiters still want the result.

		The producer runs on a context detached from the initiating
		caller for the same reason: the computation and its store must
		survive that caller giving up.
	*/
	ch := c.flights.DoChan(key, func() (any, error) {
		pctx := context.WithoutCancel(ctx)

		val, err := c.engine.Produce(pctx, key)
		if err != nil {
			// Nothing is stored. The flight is forgotten when it
			// completes, so the next call retries the producer.
			return nil, err
		}

		// Store INSIDE the flight: the value must land in the cache
		// exactly once, even if every waiter has already gone away.
		c.store(pctx, key, val)
		return val, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

/*
store writes a freshly produced value into its shard.

Only the shard's write mutex is held here — never anything store-wide,
and never across a producer call.
*/
func (c *Cache) store(ctx context.Context, key string, value any) {
	sh := c.selector.Select(key, c.shards)

	sh.WriteMu.Lock()
	defer sh.WriteMu.Unlock()

	// Make room first if this shard is at capacity.
	if c.perShardCap > 0 && sh.Store.Len() >= c.perShardCap {
		if victim := sh.Eviction.Evict(); victim != "" {
			c.engine.Metrics.Eviction()
			sh.Store.Delete(victim)
		}
	}

	ent := types.NewEntry(key, value, time.Now())

	// Expiration deadline + sink forwarding
	c.engine.OnStore(ctx, ent)

	// Last-write-wins: an existing entry for the key is overwritten.
	sh.Store.Put(key, ent)
	sh.Eviction.OnPut(key)
}

/*
Invalidate deletes a key from the cache immediately.
The next GetOrCompute for the key will call the producer again.
*/
func (c *Cache) Invalidate(key string) {
	sh := c.selector.Select(key, c.shards)

	sh.WriteMu.Lock()
	defer sh.WriteMu.Unlock()

	sh.Store.Delete(key)
	sh.Eviction.Remove(key)
}

// Len returns the number of entries currently held, across all shards.
func (c *Cache) Len() int64 {
	var n int64
	for _, sh := range c.shards {
		n += sh.Store.Len()
	}
	return n
}

/*
Close gracefully shuts down the cache.
This matters when a buffered sink is configured: pending records are
flushed before Close returns.
*/
func (c *Cache) Close() {
	c.engine.Close()
}
