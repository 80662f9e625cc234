package api

import "context"

/*
Accessor defines the PUBLIC API of the memoizing cache.
This is a contract that guarantees certain behaviors without exposing
internals. All details (sharding, coalescing, eviction, expiration,
producer invocation, persistence) are hidden behind this interface.
*/
type Accessor interface {

	/*
		GetOrCompute returns the value for the given key.

		BEHAVIOR:
		---------
		1. If the key is in the cache and not expired:
		   - Return the stored value immediately (cache hit)
		   - The producer is NOT called

		2. If the key is absent or expired (cache miss):
		   - Invoke the producer for the key
		   - Store the result
		   - Return it

		GUARANTEES:
		-----------
		- The producer runs at most once per distinct key, even when
		  many goroutines miss on the same key at the same time:
		  concurrent callers share a single in-flight computation.
		- If the producer fails, nothing is stored. The error goes back
		  to every caller that was waiting, and the NEXT call for the
		  key invokes the producer again. Failures never poison a key.
		- An empty key is rejected before the store or the producer is
		  consulted.
		- Cancelling ctx stops THIS caller from waiting. It does not
		  cancel an in-flight computation other callers may be sharing.
	*/
	GetOrCompute(ctx context.Context, key string) (any, error)

	/*
		Invalidate removes a key from the cache immediately.

		BEHAVIOR:
		---------
		- Removes the key from in-memory storage
		- Removes it from eviction policy tracking
		- Does NOT touch anything the sink already persisted

		USE CASES:
		----------
		- Manual invalidation when the underlying data changed
		- Forcing the next GetOrCompute to call the producer again
	*/
	Invalidate(key string)

	// Len reports how many entries the cache currently holds,
	// summed across all shards.
	Len() int64

	/*
		Close gracefully shuts down the cache.
		Important when a buffered sink is configured: pending records
		are flushed before Close returns.
	*/
	Close()
}
