package eviction

/*
This file defines how the cache decides what to remove when it runs out of space.
*/

/*
Policy is the interface that all eviction strategies must follow.

This is a set of rules that any eviction algorithm (LRU, LFU, FIFO, ...) must
obey so the rest of the cache can interact with it in a uniform way.

The cache does NOT care how eviction works internally.
It only calls these methods.

CONCURRENCY CONTRACT:
---------------------
- OnPut, Remove and Evict are always called under the shard's write mutex.
- OnGet is called from the LOCK-FREE hit path, concurrently with
  everything else.

So a policy that mutates state in OnGet (LRU, LFU) must synchronize
internally. Policies that ignore reads (FIFO, None) need no lock of
their own.
*/
type Policy interface {

	// OnGet is called whenever a key is read from the cache.
	//
	// Some eviction strategies care about reads:
	// - LRU needs to know what was accessed recently
	// - LFU counts accesses
	//
	// FIFO and None ignore this.
	OnGet(string)

	// OnPut is called whenever a key is added to the cache.
	//
	// This lets the eviction policy track insertion order
	// or initialize counters for the key.
	OnPut(string)

	// Remove is called when a key is explicitly removed
	// from the cache (not evicted).
	//
	// This lets the eviction policy clean up its internal
	// bookkeeping for that key.
	Remove(string)

	// Evict is called when the cache is FULL and needs space.
	//
	// The policy decides which key should go and returns it.
	// The cache then actually removes it from storage.
	// An empty string means there is nothing to evict.
	Evict() string
}

// PolicyType is a simple identifier for supported eviction strategies.
type PolicyType string

const (
	// None never evicts. The cache grows without bound.
	// This is the default: a pure memoization table trades memory
	// for avoided recomputation and keeps every entry forever.
	None PolicyType = "NONE"

	// LRU (Least Recently Used): evicts the key that has NOT been accessed for the longest time.
	LRU PolicyType = "LRU"

	// LFU (Least Frequently Used): evicts the key that has been accessed the fewest times.
	LFU PolicyType = "LFU"

	// FIFO (First In First Out): evicts the oldest inserted key, regardless of access.
	FIFO PolicyType = "FIFO"
)

// New is a small factory function.
// Given a PolicyType, it creates the corresponding eviction policy.
func New(t PolicyType) Policy {
	switch t {
	case None, "":
		return noop{}
	case LRU:
		return newLRU()
	case LFU:
		return newLFU()
	case FIFO:
		return newFIFO()
	default:
		panic("unknown eviction policy: " + string(t))
	}
}
