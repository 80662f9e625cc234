package shard

import (
	"sync/atomic"

	"memocache/types"
)

/*
This file defines how entries are actually stored inside a shard.
This is NOT a normal map:
- Reads should be very fast
- Reads should NOT require locks
- Writes are less frequent (only cache misses write) and can afford extra work

To achieve this we use "Copy-On-Write" (COW).
*/

// Store is the interface used by a shard to keep and retrieve cache entries.
type Store interface {

	// Get retrieves an entry by key.
	Get(string) (*types.Entry, bool)

	// Put inserts or replaces an entry. A replace is last-write-wins:
	// whatever was stored for the key before is simply gone.
	Put(string, *types.Entry)

	// Delete removes an entry.
	Delete(string)

	// Len returns how many entries are stored.
	Len() int64
}

/*
cowStore is a Copy-On-Write implementation of Store.

What "copy-on-write" means:
---------------------------
- Readers always see an immutable snapshot
- Writers build a NEW map and swap it in atomically

This gives us lock-free reads and a very simple concurrency model.
The price is that every write copies the whole shard map, which is fine
for a memoization workload where each key is written once and read many
times.
*/
type cowStore struct {

	// snapshot holds the current map[string]*types.Entry.
	// atomic.Value lets writers swap the entire map and
	// readers access it without locks.
	snapshot atomic.Value

	// count tracks the number of entries, kept separately so Len
	// never has to touch the map.
	count atomic.Int64
}

func NewCOWStore() Store {
	s := &cowStore{}
	s.snapshot.Store(make(map[string]*types.Entry))
	return s
}

// Get reads from the current snapshot. No locks.
func (s *cowStore) Get(key string) (*types.Entry, bool) {
	m := s.snapshot.Load().(map[string]*types.Entry)
	ent, ok := m[key]
	return ent, ok
}

/*
Put inserts or replaces an entry. This is where copy-on-write happens:

1. Load the current map
2. Build a new map with every existing entry plus this one
3. Atomically swap the old map for the new one

Callers are expected to hold the shard write mutex; COW protects
readers, not concurrent writers.
*/
func (s *cowStore) Put(key string, ent *types.Entry) {
	old := s.snapshot.Load().(map[string]*types.Entry)

	next := make(map[string]*types.Entry, len(old)+1)
	for k, v := range old {
		next[k] = v
	}
	next[key] = ent

	s.snapshot.Store(next)
	s.count.Store(int64(len(next)))
}

// Delete rebuilds the map without the given key and swaps it in.
func (s *cowStore) Delete(key string) {
	old := s.snapshot.Load().(map[string]*types.Entry)
	if _, ok := old[key]; !ok {
		return
	}

	next := make(map[string]*types.Entry, len(old)-1)
	for k, v := range old {
		if k != key {
			next[k] = v
		}
	}

	s.snapshot.Store(next)
	s.count.Store(int64(len(next)))
}

// Len returns how many entries are in the store.
func (s *cowStore) Len() int64 {
	return s.count.Load()
}
