// This file implements LRU eviction.

package eviction

import (
	"container/list"
	"sync"
)

/*
lru is the concrete implementation of the LRU eviction policy.

We keep keys in a doubly-linked usage list:
- the front of the list is the MOST recently used key
- the back of the list is the LEAST recently used key

A map from key to list element gives us O(1) lookups, so every
operation (read, insert, remove, evict) is constant time.
*/
type lru struct {
	// mu protects elems and order. OnGet runs on the cache's
	// lock-free hit path, concurrently with other readers and with
	// writers that only hold the shard write mutex, so the policy
	// carries its own lock.
	mu sync.Mutex

	// elems maps cache keys to their list elements.
	elems map[string]*list.Element

	// order is the usage list. Element values are the keys themselves.
	order *list.List
}

func newLRU() *lru {
	return &lru{
		elems: make(map[string]*list.Element),
		order: list.New(),
	}
}

// OnGet is called whenever a key is read from the cache.
// An accessed key becomes "recently used", so its element moves to the front.
func (l *lru) OnGet(k string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if e, ok := l.elems[k]; ok {
		l.order.MoveToFront(e)
	}
}

// OnPut is called whenever a key is added to the cache.
// - If the key is already tracked, refresh its position (an overwrite counts as use).
// - If the key is new, push it to the front as the most recently used.
func (l *lru) OnPut(k string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if e, ok := l.elems[k]; ok {
		l.order.MoveToFront(e)
		return
	}
	l.elems[k] = l.order.PushFront(k)
}

// Evict is called when the cache is full.
// The least recently used key is always at the back of the list.
func (l *lru) Evict() string {
	l.mu.Lock()
	defer l.mu.Unlock()

	back := l.order.Back()
	if back == nil {
		// Nothing to evict
		return ""
	}

	k := back.Value.(string)
	l.order.Remove(back)
	delete(l.elems, k)
	return k
}

// Remove is called when a key is explicitly removed (not evicted due to capacity).
// This keeps the usage list consistent with the store.
func (l *lru) Remove(k string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if e, ok := l.elems[k]; ok {
		l.order.Remove(e)
		delete(l.elems, k)
	}
}
