// This file implements LFU eviction.

package eviction

import "sync"

// lfuNode tracks one key and how many times it was accessed.
type lfuNode struct {
	key  string
	freq int
}

/*
lfu groups keys into frequency buckets.

freqs[n] holds every key that was accessed exactly n times.
minFreq remembers the smallest bucket that is non-empty, so eviction
normally never scans the whole structure looking for a victim. When the
minimum bucket drains completely (eviction or explicit removal), the
minimum is recomputed from the remaining buckets.
*/
type lfu struct {
	// mu protects everything below. As with LRU, OnGet is called from
	// the cache's lock-free hit path, so the policy locks for itself.
	mu sync.Mutex

	nodes   map[string]*lfuNode
	freqs   map[int]map[string]*lfuNode
	minFreq int
}

func newLFU() *lfu {
	return &lfu{
		nodes: make(map[string]*lfuNode),
		freqs: make(map[int]map[string]*lfuNode),
	}
}

// OnGet bumps the key one frequency bucket up.
func (l *lfu) OnGet(k string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	n, ok := l.nodes[k]
	if !ok {
		// Key not tracked; nothing to do
		return
	}

	old := n.freq
	n.freq++

	// Move the key out of its old bucket.
	delete(l.freqs[old], k)
	if len(l.freqs[old]) == 0 {
		delete(l.freqs, old)

		// If the old bucket was the minimum and it just emptied,
		// the minimum moves up with the key.
		if l.minFreq == old {
			l.minFreq++
		}
	}

	if l.freqs[n.freq] == nil {
		l.freqs[n.freq] = make(map[string]*lfuNode)
	}
	l.freqs[n.freq][k] = n
}

// OnPut registers a new key. New keys start in bucket 1,
// which by definition becomes the minimum frequency.
func (l *lfu) OnPut(k string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.nodes[k]; ok {
		// Key already tracked
		return
	}

	n := &lfuNode{key: k, freq: 1}
	l.nodes[k] = n

	if l.freqs[1] == nil {
		l.freqs[1] = make(map[string]*lfuNode)
	}
	l.freqs[1][k] = n
	l.minFreq = 1
}

// Evict removes ANY key from the lowest-frequency bucket.
// Ties inside a bucket are broken arbitrarily (map iteration order).
func (l *lfu) Evict() string {
	l.mu.Lock()
	defer l.mu.Unlock()

	for k := range l.freqs[l.minFreq] {
		delete(l.freqs[l.minFreq], k)
		delete(l.nodes, k)

		if len(l.freqs[l.minFreq]) == 0 {
			delete(l.freqs, l.minFreq)
			l.rescanMinFreq()
		}
		return k
	}

	// Nothing to evict
	return ""
}

// Remove is called when a key is explicitly removed (not because of eviction).
func (l *lfu) Remove(k string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	n, ok := l.nodes[k]
	if !ok {
		return
	}

	delete(l.freqs[n.freq], k)
	delete(l.nodes, k)

	if len(l.freqs[n.freq]) == 0 {
		delete(l.freqs, n.freq)
		if l.minFreq == n.freq {
			l.rescanMinFreq()
		}
	}
}

// rescanMinFreq recomputes minFreq from the buckets that remain.
// Only called when the minimum bucket has drained, which is rare
// compared to reads and inserts.
func (l *lfu) rescanMinFreq() {
	l.minFreq = 0
	for f := range l.freqs {
		if l.minFreq == 0 || f < l.minFreq {
			l.minFreq = f
		}
	}
}
