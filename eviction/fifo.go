// This file implements FIFO eviction.

package eviction

type fifo struct {
	// queue keeps keys in insertion order. Index 0 is the oldest key.
	queue []string

	// present records which keys are currently in the queue.
	present map[string]struct{}
}

func newFIFO() *fifo {
	return &fifo{
		present: make(map[string]struct{}),
	}
}

// OnGet is a no-op: FIFO only cares about insertion order, never reads.
func (f *fifo) OnGet(string) {}

// OnPut appends a key the first time it is seen.
// Overwrites keep their original queue position.
func (f *fifo) OnPut(k string) {
	if _, ok := f.present[k]; ok {
		return
	}
	f.queue = append(f.queue, k)
	f.present[k] = struct{}{}
}

// Evict returns the oldest inserted key.
func (f *fifo) Evict() string {
	if len(f.queue) == 0 {
		return ""
	}
	k := f.queue[0]
	f.queue = f.queue[1:]
	delete(f.present, k)
	return k
}

// Remove drops a key from the queue while preserving the order of the rest.
func (f *fifo) Remove(k string) {
	if _, ok := f.present[k]; !ok {
		return
	}

	delete(f.present, k)
	for i, v := range f.queue {
		if v == k {
			f.queue = append(f.queue[:i], f.queue[i+1:]...)
			break
		}
	}
}
