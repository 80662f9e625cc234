package sink

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryRecorder collects everything it is handed.
type memoryRecorder struct {
	mu   sync.Mutex
	data map[string]any
	err  error
}

func newMemoryRecorder() *memoryRecorder {
	return &memoryRecorder{data: make(map[string]any)}
}

func (r *memoryRecorder) Record(ctx context.Context, key string, value any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.data[key] = value
	return nil
}

func (r *memoryRecorder) get(key string) (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.data[key]
	return v, ok
}

func TestBlocking_RecordsImmediately(t *testing.T) {
	rec := newMemoryRecorder()
	s := NewBlocking(rec)
	defer s.Close()

	s.OnStore(context.Background(), "k", "v")

	v, ok := rec.get("k")
	require.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestBlocking_RecorderFailureIsSwallowed(t *testing.T) {
	rec := newMemoryRecorder()
	rec.err = errors.New("disk full")
	s := NewBlocking(rec)

	// Must not panic; the cache keeps the value in memory regardless.
	s.OnStore(context.Background(), "k", "v")
	s.Close()
}

func TestBuffered_RecordsInBackground(t *testing.T) {
	rec := newMemoryRecorder()
	s := NewBuffered(rec, 16)

	s.OnStore(context.Background(), "k", "v")

	require.Eventually(t, func() bool {
		_, ok := rec.get("k")
		return ok
	}, time.Second, 5*time.Millisecond)

	s.Close()
}

func TestBuffered_CloseDrainsQueue(t *testing.T) {
	rec := newMemoryRecorder()
	s := NewBuffered(rec, 64)

	for i := 0; i < 50; i++ {
		s.OnStore(context.Background(), string(rune('a'+i%26)), i)
	}

	// Close must not return until the worker has written everything queued.
	s.Close()

	_, ok := rec.get("a")
	assert.True(t, ok)
}

func TestBuffered_DropsWhenQueueIsFull(t *testing.T) {
	rec := newMemoryRecorder()
	rec.err = errors.New("stuck") // every record fails slowly-ish
	s := NewBuffered(rec, 1)

	// Flood a tiny queue. Extra records are dropped, not blocked on.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			s.OnStore(context.Background(), "k", i)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("OnStore blocked on a full queue")
	}

	s.Close()
}
