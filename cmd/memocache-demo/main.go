// Command memocache-demo walks through the cache's behavior end to end:
// miss, hit, coalesced concurrent misses, producer failure and retry,
// TTL expiry, eviction, metrics, shutdown.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/apex/log"

	"memocache"
	"memocache/engine"
	"memocache/eviction"
	"memocache/expiration"
	"memocache/metrics"
	"memocache/sink"
)

// ================= BACKING SOURCE =================

// slowSource pretends to be the expensive thing we are memoizing:
// a database, a remote API, a heavy computation.
type slowSource struct {
	mu    sync.RWMutex
	data  map[string]any
	calls atomic.Int64
}

func newSlowSource() *slowSource {
	return &slowSource{data: map[string]any{
		"user:1": "alice",
		"user:2": "bob",
	}}
}

func (s *slowSource) Produce(ctx context.Context, key string) (any, error) {
	s.calls.Add(1)
	time.Sleep(50 * time.Millisecond) // simulated latency

	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, errors.New("source: no such key " + key)
	}
	log.WithField("key", key).Info("source: produced value")
	return v, nil
}

// ================= RECORDER =================

// logRecorder stands in for a persistence tier: it just logs what the
// sink hands it.
type logRecorder struct{}

func (logRecorder) Record(ctx context.Context, key string, value any) error {
	log.WithField("key", key).WithField("value", fmt.Sprint(value)).Info("recorder: persisted")
	return nil
}

// ================= LOGGING =================

// handler formats log entries as "15:04:05 I message key=value".
type handler struct{}

func (handler) HandleLog(e *log.Entry) error {
	var fields strings.Builder
	for _, name := range e.Fields.Names() {
		fmt.Fprintf(&fields, " %s=%v", name, e.Fields.Get(name))
	}
	fmt.Fprintf(os.Stdout, "%s %.1s %s%s\n",
		time.Now().Format("15:04:05"),
		strings.ToUpper(e.Level.String()),
		e.Message,
		fields.String(),
	)
	return nil
}

// ================= MAIN =================

func main() {
	log.SetHandler(handler{})
	log.SetLevel(log.DebugLevel)

	ctx := context.Background()

	source := newSlowSource()
	counters := metrics.NewCounters()

	eng := engine.New(
		&expiration.ExpireAfterAccess{TTL: 2 * time.Second},
		nil,
		source,
		sink.NewBuffered(logRecorder{}, 1024),
		counters,
	)

	cache := memocache.New(4, 20, eviction.LRU, eng)

	// ---------------- 1) miss then hit ----------------
	log.Info("=== miss then hit ===")

	v, _ := cache.GetOrCompute(ctx, "user:1")
	log.WithField("value", fmt.Sprint(v)).Info("first lookup (miss)")

	v, _ = cache.GetOrCompute(ctx, "user:1")
	log.WithField("value", fmt.Sprint(v)).
		WithField("producer_calls", source.calls.Load()).
		Info("second lookup (hit, no producer call)")

	// ---------------- 2) coalesced concurrent misses ----------------
	log.Info("=== coalesced concurrent misses ===")

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			val, _ := cache.GetOrCompute(ctx, "user:2")
			log.WithField("goroutine", id).WithField("value", fmt.Sprint(val)).Info("got")
		}(i)
	}
	wg.Wait()
	log.WithField("producer_calls", source.calls.Load()).
		Info("five concurrent callers, one producer call for user:2")

	// ---------------- 3) failure is not cached ----------------
	log.Info("=== failure retries ===")

	if _, err := cache.GetOrCompute(ctx, "user:404"); err != nil {
		log.WithError(err).Warn("lookup failed (not cached)")
	}
	if _, err := cache.GetOrCompute(ctx, "user:404"); err != nil {
		log.WithError(err).Warn("lookup failed again (producer was retried)")
	}

	// ---------------- 4) TTL expiry ----------------
	log.Info("=== ttl expiry ===")

	time.Sleep(2500 * time.Millisecond)
	_, err := cache.GetOrCompute(ctx, "user:1")
	log.WithField("err", fmt.Sprint(err)).
		WithField("producer_calls", source.calls.Load()).
		Info("after ttl the producer ran again")

	// ---------------- 5) eviction under capacity pressure ----------------
	log.Info("=== eviction ===")

	source.mu.Lock()
	for i := 0; i < 50; i++ {
		source.data[fmt.Sprintf("bulk:%d", i)] = i
	}
	source.mu.Unlock()

	for i := 0; i < 50; i++ {
		cache.GetOrCompute(ctx, fmt.Sprintf("bulk:%d", i))
	}
	log.WithField("len", cache.Len()).Info("cache size is capped")

	// ---------------- metrics + shutdown ----------------
	for name, v := range counters.Snapshot() {
		log.WithField(name, v).Info("metric")
	}

	cache.Close()
	log.Info("cache closed cleanly")
}
